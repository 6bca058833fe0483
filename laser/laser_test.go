package laser

import (
	"math/bits"
	"os"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"lukechampine.com/frand"

	"github.com/domino14/leiserchess/board"
	"github.com/domino14/leiserchess/game"
	"github.com/domino14/leiserchess/testhelpers"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

func bitsOf(sqs ...board.Square) uint64 {
	var b uint64
	for _, sq := range sqs {
		b |= sq.Bit()
	}
	return b
}

func TestStraightShot(t *testing.T) {
	is := is.New(t)
	pos := testhelpers.MustParse(testhelpers.StraightShot)
	res := Simulate(pos, board.White)
	is.True(res.Destroyed)
	is.Equal(res.Path, uint64(0xFF)<<24)
	is.Equal(res.Terminal, board.SquareOf(3, 7))
	is.Equal(pos.At(res.Terminal).Type(), board.King)
	is.Equal(pos.At(res.Terminal).Color(), board.Black)

	// and back the other way.
	res = Simulate(pos, board.Black)
	is.True(res.Destroyed)
	is.Equal(res.Path, uint64(0xFF)<<24)
	is.Equal(res.Terminal, board.SquareOf(3, 0))
}

func TestReflection(t *testing.T) {
	is := is.New(t)
	pos := testhelpers.MustParse(testhelpers.Reflection)
	res := Simulate(pos, board.White)
	is.True(!res.Destroyed)
	want := bitsOf(
		board.SquareOf(0, 3), board.SquareOf(1, 3), board.SquareOf(2, 3),
		board.SquareOf(3, 3), board.SquareOf(4, 3),
		board.SquareOf(4, 4), board.SquareOf(4, 5), board.SquareOf(4, 6),
		board.SquareOf(4, 7),
	)
	is.Equal(res.Path, want)
	is.Equal(bits.OnesCount64(res.Path), 9)
	is.Equal(res.Terminal, board.SquareOf(4, 7))
}

func TestAbsorption(t *testing.T) {
	is := is.New(t)
	pos := testhelpers.MustParse(testhelpers.Absorption)
	res := Simulate(pos, board.White)
	is.True(res.Destroyed)
	want := bitsOf(
		board.SquareOf(0, 3), board.SquareOf(1, 3), board.SquareOf(2, 3),
		board.SquareOf(3, 3), board.SquareOf(4, 3),
	)
	is.Equal(res.Path, want)
	is.Equal(res.Terminal, board.SquareOf(4, 3))
	// a destroyed pawn is not a win.
	is.Equal(pos.At(res.Terminal).Type(), board.Pawn)
}

func TestMissOffBoard(t *testing.T) {
	is := is.New(t)
	pos := testhelpers.MustParse(testhelpers.Reflection)
	res := Simulate(pos, board.Black)
	is.True(!res.Destroyed)
	var want uint64
	for f := 0; f < board.BoardWidth; f++ {
		want |= board.SquareOf(f, 0).Bit()
	}
	is.Equal(res.Path, want)
	is.Equal(res.Terminal, board.SquareOf(0, 0))
}

func TestImmediateExit(t *testing.T) {
	is := is.New(t)
	pos, err := game.NewBuilder().
		King(board.White, board.SquareOf(0, 0), board.WW).
		King(board.Black, board.SquareOf(7, 7), board.NN).
		Build()
	is.NoErr(err)
	res := Simulate(pos, board.White)
	is.True(!res.Destroyed)
	is.Equal(res.Path, board.SquareOf(0, 0).Bit())
	is.Equal(res.Terminal, board.SquareOf(0, 0))
}

func TestEveryReflection(t *testing.T) {
	// King on c2 fires in each direction at a pawn two squares away.
	kingSq := board.SquareOf(2, 2)
	for beam := board.NN; beam <= board.WW; beam++ {
		for pawnOri := board.NW; pawnOri <= board.SW; pawnOri++ {
			pawnSq := board.Square(int(kingSq) + 2*board.BeamStep(beam))
			pos, err := game.NewBuilder().
				King(board.White, kingSq, beam).
				King(board.Black, board.SquareOf(7, 7), board.NN).
				Pawn(board.Black, pawnSq, pawnOri).
				Build()
			assert.NoError(t, err)

			res := Simulate(pos, board.White)
			out, ok := board.Reflect(beam, pawnOri)
			assert.Equal(t, !ok, res.Destroyed, "beam %d pawn %d", beam, pawnOri)
			assert.NotZero(t, res.Path&pawnSq.Bit())
			if !ok {
				assert.Equal(t, pawnSq, res.Terminal)
				continue
			}
			next := board.Square(int(pawnSq) + board.BeamStep(out))
			assert.NotZero(t, res.Path&next.Bit(), "beam %d pawn %d", beam, pawnOri)
		}
	}
}

func TestMarkWritesCache(t *testing.T) {
	is := is.New(t)
	pos := testhelpers.MustParse(testhelpers.Absorption)
	is.Equal(pos.Laser(board.White), uint64(0))
	w, b := MarkBoth(pos)
	is.Equal(pos.Laser(board.White), w.Path)
	is.True(pos.Killed(board.White))
	is.Equal(pos.Laser(board.Black), b.Path)
	is.True(!pos.Killed(board.Black))
}

func TestMissingKingPanics(t *testing.T) {
	pos := testhelpers.MustParse(testhelpers.StraightShot)
	pos.Board().Clear(pos.KingSquare(board.White))
	assert.Panics(t, func() { Simulate(pos, board.White) })
}

func TestRandomBoardsTerminate(t *testing.T) {
	is := is.New(t)
	seed := make([]byte, 32)
	seed[0] = 7
	rng := frand.NewCustom(seed, 1024, 12)
	for n := 0; n < 500; n++ {
		bd := game.NewBuilder()
		used := map[int]bool{}
		pick := func() board.Square {
			for {
				i := rng.Intn(board.NumSquares)
				if !used[i] {
					used[i] = true
					return board.SquareFromIndex(i)
				}
			}
		}
		bd.King(board.White, pick(), board.Orientation(rng.Intn(4)))
		bd.King(board.Black, pick(), board.Orientation(rng.Intn(4)))
		for p := 0; p < 20; p++ {
			bd.Pawn(board.Color(rng.Intn(2)), pick(), board.Orientation(rng.Intn(4)))
		}
		pos, err := bd.Build()
		is.NoErr(err)
		for _, c := range []board.Color{board.White, board.Black} {
			res := Simulate(pos, c)
			is.True(res.Path&pos.KingSquare(c).Bit() != 0)
			is.True(res.Path&res.Terminal.Bit() != 0)
			if res.Destroyed {
				tp := pos.At(res.Terminal).Type()
				is.True(tp == board.King || tp == board.Pawn)
			}
		}
	}
}
