package board

// beam steps on the grid, indexed by King orientation.
var beamSteps = [NumOrientations]int{
	NN: 1,
	EE: ArrWidth,
	SS: -1,
	WW: -ArrWidth,
}

// beam steps on the compact 64-bit index, indexed by King orientation.
var beamSteps64 = [NumOrientations]int{
	NN: 1,
	EE: BoardWidth,
	SS: -1,
	WW: -BoardWidth,
}

// KingSteps are the grid offsets to the eight neighbors of a square.
var KingSteps = [8]int{
	-ArrWidth - 1, -ArrWidth, -ArrWidth + 1,
	-1, 1,
	ArrWidth - 1, ArrWidth, ArrWidth + 1,
}

const absorbed = -1

// reflectTable[beam][pawnOrientation] is the outgoing beam direction after
// striking a pawn, or absorbed if the beam hit the pawn's back.
var reflectTable = [NumOrientations][NumOrientations]int{
	//       NW        NE        SE        SW
	NN: {absorbed, absorbed, int(EE), int(WW)},
	EE: {int(NN), absorbed, absorbed, int(SS)},
	SS: {int(WW), int(EE), absorbed, absorbed},
	WW: {absorbed, int(NN), int(SS), absorbed},
}

var bitOf [ArrSize]uint64
var neighborhood [ArrSize]uint64

func init() {
	for f := 0; f < BoardWidth; f++ {
		for r := 0; r < BoardWidth; r++ {
			sq := SquareOf(f, r)
			bitOf[sq] = 1 << uint(f*BoardWidth+r)
		}
	}
	for f := 0; f < BoardWidth; f++ {
		for r := 0; r < BoardWidth; r++ {
			sq := SquareOf(f, r)
			mask := bitOf[sq]
			for _, d := range KingSteps {
				// sentinels contribute a zero bit, which clips the mask.
				mask |= bitOf[int(sq)+d]
			}
			neighborhood[sq] = mask
		}
	}
}

// BeamStep returns the grid offset for one step of a beam heading in dir.
func BeamStep(dir Orientation) int {
	return beamSteps[dir&oriMask]
}

// BeamStep64 returns the compact-index offset for one step in dir.
func BeamStep64(dir Orientation) int {
	return beamSteps64[dir&oriMask]
}

// Reflect returns the direction a beam heading in beam leaves a pawn with
// orientation pawnOri. ok is false when the pawn absorbs the beam.
func Reflect(beam, pawnOri Orientation) (out Orientation, ok bool) {
	d := reflectTable[beam&oriMask][pawnOri&oriMask]
	if d == absorbed {
		return 0, false
	}
	return Orientation(d), true
}

// Neighborhood returns the bits of the 3x3 block centered on sq, clipped at
// the edges of the board. The square itself is included.
func Neighborhood(sq Square) uint64 {
	return neighborhood[sq]
}
