// Package fen reads and writes the text notation for positions:
//
//	<rows> <side> [ply]
//
// Rows run from rank 7 down to rank 0 separated by '/', files a to h within
// a row. A row is a mix of empty-run digits and two-letter pieces: NN EE SS
// WW for Kings, NW NE SE SW for Pawns, upper case White and lower case
// Black. Side is W or B.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/domino14/leiserchess/board"
	"github.com/domino14/leiserchess/game"
)

var ErrParse = errors.New("fen parse error")

// Parse reads a position.
func Parse(s string) (*game.Position, error) {
	fields := strings.Fields(s)
	if len(fields) < 2 || len(fields) > 3 {
		return nil, fmt.Errorf("%w: expected 2 or 3 fields, got %d", ErrParse, len(fields))
	}
	rows := strings.Split(fields[0], "/")
	if len(rows) != board.BoardWidth {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrParse, board.BoardWidth, len(rows))
	}
	b := board.NewBoard()
	for i, row := range rows {
		rank := board.BoardWidth - 1 - i
		if err := parseRow(&b, row, rank); err != nil {
			return nil, err
		}
	}

	var ply int
	switch fields[1] {
	case "W", "w":
		ply = 0
	case "B", "b":
		ply = 1
	default:
		return nil, fmt.Errorf("%w: bad side to move %q", ErrParse, fields[1])
	}
	if len(fields) == 3 {
		n, err := strconv.Atoi(fields[2])
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad ply %q", ErrParse, fields[2])
		}
		if n&1 != ply {
			return nil, fmt.Errorf("%w: ply %d does not match side %s", ErrParse, n, fields[1])
		}
		ply = n
	}
	pos, err := game.FromBoard(b, ply)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return pos, nil
}

func parseRow(b *board.Board, row string, rank int) error {
	file := 0
	for i := 0; i < len(row); {
		ch := row[i]
		if ch >= '1' && ch <= '8' {
			file += int(ch - '0')
			i++
			if file > board.BoardWidth {
				return fmt.Errorf("%w: rank %d overflows", ErrParse, rank)
			}
			continue
		}
		if i+2 > len(row) {
			return fmt.Errorf("%w: truncated piece %q on rank %d", ErrParse, row[i:], rank)
		}
		p, ok := board.PieceFromCode(row[i : i+2])
		if !ok {
			return fmt.Errorf("%w: unknown piece %q on rank %d", ErrParse, row[i:i+2], rank)
		}
		if file >= board.BoardWidth {
			return fmt.Errorf("%w: rank %d overflows", ErrParse, rank)
		}
		b.Set(board.SquareOf(file, rank), p)
		file++
		i += 2
	}
	if file != board.BoardWidth {
		return fmt.Errorf("%w: rank %d has %d files", ErrParse, rank, file)
	}
	return nil
}

// Encode writes pos in the notation Parse reads. The ply is written only
// when it is not implied by the side to move.
func Encode(pos *game.Position) string {
	var sb strings.Builder
	for rank := board.BoardWidth - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < board.BoardWidth; file++ {
			p := pos.At(board.SquareOf(file, rank))
			if p.Type() == board.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(p.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
	if pos.SideToMove() == board.White {
		sb.WriteString(" W")
	} else {
		sb.WriteString(" B")
	}
	if pos.Ply() > 1 {
		sb.WriteString(" " + strconv.Itoa(pos.Ply()))
	}
	return sb.String()
}
