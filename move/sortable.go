package move

// SortableMove carries a Move in its low bits and an ordering key above
// them, so a move list can be sorted as plain integers.
type SortableMove uint64

const sortKeyShift = 32

func NewSortable(m Move, key uint32) SortableMove {
	return SortableMove(uint64(key)<<sortKeyShift | uint64(m&Mask))
}

func (s SortableMove) Move() Move {
	return Move(uint64(s) & Mask)
}

func (s SortableMove) Key() uint32 {
	return uint32(uint64(s) >> sortKeyShift)
}

// WithKey returns s with its ordering key replaced.
func (s SortableMove) WithKey(key uint32) SortableMove {
	return NewSortable(s.Move(), key)
}
