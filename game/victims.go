package game

// Victims counts the pieces removed by the last move. Negative values are
// markers rather than counts.
type Victims int16

const (
	KO      Victims = -1
	Illegal Victims = -1
)

func (v Victims) IsKO() bool {
	return v == KO
}

func (v Victims) IsIllegal() bool {
	return v == Illegal
}

func (v Victims) IsZero() bool {
	return v == 0
}

// Exists reports whether the move removed at least one piece.
func (v Victims) Exists() bool {
	return v > 0
}
