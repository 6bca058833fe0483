package eval

// Score is the search-resolution score, from the point of view of the side
// to move.
type Score int16

const (
	Inf       Score = 32700
	Win       Score = 32000
	PawnValue Score = 100
)

// EvScore is the evaluator's internal high-resolution score, always from
// White's point of view until the final flip.
type EvScore int32

const (
	// WinningScore is returned as-is for decided positions.
	WinningScore = 30000
	EvScoreRatio = 100

	PawnEvValue EvScore = EvScore(PawnValue) * EvScoreRatio
)

var pcentral = [64]EvScore{
	125, 181, 220, 234, 234, 220, 181, 125,
	181, 249, 302, 323, 323, 302, 249, 181,
	220, 302, 375, 411, 411, 375, 302, 220,
	234, 323, 411, 500, 500, 411, 323, 234,
	234, 323, 411, 500, 500, 411, 323, 234,
	220, 302, 375, 411, 411, 375, 302, 220,
	181, 249, 302, 323, 323, 302, 249, 181,
	125, 181, 220, 234, 234, 220, 181, 125,
}

var invS [16]float64

func init() {
	for i := range invS {
		invS[i] = 1.0 / float64(i+1)
	}
}
