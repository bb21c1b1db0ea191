package techindex

import "fmt"

// Level is the qualitative band an index falls into.
type Level string

const (
	LevelVeryHigh     Level = "very_high"
	LevelGood         Level = "good"
	LevelInsufficient Level = "insufficient"
	LevelLow          Level = "low"
)

// Lower bounds of the bands.
const (
	ThresholdVeryHigh     = 80
	ThresholdGood         = 60
	ThresholdInsufficient = 40
)

// LevelFor maps an index to its band.
func LevelFor(index int) Level {
	switch {
	case index >= ThresholdVeryHigh:
		return LevelVeryHigh
	case index >= ThresholdGood:
		return LevelGood
	case index >= ThresholdInsufficient:
		return LevelInsufficient
	default:
		return LevelLow
	}
}

// Comment is the recommendation attached to the band.
func (l Level) Comment() string {
	switch l {
	case LevelVeryHigh:
		return "multimedia equipment is used at a very high level; consolidating the current results is recommended."
	case LevelGood:
		return "the technical indicator of multimedia use is in the 60–79 % range, which is rated average to good."
	case LevelInsufficient:
		return "multimedia tools are not used enough; the technical base needs strengthening in some areas."
	default:
		return "multimedia resources are used at a low level; technical equipment and methodological support should be increased as a priority."
	}
}

// Summary is the sentence shown under the dashboard cards.
func Summary(index int) string {
	return fmt.Sprintf("By our calculations the technical index of multimedia use is %d %%, which means %s",
		index, LevelFor(index).Comment())
}
