package techindex

import (
	"math/big"

	"github.com/dalemusser/mediaindex/internal/domain/models"
)

// Weights in index points. They must sum to 100.
const (
	weightRooms   = 50
	weightSurveys = 30
	weightVariety = 20
)

const (
	// LessonsPerClassroom is the number of multimedia lessons one classroom
	// supports at full utilization.
	LessonsPerClassroom = 10

	// SurveyCap is the survey count at which the survey factor saturates.
	SurveyCap = 200

	lessonForms = 3
)

// Input holds the counts the index is computed from. Negative values are
// treated as zero.
type Input struct {
	Classrooms int
	Lectures   int
	Labs       int
	Practicals int
	Surveys    int
}

// InputFrom extracts the index inputs from a stored record.
func InputFrom(s models.OrganizationStat) Input {
	return Input{
		Classrooms: s.ClassroomCount,
		Lectures:   s.Lectures,
		Labs:       s.Labs,
		Practicals: s.Practicals,
		Surveys:    s.SurveyCount,
	}
}

// Result is the full breakdown behind an index value.
type Result struct {
	// The three normalized factors, each in [0, 1].
	RoomUtilization float64
	SurveyFactor    float64
	Variety         float64

	// Score is the weighted sum in [0, 100] before rounding.
	Score float64

	// Index is Score rounded half-to-even.
	Index int
}

// Compute returns the technical index (0–100) for the given counts.
func Compute(in Input) int {
	return Breakdown(in).Index
}

// Breakdown computes the index together with the factors that produced it.
func Breakdown(in Input) Result {
	in = in.normalized()

	rooms := roomUtilization(in)
	surveys := surveyFactor(in)
	variety := lessonVariety(in)

	points := new(big.Rat)
	points.Add(points, weighted(rooms, weightRooms))
	points.Add(points, weighted(surveys, weightSurveys))
	points.Add(points, weighted(variety, weightVariety))

	var res Result
	res.RoomUtilization, _ = rooms.Float64()
	res.SurveyFactor, _ = surveys.Float64()
	res.Variety, _ = variety.Float64()
	res.Score, _ = points.Float64()
	res.Index = roundHalfEven(points)
	return res
}

// Apply recomputes the record's TechnicalIndex from its counts.
func Apply(s models.OrganizationStat) models.OrganizationStat {
	s.TechnicalIndex = Compute(InputFrom(s))
	return s
}

func (in Input) normalized() Input {
	return Input{
		Classrooms: nonNegative(in.Classrooms),
		Lectures:   nonNegative(in.Lectures),
		Labs:       nonNegative(in.Labs),
		Practicals: nonNegative(in.Practicals),
		Surveys:    nonNegative(in.Surveys),
	}
}

// roomUtilization is lessons / (classrooms * 10), capped at 1.
func roomUtilization(in Input) *big.Rat {
	if in.Classrooms == 0 {
		return new(big.Rat)
	}
	total := new(big.Int)
	for _, n := range []int{in.Lectures, in.Labs, in.Practicals} {
		total.Add(total, big.NewInt(int64(n)))
	}
	capacity := new(big.Int).Mul(big.NewInt(int64(in.Classrooms)), big.NewInt(LessonsPerClassroom))
	return capOne(new(big.Rat).SetFrac(total, capacity))
}

// surveyFactor is surveys / 200, capped at 1.
func surveyFactor(in Input) *big.Rat {
	if in.Surveys == 0 {
		return new(big.Rat)
	}
	return capOne(big.NewRat(int64(in.Surveys), SurveyCap))
}

// lessonVariety is the share of teaching forms with at least one lesson.
func lessonVariety(in Input) *big.Rat {
	used := 0
	for _, n := range []int{in.Lectures, in.Labs, in.Practicals} {
		if n > 0 {
			used++
		}
	}
	return big.NewRat(int64(used), lessonForms)
}

func weighted(factor *big.Rat, weight int64) *big.Rat {
	return new(big.Rat).Mul(factor, big.NewRat(weight, 1))
}

func capOne(r *big.Rat) *big.Rat {
	one := big.NewRat(1, 1)
	if r.Cmp(one) > 0 {
		return one
	}
	return r
}

// roundHalfEven rounds a non-negative rational to the nearest integer,
// ties going to the even neighbour.
func roundHalfEven(r *big.Rat) int {
	q, rem := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	twice := rem.Lsh(rem, 1)
	switch cmp := twice.Cmp(r.Denom()); {
	case cmp > 0, cmp == 0 && q.Bit(0) == 1:
		q.Add(q, big.NewInt(1))
	}
	return int(q.Int64())
}

func nonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
