// Package techindex computes the multimedia technical index of an
// organization and the small read-side projections the dashboard draws.
//
// index.go holds the pure Compute/Breakdown functions. The score is
//
//	score = 50*room_utilization + 30*survey_factor + 20*variety
//
// evaluated in exact rational arithmetic and rounded half-to-even, so the
// boundary cases (87.5 → 88, 4.5 → 4) do not depend on float rounding.
//
// This deliberately differs from round(score*100) over float64, which lands
// a true .5 tie on the wrong side whenever the binary product falls just
// below it. About 0.2% of realistic inputs are affected, for example
// 5 classrooms, 11/3/2 lessons and 130 surveys: the exact score is 55.5,
// so the index is 56 where float rounding gives 55. Keep the rational path.
//
// trend.go and distribution.go turn stored records into parallel
// label/value slices for the charts. level.go maps an index to a band and
// the summary sentence shown under the cards.
package techindex
