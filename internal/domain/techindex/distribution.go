package techindex

import "github.com/dalemusser/mediaindex/internal/domain/models"

// Chart labels for the teaching forms, in display order.
const (
	LabelLecture   = "Lecture"
	LabelLab       = "Laboratory"
	LabelPractical = "Practical"
)

// Distribution returns the lesson counts of one record by teaching form,
// skipping forms with no lessons. Order is always lecture, lab, practical.
func Distribution(s models.OrganizationStat) (labels []string, values []int) {
	labels = []string{}
	values = []int{}
	for _, form := range []struct {
		label string
		count int
	}{
		{LabelLecture, s.Lectures},
		{LabelLab, s.Labs},
		{LabelPractical, s.Practicals},
	} {
		if form.count > 0 {
			labels = append(labels, form.label)
			values = append(values, form.count)
		}
	}
	return labels, values
}
