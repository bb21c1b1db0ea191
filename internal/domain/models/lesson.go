// internal/domain/models/lesson.go
package models

import "time"

// Teaching forms a lesson can take.
const (
	TeachingFormLecture  = "lecture"
	TeachingFormLab      = "lab"
	TeachingFormPractice = "practice"
	TeachingFormSeminar  = "seminar"
)

// Lesson records which multimedia tools a teacher used in a single lesson.
type Lesson struct {
	Subject      string    `bson:"subject"`
	Topic        string    `bson:"topic"`
	Date         time.Time `bson:"date"`
	TeachingForm string    `bson:"teaching_form"`

	UseVideo           bool `bson:"use_video"`
	UseAnimation       bool `bson:"use_animation"`
	UseSimulation      bool `bson:"use_simulation"` // virtual lab
	UseInteractiveTest bool `bson:"use_interactive_test"`
	UseARVR            bool `bson:"use_ar_vr"`
}

// MultimediaScore counts the multimedia tools used in the lesson (0..5).
func (l Lesson) MultimediaScore() int {
	score := 0
	for _, used := range []bool{
		l.UseVideo,
		l.UseAnimation,
		l.UseSimulation,
		l.UseInteractiveTest,
		l.UseARVR,
	} {
		if used {
			score++
		}
	}
	return score
}
