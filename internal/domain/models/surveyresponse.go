// internal/domain/models/surveyresponse.go
package models

// SurveyResponse is a student's short post-lesson questionnaire.
// Each item is on a 1–5 Likert scale.
type SurveyResponse struct {
	StudentCode string `bson:"student_code"`

	Clarity             int `bson:"clarity"`
	Interest            int `bson:"interest"`
	MultimediaHelp      int `bson:"multimedia_help"`
	OverallSatisfaction int `bson:"overall_satisfaction"`

	Comment string `bson:"comment,omitempty"`
}

// AverageScore is the mean of the four Likert items.
func (s SurveyResponse) AverageScore() float64 {
	return float64(s.Clarity+s.Interest+s.MultimediaHelp+s.OverallSatisfaction) / 4.0
}
