// internal/domain/models/organizationstat.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganizationStat is one snapshot of the aggregate counts an organization
// enters on the settings page, plus the technical index derived from them.
//
// TechnicalIndex is always recomputed from the five counts before a write;
// it is never edited on its own.
type OrganizationStat struct {
	ID     primitive.ObjectID `bson:"_id" json:"id"`
	Name   string             `bson:"name" json:"name"`
	NameCI string             `bson:"name_ci" json:"-"` // ← always stored

	ClassroomCount int `bson:"classroom_count" json:"classroom_count"`

	// Multimedia lessons by teaching form
	Lectures   int `bson:"lectures" json:"lectures"`
	Labs       int `bson:"labs" json:"labs"`
	Practicals int `bson:"practicals" json:"practicals"`

	SurveyCount int `bson:"survey_count" json:"survey_count"`

	TechnicalIndex int       `bson:"technical_index" json:"technical_index"` // 0–100
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// TotalLessons is the number of multimedia lessons across all teaching forms.
func (s OrganizationStat) TotalLessons() int {
	return s.Lectures + s.Labs + s.Practicals
}

// DisplayName returns the organization name, or a placeholder when blank.
func (s OrganizationStat) DisplayName() string {
	if s.Name == "" {
		return DefaultOrgName
	}
	return s.Name
}

// DefaultOrgName is shown wherever an organization has not been named yet.
const DefaultOrgName = "Organization name not set"
