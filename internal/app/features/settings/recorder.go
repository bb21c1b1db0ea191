// internal/app/features/settings/recorder.go
package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	orgstatstore "github.com/dalemusser/mediaindex/internal/app/store/orgstats"
	"github.com/dalemusser/mediaindex/internal/domain/models"
	"github.com/dalemusser/mediaindex/internal/domain/techindex"
	"go.uber.org/zap"
)

// Mode controls what a settings submission does to existing records.
type Mode string

const (
	// ModeOverwrite replaces the most recent record, keeping one snapshot.
	ModeOverwrite Mode = "overwrite"
	// ModeAppend stores every submission as a new snapshot, which is what
	// feeds the trend chart.
	ModeAppend Mode = "append"
)

// ParseMode accepts "overwrite" or "append"; empty means overwrite.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeOverwrite:
		return ModeOverwrite, nil
	case ModeAppend:
		return ModeAppend, nil
	}
	return "", fmt.Errorf("unknown settings mode %q (want overwrite or append)", s)
}

// Submission is one coerced settings form.
type Submission struct {
	Name       string
	Classrooms int
	Lectures   int
	Labs       int
	Practicals int
	Surveys    int
}

// Recorder turns submissions into stored records. It always recomputes the
// technical index and refreshes CreatedAt before saving.
type Recorder struct {
	Repo orgstatstore.Repository
	Mode Mode
	Now  func() time.Time
	Log  *zap.Logger
}

// NewRecorder returns a Recorder using the wall clock.
func NewRecorder(repo orgstatstore.Repository, mode Mode, logger *zap.Logger) *Recorder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recorder{Repo: repo, Mode: mode, Now: time.Now, Log: logger}
}

// Record computes the index for sub and persists it.
func (rc *Recorder) Record(ctx context.Context, sub Submission) (models.OrganizationStat, error) {
	stat := models.OrganizationStat{
		Name:           sub.Name,
		ClassroomCount: sub.Classrooms,
		Lectures:       sub.Lectures,
		Labs:           sub.Labs,
		Practicals:     sub.Practicals,
		SurveyCount:    sub.Surveys,
	}

	if rc.Mode != ModeAppend {
		latest, err := rc.Repo.Latest(ctx)
		switch {
		case err == nil:
			stat.ID = latest.ID
		case errors.Is(err, orgstatstore.ErrNotFound):
		default:
			return models.OrganizationStat{}, fmt.Errorf("load latest stat: %w", err)
		}
	}

	stat.CreatedAt = rc.Now().UTC()
	stat = techindex.Apply(stat)

	saved, err := rc.Repo.Save(ctx, stat)
	if err != nil {
		return models.OrganizationStat{}, fmt.Errorf("save stat: %w", err)
	}

	rc.Log.Info("organization stats recorded",
		zap.String("id", saved.ID.Hex()),
		zap.String("mode", string(rc.Mode)),
		zap.Int("technical_index", saved.TechnicalIndex))
	return saved, nil
}
