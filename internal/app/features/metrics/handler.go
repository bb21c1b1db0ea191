// internal/app/features/metrics/handler.go
package metrics

import (
	"errors"
	"net/http"

	orgstatstore "github.com/dalemusser/mediaindex/internal/app/store/orgstats"
	"github.com/dalemusser/mediaindex/internal/app/system/timeouts"
	"github.com/dalemusser/mediaindex/internal/domain/models"
	"github.com/dalemusser/mediaindex/internal/domain/techindex"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"go.uber.org/zap"
	"google.golang.org/protobuf/proto"
)

// Handler exposes the latest record as Prometheus gauges.
type Handler struct {
	Repo orgstatstore.Repository
	Log  *zap.Logger
}

func NewHandler(repo orgstatstore.Repository, logger *zap.Logger) *Handler {
	return &Handler{Repo: repo, Log: logger}
}

// Serve handles GET /metrics in the text exposition format. With no
// record stored every gauge reads 0.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Short(), h.Log, "metrics scrape")
	defer cancel()

	latest, err := h.Repo.Latest(ctx)
	if err != nil && !errors.Is(err, orgstatstore.ErrNotFound) {
		h.Log.Error("metrics: load latest stat failed", zap.Error(err))
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}
	count, err := h.Repo.Count(ctx)
	if err != nil {
		h.Log.Error("metrics: count stats failed", zap.Error(err))
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", string(expfmt.NewFormat(expfmt.TypeTextPlain)))
	for _, mf := range families(latest, count) {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			h.Log.Warn("metrics: write failed", zap.Error(err))
			return
		}
	}
}

// families builds the exposition for one record. Names are sorted as
// scrapers expect.
func families(s models.OrganizationStat, records int64) []*dto.MetricFamily {
	res := techindex.Breakdown(techindex.InputFrom(s))

	return []*dto.MetricFamily{
		gauge("mediaindex_classrooms", "Classrooms with multimedia equipment.",
			sample(float64(s.ClassroomCount))),
		gauge("mediaindex_factor", "Normalized index factors in [0, 1].",
			sample(res.RoomUtilization, "factor", "room_utilization"),
			sample(res.SurveyFactor, "factor", "survey"),
			sample(res.Variety, "factor", "variety"),
		),
		gauge("mediaindex_lessons", "Multimedia lessons by teaching form.",
			sample(float64(s.Lectures), "form", "lecture"),
			sample(float64(s.Labs), "form", "lab"),
			sample(float64(s.Practicals), "form", "practical"),
		),
		gauge("mediaindex_records", "Stored organization statistics records.",
			sample(float64(records))),
		gauge("mediaindex_surveys", "Survey responses collected.",
			sample(float64(s.SurveyCount))),
		gauge("mediaindex_technical_index", "Technical index of multimedia use, 0 to 100.",
			sample(float64(s.TechnicalIndex))),
	}
}

func gauge(name, help string, ms ...*dto.Metric) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name:   proto.String(name),
		Help:   proto.String(help),
		Type:   dto.MetricType_GAUGE.Enum(),
		Metric: ms,
	}
}

// sample builds one gauge sample; labels are name/value pairs.
func sample(v float64, labels ...string) *dto.Metric {
	m := &dto.Metric{Gauge: &dto.Gauge{Value: proto.Float64(v)}}
	for i := 0; i+1 < len(labels); i += 2 {
		m.Label = append(m.Label, &dto.LabelPair{
			Name:  proto.String(labels[i]),
			Value: proto.String(labels[i+1]),
		})
	}
	return m
}
