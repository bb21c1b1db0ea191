// internal/app/features/dashboard/api.go
package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/dalemusser/mediaindex/internal/domain/techindex"
	"go.uber.org/zap"
)

type series[T any] struct {
	Labels []string `json:"labels"`
	Values []T      `json:"values"`
}

type factors struct {
	RoomUtilization float64 `json:"room_utilization"`
	Survey          float64 `json:"survey"`
	Variety         float64 `json:"variety"`
}

type apiResponse struct {
	OrgName        string      `json:"org_name"`
	TechnicalIndex int         `json:"technical_index"`
	Level          string      `json:"level"`
	Summary        string      `json:"summary"`
	Classrooms     int         `json:"classroom_count"`
	Lessons        int         `json:"multimedia_lessons"`
	Surveys        int         `json:"survey_count"`
	Factors        factors     `json:"factors"`
	Trend          series[int] `json:"trend"`
	Distribution   series[int] `json:"distribution"`
}

// ServeAPI handles GET /api/dashboard.
//
// With no stored record it returns a zero index and empty series.
func (h *Handler) ServeAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	snap, err := h.load(r.Context())
	if err != nil {
		h.Log.Error("dashboard api: load failed", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "database error"})
		return
	}

	_ = json.NewEncoder(w).Encode(buildAPIResponse(snap))
}

func buildAPIResponse(s snapshot) apiResponse {
	idx := s.index()
	return apiResponse{
		OrgName:        s.Latest.DisplayName(),
		TechnicalIndex: idx,
		Level:          string(techindex.LevelFor(idx)),
		Summary:        techindex.Summary(idx),
		Classrooms:     s.Latest.ClassroomCount,
		Lessons:        s.Latest.TotalLessons(),
		Surveys:        s.Latest.SurveyCount,
		Factors: factors{
			RoomUtilization: s.Result.RoomUtilization,
			Survey:          s.Result.SurveyFactor,
			Variety:         s.Result.Variety,
		},
		Trend:        series[int]{Labels: s.TrendLabels, Values: s.TrendValues},
		Distribution: series[int]{Labels: s.DistLabels, Values: s.DistValues},
	}
}
