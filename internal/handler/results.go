package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/lifefinance/navigator/internal/ctxkeys"
	"github.com/lifefinance/navigator/internal/service"
	"github.com/lifefinance/navigator/internal/ui"
	"github.com/lifefinance/navigator/internal/ui/pages"
)

type resultsHandler struct {
	resultsService *service.ResultsService
	surveyService  *service.SurveyService
}

func NewResultsHandler(resultsService *service.ResultsService, surveyService *service.SurveyService) *resultsHandler {
	return &resultsHandler{
		resultsService: resultsService,
		surveyService:  surveyService,
	}
}

// ResultsPage renders the dashboard shell; users without answers go to the survey first.
func (h *resultsHandler) ResultsPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	_, err := h.surveyService.Profile(user.ID)
	if errors.Is(err, service.ErrProfileMissing) {
		http.Redirect(w, r, "/survey", http.StatusSeeOther)
		return
	}
	if err != nil {
		slog.Error("failed to load profile", "error", err, "user_id", user.ID)
	}

	ui.Render(w, r, pages.Results())
}

// ResultsData returns the aggregated payload. Failures never leak partial data.
func (h *resultsHandler) ResultsData(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	results, err := h.resultsService.Results(r.Context(), user.ID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, results)
	case errors.Is(err, service.ErrProfileMissing):
		writeJSONError(w, http.StatusNotFound, "설문 정보가 없습니다. 설문을 먼저 완료해 주세요.")
	default:
		writeJSONError(w, http.StatusInternalServerError, "결과를 처리하는 중 오류가 발생했습니다.")
	}
}
