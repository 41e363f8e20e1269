package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/lifefinance/navigator/internal/ctxkeys"
	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/service"
	"github.com/lifefinance/navigator/internal/ui"
	"github.com/lifefinance/navigator/internal/ui/pages"
	"github.com/lifefinance/navigator/internal/validation"
)

type surveyHandler struct {
	surveyService *service.SurveyService
}

func NewSurveyHandler(surveyService *service.SurveyService) *surveyHandler {
	return &surveyHandler{surveyService: surveyService}
}

// SurveyPage shows the empty form; users with answers go to the edit form.
func (h *surveyHandler) SurveyPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	_, err := h.surveyService.Profile(user.ID)
	switch {
	case err == nil:
		http.Redirect(w, r, "/survey/edit", http.StatusSeeOther)
	case errors.Is(err, service.ErrProfileMissing):
		ui.Render(w, r, pages.Survey(pages.SurveyForm{}))
	default:
		slog.Error("failed to load profile", "error", err, "user_id", user.ID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *surveyHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	profile, err := h.surveyService.Profile(user.ID)
	switch {
	case err == nil:
		ui.Render(w, r, pages.Survey(pages.SurveyForm{Profile: *profile, Edit: true}))
	case errors.Is(err, service.ErrProfileMissing):
		http.Redirect(w, r, "/survey", http.StatusSeeOther)
	default:
		slog.Error("failed to load profile", "error", err, "user_id", user.ID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// Submit stores the answers and continues to the results page.
// Invalid answers re-render the form with 400 and nothing is stored.
func (h *surveyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	profile, fieldErrs := parseSurvey(r)
	if len(fieldErrs) > 0 {
		renderSurveyErrors(w, r, profile, fieldErrs)
		return
	}

	err := h.surveyService.Submit(user.ID, profile)
	if err != nil {
		var invalid validation.FieldErrors
		if errors.As(err, &invalid) {
			renderSurveyErrors(w, r, profile, invalid)
			return
		}
		slog.Error("failed to save survey", "error", err, "user_id", user.ID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	slog.Info("survey submitted", "user_id", user.ID)
	http.Redirect(w, r, "/results", http.StatusSeeOther)
}

// ProfileJSON returns the stored answers for client-side prefill.
func (h *surveyHandler) ProfileJSON(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	profile, err := h.surveyService.Profile(user.ID)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, profile)
	case errors.Is(err, service.ErrProfileMissing):
		writeJSONError(w, http.StatusNotFound, "profile not found")
	default:
		slog.Error("failed to load profile", "error", err, "user_id", user.ID)
		writeJSONError(w, http.StatusInternalServerError, "internal server error")
	}
}

func renderSurveyErrors(w http.ResponseWriter, r *http.Request, profile *model.Profile, errs validation.FieldErrors) {
	ui.RenderStatus(w, r, http.StatusBadRequest, pages.Survey(pages.SurveyForm{Profile: *profile, Errors: errs}))
}

// parseSurvey reads the form. Non-numeric numbers are reported per field.
func parseSurvey(r *http.Request) (*model.Profile, validation.FieldErrors) {
	errs := validation.FieldErrors{}

	_ = r.ParseForm()

	number := func(field string) int {
		raw := strings.TrimSpace(r.PostForm.Get(field))
		n, err := strconv.Atoi(raw)
		if err != nil {
			errs[field] = "must be a whole number"
			return 0
		}
		return n
	}

	profile := &model.Profile{
		Age:             number("age"),
		Gender:          r.PostForm.Get("gender"),
		Occupation:      r.PostForm.Get("occupation"),
		Residence:       r.PostForm.Get("residence"),
		MonthlyIncome:   number("monthly_income"),
		Dependents:      number("dependents"),
		InvestmentStyle: r.PostForm.Get("investment_style"),
		FinancialGoal:   model.StringList(r.PostForm["financial_goal"]),
	}

	return profile, errs
}
