package routes

import (
	"net/http"
	"time"

	"github.com/lifefinance/navigator/internal/app"
	"github.com/lifefinance/navigator/internal/handler"
	"github.com/lifefinance/navigator/internal/middleware"
)

// SetupRoutes builds the handler tree. The returned limiter must be stopped on shutdown.
func SetupRoutes(app *app.App) (http.Handler, *middleware.RateLimiter) {
	// Handlers
	home := handler.NewHomeHandler(app.DB, app.Personas)
	auth := handler.NewAuthHandler(app.AuthService, app.KakaoService)
	survey := handler.NewSurveyHandler(app.SurveyService)
	results := handler.NewResultsHandler(app.ResultsService, app.SurveyService)

	// Auth forms: 10 attempts per 15 minutes per IP
	limiter := middleware.NewRateLimiter(10, 15*time.Minute)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /{$}", home.Root)
	mux.HandleFunc("GET /healthz", home.Healthz)
	mux.HandleFunc("GET /api/personas", home.Personas)

	// Auth
	mux.HandleFunc("GET /register", middleware.RequireGuest(auth.RegisterPage))
	mux.HandleFunc("POST /register", limiter.Limit(middleware.RequireGuest(auth.Register)))
	mux.HandleFunc("GET /login", middleware.RequireGuest(auth.LoginPage))
	mux.HandleFunc("POST /login", limiter.Limit(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /logout", auth.Logout)

	// Kakao OAuth
	mux.HandleFunc("GET /auth/kakao", limiter.Limit(middleware.RequireGuest(auth.KakaoAuth)))
	mux.HandleFunc("GET /auth/kakao/callback", limiter.Limit(auth.KakaoCallback))

	// ============================================================================
	// PROTECTED ROUTES
	// ============================================================================

	// Survey
	mux.HandleFunc("GET /survey", middleware.RequireAuth(survey.SurveyPage))
	mux.HandleFunc("GET /survey/edit", middleware.RequireAuth(survey.EditPage))
	mux.HandleFunc("POST /survey", middleware.RequireAuth(survey.Submit))
	mux.HandleFunc("GET /api/survey", middleware.RequireAuthAPI(survey.ProfileJSON))

	// Results
	mux.HandleFunc("GET /results", middleware.RequireAuth(results.ResultsPage))
	mux.HandleFunc("GET /api/results-data", middleware.RequireAuthAPI(results.ResultsData))

	// ============================================================================
	// FALLBACK
	// ============================================================================

	mux.HandleFunc("/{path...}", home.NotFoundPage)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Recover,
		middleware.Config(app.Cfg), // Config first: CSRF reads it for the Secure flag
		middleware.NonceMiddleware, // Before SecurityHeaders
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService),
		middleware.WithURLPath,
	)

	return handler, limiter
}
