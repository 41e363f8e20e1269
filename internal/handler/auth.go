package handler

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/lifefinance/navigator/internal/ctxkeys"
	"github.com/lifefinance/navigator/internal/service"
	"github.com/lifefinance/navigator/internal/ui"
	"github.com/lifefinance/navigator/internal/ui/pages"
	"github.com/lifefinance/navigator/internal/validation"
)

const oauthStateCookie = "oauth_state"

type authHandler struct {
	authService  *service.AuthService
	kakaoService *service.KakaoService
}

func NewAuthHandler(authService *service.AuthService, kakaoService *service.KakaoService) *authHandler {
	return &authHandler{
		authService:  authService,
		kakaoService: kakaoService,
	}
}

func (h *authHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Login(pages.LoginForm{KakaoEnabled: h.kakaoService.Configured()}))
}

func (h *authHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")

	form := pages.LoginForm{Email: email, KakaoEnabled: h.kakaoService.Configured()}

	user, err := h.authService.Login(email, password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			form.Error = "이메일 또는 비밀번호가 올바르지 않습니다."
		case errors.Is(err, service.ErrKakaoAccount):
			form.Error = "카카오로 가입한 계정입니다. 카카오 로그인을 이용해 주세요."
		default:
			slog.Error("login failed", "error", err, "email", email)
			form.Error = "로그인 중 오류가 발생했습니다. 잠시 후 다시 시도해 주세요."
		}
		ui.RenderStatus(w, r, http.StatusBadRequest, pages.Login(form))
		return
	}

	err = h.authService.StartSession(w, user)
	if err != nil {
		slog.Error("failed to start session", "error", err, "user_id", user.ID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	slog.Info("user logged in", "user_id", user.ID)
	http.Redirect(w, r, "/results", http.StatusSeeOther)
}

func (h *authHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	ui.Render(w, r, pages.Register(pages.RegisterForm{}))
}

func (h *authHandler) Register(w http.ResponseWriter, r *http.Request) {
	email := strings.TrimSpace(r.FormValue("email"))
	name := strings.TrimSpace(r.FormValue("name"))
	password := r.FormValue("password")

	form := pages.RegisterForm{Email: email, Name: name}

	if err := validation.ValidateName(name); err != nil {
		form.Error = err.Error()
		ui.RenderStatus(w, r, http.StatusBadRequest, pages.Register(form))
		return
	}

	_, err := h.authService.Register(email, password, name)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidEmail):
			form.Error = "올바른 이메일 주소를 입력해 주세요."
		case errors.Is(err, service.ErrEmailAlreadyExists):
			form.Error = "이미 사용 중인 이메일입니다."
		case errors.Is(err, validation.ErrPasswordTooShort),
			errors.Is(err, validation.ErrPasswordTooLong),
			errors.Is(err, validation.ErrPasswordCommon):
			form.Error = err.Error()
		default:
			slog.Error("registration failed", "error", err, "email", email)
			form.Error = "회원가입 중 오류가 발생했습니다. 잠시 후 다시 시도해 주세요."
		}
		ui.RenderStatus(w, r, http.StatusBadRequest, pages.Register(form))
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *authHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.authService.ClearJWTCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// KakaoAuth starts the authorization-code flow with a state cookie.
func (h *authHandler) KakaoAuth(w http.ResponseWriter, r *http.Request) {
	if !h.kakaoService.Configured() {
		http.NotFound(w, r)
		return
	}

	state := generateOAuthState()

	cfg := ctxkeys.Config(r.Context())
	http.SetCookie(w, &http.Cookie{
		Name:     oauthStateCookie,
		Value:    state,
		Path:     "/",
		HttpOnly: true,
		Secure:   cfg != nil && cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   600,
	})

	http.Redirect(w, r, h.kakaoService.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

func (h *authHandler) KakaoCallback(w http.ResponseWriter, r *http.Request) {
	failed := func() {
		ui.RenderStatus(w, r, http.StatusBadRequest, pages.Login(pages.LoginForm{
			Error:        "카카오 로그인에 실패했습니다. 다시 시도해 주세요.",
			KakaoEnabled: h.kakaoService.Configured(),
		}))
	}

	state := r.URL.Query().Get("state")
	cookie, err := r.Cookie(oauthStateCookie)
	if err != nil || state == "" || cookie.Value != state {
		slog.Warn("kakao oauth state validation failed", "error", err)
		failed()
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:   oauthStateCookie,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Warn("kakao oauth callback missing code", "error_description", r.URL.Query().Get("error_description"))
		failed()
		return
	}

	token, account, err := h.kakaoService.Exchange(r.Context(), code)
	if err != nil {
		slog.Error("kakao oauth exchange failed", "error", err)
		failed()
		return
	}

	user, err := h.authService.AuthenticateKakao(account, token)
	if err != nil {
		slog.Error("kakao authentication failed", "error", err, "kakao_id", account.ID)
		failed()
		return
	}

	err = h.authService.StartSession(w, user)
	if err != nil {
		slog.Error("failed to start session", "error", err, "user_id", user.ID)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/results", http.StatusSeeOther)
}

func generateOAuthState() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate oauth state: " + err.Error())
	}
	return base64.RawURLEncoding.EncodeToString(b)
}
