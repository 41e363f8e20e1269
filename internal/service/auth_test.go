package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
)

func newAuthService(t *testing.T) (*AuthService, repository.UserRepository) {
	t.Helper()
	users := repository.NewUserRepository(newTestDB(t))
	return NewAuthService(users, "test-secret", false, time.Hour), users
}

func TestRegisterAndLogin(t *testing.T) {
	auth, _ := newAuthService(t)

	user, err := auth.Register(" Minji@Example.com ", "correct horse battery", "민지")
	require.NoError(t, err)
	assert.Equal(t, "minji@example.com", user.Email)
	assert.Equal(t, model.SignupMethodEmail, user.SignupMethod)

	_, err = auth.Register("minji@example.com", "another long passphrase", "")
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	got, err := auth.Login("MINJI@example.com", "correct horse battery")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = auth.Login("minji@example.com", "wrong horse battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = auth.Login("nobody@example.com", "correct horse battery")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	auth, _ := newAuthService(t)

	_, err := auth.Register("not-an-email", "correct horse battery", "")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = auth.Register("a@example.com", "short", "")
	assert.Error(t, err)
}

func TestLoginKakaoAccountHasNoPassword(t *testing.T) {
	auth, users := newAuthService(t)
	createTestUser(t, users, &model.User{Email: "kakao@example.com", SignupMethod: model.SignupMethodKakao})

	_, err := auth.Login("kakao@example.com", "anything at all")
	assert.ErrorIs(t, err, ErrKakaoAccount)
}

func TestJWTSession(t *testing.T) {
	auth, _ := newAuthService(t)
	user, err := auth.Register("jwt@example.com", "correct horse battery", "")
	require.NoError(t, err)

	token, err := auth.GenerateJWT(user)
	require.NoError(t, err)

	got, err := auth.UserFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = auth.UserFromToken(token + "x")
	assert.Error(t, err)

	other := NewAuthService(nil, "other-secret", false, time.Hour)
	_, err = other.VerifyJWT(token)
	assert.Error(t, err)

	expired := NewAuthService(nil, "test-secret", false, -time.Minute)
	stale, err := expired.GenerateJWT(user)
	require.NoError(t, err)
	_, err = auth.VerifyJWT(stale)
	assert.Error(t, err)
}

func TestSessionCookies(t *testing.T) {
	auth, _ := newAuthService(t)

	rec := httptest.NewRecorder()
	require.NoError(t, auth.StartSession(rec, &model.User{ID: "u1", Email: "a@example.com"}))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, AuthCookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.NotEmpty(t, cookies[0].Value)

	rec = httptest.NewRecorder()
	auth.ClearJWTCookie(rec)
	cleared := rec.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
}

func TestAuthenticateKakao(t *testing.T) {
	auth, users := newAuthService(t)
	expiry := time.Now().Add(6 * time.Hour)
	token := &oauth2.Token{AccessToken: "access-1", RefreshToken: "refresh-1", Expiry: expiry}

	user, err := auth.AuthenticateKakao(&KakaoAccount{ID: 1, Email: "Kakao@Example.com", Nickname: "카카오"}, token)
	require.NoError(t, err)
	assert.Equal(t, model.SignupMethodKakao, user.SignupMethod)
	assert.Equal(t, "카카오", user.Name)

	stored, err := users.ByEmail("kakao@example.com")
	require.NoError(t, err)
	assert.Equal(t, "access-1", *stored.KakaoAccessToken)

	// A second login refreshes the stored pair on the same account.
	again, err := auth.AuthenticateKakao(&KakaoAccount{ID: 1, Email: "kakao@example.com"}, &oauth2.Token{AccessToken: "access-2"})
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)

	stored, err = users.ByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "access-2", *stored.KakaoAccessToken)
	assert.Equal(t, "refresh-1", *stored.KakaoRefreshToken)
}

func TestAuthenticateKakaoLinksEmailAccount(t *testing.T) {
	auth, users := newAuthService(t)
	existing, err := auth.Register("linked@example.com", "correct horse battery", "")
	require.NoError(t, err)

	user, err := auth.AuthenticateKakao(&KakaoAccount{Email: "linked@example.com"}, &oauth2.Token{AccessToken: "a"})
	require.NoError(t, err)
	assert.Equal(t, existing.ID, user.ID)

	stored, err := users.ByID(existing.ID)
	require.NoError(t, err)
	assert.Equal(t, model.SignupMethodEmail, stored.SignupMethod)
	assert.True(t, stored.HasPassword())
	assert.True(t, stored.HasKakaoToken())
}
