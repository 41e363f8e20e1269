package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
)

type fakeKakao struct {
	mu         sync.Mutex
	resultCode int
	memos      []string
	bearers    []string
	refreshes  int
}

func (f *fakeKakao) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth/token", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = r.ParseForm()

		w.Header().Set("Content-Type", "application/json")
		switch r.PostForm.Get("grant_type") {
		case "refresh_token":
			f.refreshes++
			_, _ = io.WriteString(w, `{"access_token":"refreshed","token_type":"bearer","refresh_token":"refresh-2","expires_in":21599}`)
		case "authorization_code":
			_, _ = io.WriteString(w, `{"access_token":"exchanged","token_type":"bearer","refresh_token":"refresh-1","expires_in":21599}`)
		default:
			http.Error(w, `{"error":"invalid_grant"}`, http.StatusBadRequest)
		}
	})
	mux.HandleFunc("GET /v2/user/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer exchanged" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"id":42,"kakao_account":{"email":"kakao@example.com","profile":{"nickname":"민지"}}}`)
	})
	mux.HandleFunc("POST /v2/api/talk/memo/default/send", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		_ = r.ParseForm()
		f.memos = append(f.memos, r.PostForm.Get("template_object"))
		f.bearers = append(f.bearers, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]int{"result_code": f.resultCode})
	})
	return mux
}

func newTestKakaoService(t *testing.T, fake *fakeKakao) (*KakaoService, repository.UserRepository) {
	t.Helper()
	srv := httptest.NewServer(fake.handler())
	t.Cleanup(srv.Close)

	users := repository.NewUserRepository(newTestDB(t))
	s := NewKakaoService("client-id", "client-secret", "https://navigator.example", users)
	s.apiURL = srv.URL
	s.oauth.Endpoint.AuthURL = srv.URL + "/oauth/authorize"
	s.oauth.Endpoint.TokenURL = srv.URL + "/oauth/token"
	return s, users
}

func TestKakaoExchange(t *testing.T) {
	s, _ := newTestKakaoService(t, &fakeKakao{})

	token, account, err := s.Exchange(context.Background(), "code-123")
	require.NoError(t, err)
	assert.Equal(t, "exchanged", token.AccessToken)
	assert.Equal(t, "refresh-1", token.RefreshToken)
	assert.Equal(t, "kakao@example.com", account.Email)
	assert.Equal(t, "민지", account.Nickname)
	assert.Equal(t, int64(42), account.ID)
}

func TestKakaoAuthCodeURL(t *testing.T) {
	s, _ := newTestKakaoService(t, &fakeKakao{})

	u := s.AuthCodeURL("state-1")
	assert.Contains(t, u, "client_id=client-id")
	assert.Contains(t, u, "state=state-1")
	assert.Contains(t, u, "redirect_uri=https%3A%2F%2Fnavigator.example%2Fauth%2Fkakao%2Fcallback")
}

func TestKakaoSendReportNotification(t *testing.T) {
	fake := &fakeKakao{}
	s, users := newTestKakaoService(t, fake)

	expiry := time.Now().Add(time.Hour)
	user := createTestUser(t, users, &model.User{
		Email:            "kakao@example.com",
		Name:             "민지",
		SignupMethod:     model.SignupMethodKakao,
		KakaoAccessToken: strPtr("valid"),
		KakaoTokenExpiry: &expiry,
	})

	require.NoError(t, s.SendReportNotification(context.Background(), user))

	require.Len(t, fake.memos, 1)
	assert.Equal(t, "Bearer valid", fake.bearers[0])
	assert.Equal(t, 0, fake.refreshes)

	var feed kakaoFeed
	require.NoError(t, json.Unmarshal([]byte(fake.memos[0]), &feed))
	assert.Equal(t, "feed", feed.ObjectType)
	assert.Contains(t, feed.Content.Title, "민지님")
	assert.Equal(t, "https://navigator.example/results", feed.Content.Link.WebURL)
	require.Len(t, feed.Buttons, 1)
}

func TestKakaoSendRefreshesExpiredToken(t *testing.T) {
	fake := &fakeKakao{}
	s, users := newTestKakaoService(t, fake)

	expired := time.Now().Add(-time.Hour)
	user := createTestUser(t, users, &model.User{
		Email:             "kakao@example.com",
		SignupMethod:      model.SignupMethodKakao,
		KakaoAccessToken:  strPtr("stale"),
		KakaoRefreshToken: strPtr("refresh-1"),
		KakaoTokenExpiry:  &expired,
	})

	require.NoError(t, s.SendReportNotification(context.Background(), user))
	assert.Equal(t, 1, fake.refreshes)
	assert.Equal(t, "Bearer refreshed", fake.bearers[0])

	stored, err := users.ByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "refreshed", *stored.KakaoAccessToken)
	assert.Equal(t, "refresh-2", *stored.KakaoRefreshToken)
}

func TestKakaoSendRejected(t *testing.T) {
	fake := &fakeKakao{resultCode: -401}
	s, users := newTestKakaoService(t, fake)

	user := createTestUser(t, users, &model.User{
		Email:            "kakao@example.com",
		SignupMethod:     model.SignupMethodKakao,
		KakaoAccessToken: strPtr("valid"),
	})

	err := s.SendReportNotification(context.Background(), user)
	assert.Error(t, err)
}

func TestKakaoSendWithoutToken(t *testing.T) {
	s, _ := newTestKakaoService(t, &fakeKakao{})

	err := s.SendReportNotification(context.Background(), &model.User{ID: "u1"})
	assert.ErrorIs(t, err, ErrKakaoNotLinked)
}
