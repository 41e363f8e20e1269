package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
)

const kakaoAPIURL = "https://kapi.kakao.com"

var kakaoEndpoint = oauth2.Endpoint{
	AuthURL:   "https://kauth.kakao.com/oauth/authorize",
	TokenURL:  "https://kauth.kakao.com/oauth/token",
	AuthStyle: oauth2.AuthStyleInParams,
}

var ErrKakaoNotLinked = errors.New("user has no kakao token")

// KakaoAccount is the subset of /v2/user/me this app keys accounts on.
type KakaoAccount struct {
	ID       int64
	Email    string
	Nickname string
}

// KakaoService wraps the Kakao login flow and the "send to me" memo API.
type KakaoService struct {
	oauth          *oauth2.Config
	apiURL         string
	appURL         string
	userRepository repository.UserRepository
}

func NewKakaoService(clientID, clientSecret, appURL string, userRepository repository.UserRepository) *KakaoService {
	return &KakaoService{
		oauth: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  appURL + "/auth/kakao/callback",
			Scopes:       []string{"account_email", "profile_nickname", "talk_message"},
			Endpoint:     kakaoEndpoint,
		},
		apiURL:         kakaoAPIURL,
		appURL:         appURL,
		userRepository: userRepository,
	}
}

func (s *KakaoService) Configured() bool {
	return s.oauth.ClientID != ""
}

func (s *KakaoService) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state)
}

// Exchange trades the authorization code for tokens and loads the account email.
func (s *KakaoService) Exchange(ctx context.Context, code string) (*oauth2.Token, *KakaoAccount, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("token exchange: %w", err)
	}

	client := s.oauth.Client(ctx, token)
	resp, err := client.Get(s.apiURL + "/v2/user/me")
	if err != nil {
		return nil, nil, fmt.Errorf("get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("get user info: unexpected status %s", resp.Status)
	}

	var me struct {
		ID           int64 `json:"id"`
		KakaoAccount struct {
			Email   string `json:"email"`
			Profile struct {
				Nickname string `json:"nickname"`
			} `json:"profile"`
		} `json:"kakao_account"`
	}
	err = json.NewDecoder(resp.Body).Decode(&me)
	if err != nil {
		return nil, nil, fmt.Errorf("decode user info: %w", err)
	}
	if me.KakaoAccount.Email == "" {
		return nil, nil, fmt.Errorf("kakao account %d has no email", me.ID)
	}

	return token, &KakaoAccount{
		ID:       me.ID,
		Email:    me.KakaoAccount.Email,
		Nickname: me.KakaoAccount.Profile.Nickname,
	}, nil
}

// SendReportNotification pushes a feed message linking to /results.
// An expired access token is refreshed first and the new pair persisted.
func (s *KakaoService) SendReportNotification(ctx context.Context, user *model.User) error {
	token, err := s.token(ctx, user)
	if err != nil {
		return err
	}

	template, err := json.Marshal(s.reportTemplate(user.DisplayName()))
	if err != nil {
		return fmt.Errorf("marshal template: %w", err)
	}

	form := url.Values{}
	form.Set("template_object", string(template))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL+"/v2/api/talk/memo/default/send", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", "Bearer "+token.AccessToken)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("send memo: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read memo response: %w", err)
	}

	var result struct {
		ResultCode *int `json:"result_code"`
	}
	if err := json.Unmarshal(body, &result); err != nil || result.ResultCode == nil || *result.ResultCode != 0 {
		return fmt.Errorf("kakao memo rejected (status %d): %s", resp.StatusCode, body)
	}

	slog.Info("kakao message sent", "user_id", user.ID)
	return nil
}

func (s *KakaoService) token(ctx context.Context, user *model.User) (*oauth2.Token, error) {
	if !user.HasKakaoToken() {
		return nil, ErrKakaoNotLinked
	}

	current := &oauth2.Token{AccessToken: *user.KakaoAccessToken, TokenType: "Bearer"}
	if user.KakaoRefreshToken != nil {
		current.RefreshToken = *user.KakaoRefreshToken
	}
	if user.KakaoTokenExpiry != nil {
		current.Expiry = *user.KakaoTokenExpiry
	}

	fresh, err := s.oauth.TokenSource(ctx, current).Token()
	if err != nil {
		return nil, fmt.Errorf("refresh kakao token: %w", err)
	}

	if fresh.AccessToken != current.AccessToken {
		applyKakaoToken(user, fresh)
		err = s.userRepository.UpdateKakaoToken(user)
		if err != nil {
			slog.Warn("failed to persist refreshed kakao token", "error", err, "user_id", user.ID)
		}
	}

	return fresh, nil
}

type kakaoLink struct {
	WebURL       string `json:"web_url"`
	MobileWebURL string `json:"mobile_web_url"`
}

type kakaoFeed struct {
	ObjectType string `json:"object_type"`
	Content    struct {
		Title       string    `json:"title"`
		Description string    `json:"description"`
		ImageURL    string    `json:"image_url,omitempty"`
		Link        kakaoLink `json:"link"`
	} `json:"content"`
	Buttons []kakaoButton `json:"buttons"`
}

type kakaoButton struct {
	Title string    `json:"title"`
	Link  kakaoLink `json:"link"`
}

func (s *KakaoService) reportTemplate(name string) kakaoFeed {
	link := kakaoLink{WebURL: s.appURL + "/results", MobileWebURL: s.appURL + "/results"}

	feed := kakaoFeed{ObjectType: "feed"}
	feed.Content.Title = fmt.Sprintf("%s님, 새로운 맞춤 리포트가 도착했어요!", name)
	feed.Content.Description = "최신 경제 뉴스를 바탕으로 회원님만을 위한 분석이 업데이트되었습니다. 아래 버튼을 눌러 확인해보세요."
	feed.Content.Link = link
	feed.Buttons = []kakaoButton{{Title: "내 리포트 확인하기", Link: link}}
	return feed
}
