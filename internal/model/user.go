package model

import (
	"strings"
	"time"
)

const (
	SignupMethodEmail = "email"
	SignupMethodKakao = "kakao"
)

type User struct {
	ID                string     `db:"id" json:"id"`
	Email             string     `db:"email" json:"email"`
	Name              string     `db:"name" json:"name"`
	PasswordHash      *string    `db:"password_hash" json:"-"` // Nullable for Kakao accounts
	SignupMethod      string     `db:"signup_method" json:"signup_method"`
	KakaoAccessToken  *string    `db:"kakao_access_token" json:"-"`
	KakaoRefreshToken *string    `db:"kakao_refresh_token" json:"-"`
	KakaoTokenExpiry  *time.Time `db:"kakao_token_expiry" json:"-"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
}

func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

func (u *User) HasKakaoToken() bool {
	return u.KakaoAccessToken != nil && *u.KakaoAccessToken != ""
}

// DisplayName falls back to the local part of the email address.
func (u *User) DisplayName() string {
	if strings.TrimSpace(u.Name) != "" {
		return u.Name
	}
	local, _, _ := strings.Cut(u.Email, "@")
	return local
}
