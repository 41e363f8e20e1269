package validation

import (
	"errors"
	"strings"
)

var (
	ErrPasswordTooShort = errors.New("비밀번호는 12자 이상이어야 합니다.")
	ErrPasswordTooLong  = errors.New("비밀번호는 72바이트를 넘을 수 없습니다.")
	ErrPasswordCommon   = errors.New("너무 흔한 비밀번호입니다. 다른 비밀번호를 사용해주세요.")
)

var commonPasswordPatterns = []string{
	"password", "123456", "qwerty", "admin", "letmein",
	"welcome", "111111", "abc123", "iloveyou", "sunshine",
}

// ValidatePassword enforces a 12 character minimum and bcrypt's 72 byte input limit.
func ValidatePassword(password string) error {
	if len([]rune(password)) < 12 {
		return ErrPasswordTooShort
	}

	// bcrypt silently truncates longer input
	if len(password) > 72 {
		return ErrPasswordTooLong
	}

	lower := strings.ToLower(password)
	for _, pattern := range commonPasswordPatterns {
		if strings.Contains(lower, pattern) {
			return ErrPasswordCommon
		}
	}

	return nil
}
