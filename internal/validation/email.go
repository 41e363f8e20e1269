package validation

import (
	"errors"
	"net/mail"
)

var (
	ErrEmailRequired = errors.New("이메일을 입력해주세요.")
	ErrEmailTooLong  = errors.New("이메일 주소가 너무 깁니다. (최대 254자)")
	ErrEmailFormat   = errors.New("올바른 이메일 주소가 아닙니다.")
)

// ValidateEmail checks length (RFC 5321) and format (RFC 5322 via net/mail).
// Display-name forms such as "Name <a@b.c>" are rejected.
func ValidateEmail(email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if len(email) > 254 {
		return ErrEmailTooLong
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrEmailFormat
	}

	return nil
}
