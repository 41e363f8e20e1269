package pages

import (
	"context"

	"github.com/a-h/templ"
)

type LoginForm struct {
	Email        string
	Error        string
	KakaoEnabled bool
}

func Login(form LoginForm) templ.Component {
	return Layout("로그인", component(func(ctx context.Context, h *html) {
		h.raw(`<h1>로그인</h1>`)
		h.errorBox(form.Error)
		h.raw(`<form method="post" action="/login">`)
		h.csrfField(ctx)
		h.input("이메일", "email", "email", form.Email, true)
		h.input("비밀번호", "password", "password", "", true)
		h.raw(`<button type="submit">로그인</button></form>`)
		if form.KakaoEnabled {
			h.raw(`<a class="button" href="/auth/kakao">카카오로 시작하기</a>`)
		}
		h.raw(`<p>계정이 없으신가요? <a href="/register">회원가입</a></p>`)
	}))
}

type RegisterForm struct {
	Email string
	Name  string
	Error string
}

func Register(form RegisterForm) templ.Component {
	return Layout("회원가입", component(func(ctx context.Context, h *html) {
		h.raw(`<h1>회원가입</h1>`)
		h.errorBox(form.Error)
		h.raw(`<form method="post" action="/register">`)
		h.csrfField(ctx)
		h.input("이메일", "email", "email", form.Email, true)
		h.input("이름", "text", "name", form.Name, false)
		h.input("비밀번호 (12자 이상)", "password", "password", "", true)
		h.raw(`<button type="submit">가입하기</button></form>`)
		h.raw(`<p>이미 계정이 있으신가요? <a href="/login">로그인</a></p>`)
	}))
}
