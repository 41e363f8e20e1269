package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/lifefinance/navigator/internal/ctxkeys"
)

const styles = `body{font-family:system-ui,sans-serif;max-width:720px;margin:2rem auto;padding:0 1rem;color:#1f2937}
label{display:block;margin:.75rem 0}input,select{display:block;width:100%;padding:.5rem;margin-top:.25rem}
fieldset{border:1px solid #e5e7eb;margin:.75rem 0}fieldset label{display:inline-block;margin-right:1rem}
fieldset input{display:inline;width:auto}button,.button{padding:.6rem 1.2rem;margin-top:1rem}
.error{color:#b91c1c}.status-완료{color:#6b7280}.status-진행중{color:#2563eb;font-weight:600}
nav{display:flex;gap:1rem;justify-content:flex-end}`

// Layout wraps a page body with the document shell and navigation.
func Layout(title string, body templ.Component) templ.Component {
	return component(func(ctx context.Context, h *html) {
		appName := "Life Finance Navigator"
		if cfg := ctxkeys.Config(ctx); cfg != nil && cfg.AppName != "" {
			appName = cfg.AppName
		}

		h.raw(`<!DOCTYPE html><html lang="ko"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<meta name="csrf-token" content="`)
		h.text(ctxkeys.CSRFToken(ctx))
		h.raw(`"><title>`)
		h.text(title + " | " + appName)
		h.raw(`</title><style>` + styles + `</style></head><body><nav>`)
		if ctxkeys.User(ctx) != nil {
			h.raw(`<a href="/results">내 리포트</a><a href="/survey/edit">설문 수정</a>`)
			h.raw(`<form method="post" action="/logout">`)
			h.csrfField(ctx)
			h.raw(`<button type="submit">로그아웃</button></form>`)
		} else {
			h.raw(`<a href="/login">로그인</a><a href="/register">회원가입</a>`)
		}
		h.raw(`</nav><main>`)
		h.render(ctx, body)
		h.raw(`</main></body></html>`)
	})
}

func NotFound() templ.Component {
	return Layout("페이지를 찾을 수 없습니다", component(func(ctx context.Context, h *html) {
		h.raw(`<h1>404</h1><p>요청하신 페이지를 찾을 수 없습니다.</p><a href="/">처음으로</a>`)
	}))
}
