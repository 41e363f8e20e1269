package pages

import (
	"context"

	"github.com/a-h/templ"
)

// resultsScript fills the shell from /api/results-data. All values go through textContent.
const resultsScript = `
(async function () {
  const root = document.getElementById("results");
  const el = (tag, text, cls) => { const n = document.createElement(tag); if (text !== undefined) n.textContent = text; if (cls) n.className = cls; return n; };
  let res;
  try { res = await fetch("/api/results-data", {credentials: "same-origin"}); } catch (e) { root.replaceChildren(el("p", "결과를 불러오지 못했습니다.", "error")); return; }
  if (res.status === 401) { location.href = "/login"; return; }
  if (res.status === 404) { location.href = "/survey"; return; }
  if (!res.ok) { root.replaceChildren(el("p", "결과를 처리하는 중 오류가 발생했습니다.", "error")); return; }
  const data = await res.json();
  root.replaceChildren();
  root.append(el("h2", data.matched_persona + " 유형"), el("p", "연령대: " + data.age_bracket));
  root.append(el("h2", "생애주기 재무 계획"));
  if (data.lifecycle_plans.length === 0) root.append(el("p", "표시할 계획이 없습니다."));
  for (const plan of data.lifecycle_plans) {
    const sec = el("section", undefined, "status-" + plan.status);
    sec.append(el("h3", plan.age_group + " · " + plan.status));
    const ul = el("ul");
    for (const task of plan.tasks) ul.append(el("li", task));
    sec.append(ul);
    root.append(sec);
  }
  root.append(el("h2", "맞춤 뉴스 해설"));
  if (data.personalized_articles.length === 0) root.append(el("p", "아직 분석된 기사가 없습니다."));
  for (const a of data.personalized_articles) {
    const art = el("article");
    art.append(el("h3", a.title));
    if (a.goal) art.append(el("small", "목표: " + a.goal));
    art.append(el("p", a.summary), el("p", a.recommendation));
    root.append(art);
  }
})();
`

// Results is the dashboard shell; the payload is fetched client-side.
func Results() templ.Component {
	return Layout("내 리포트", component(func(ctx context.Context, h *html) {
		h.raw(`<h1>내 맞춤 리포트</h1><div id="results"><p>결과를 불러오는 중입니다…</p></div>`)
		h.raw(`<script nonce="`)
		h.text(templ.GetNonce(ctx))
		h.raw(`">` + resultsScript + `</script>`)
	}))
}
