package matching

import (
	"fmt"

	"github.com/lifefinance/navigator/internal/config"
	"github.com/lifefinance/navigator/internal/model"
)

const (
	Bracket20s = "20대"
	Bracket30s = "30대"
	Bracket40s = "40대"
	Bracket50s = "50대"
	Bracket60s = "60대 이상"
)

// AgeBracket derives the coarse decade bracket from age alone.
// Ages under 20 fall into the 20s bracket.
func AgeBracket(age int) string {
	switch {
	case age < 30:
		return Bracket20s
	case age < 40:
		return Bracket30s
	case age < 50:
		return Bracket40s
	case age < 60:
		return Bracket50s
	default:
		return Bracket60s
	}
}

// ArticleQuery carries everything either article strategy may key on.
type ArticleQuery struct {
	Persona string
	Age     int
	Goals   []string
}

// ArticleMatcher selects the pre-computed summaries relevant to a reader.
// Articles without a match are skipped; an empty result is valid.
type ArticleMatcher interface {
	Match(q ArticleQuery, articles []model.ArticleAnalysis) []model.PersonalizedArticle
	Name() string
}

// NewArticleMatcher returns the matcher for the configured strategy.
func NewArticleMatcher(strategy string) (ArticleMatcher, error) {
	switch strategy {
	case config.ArticleStrategyPersona, "":
		return PersonaArticleMatcher{}, nil
	case config.ArticleStrategyBracket:
		return BracketArticleMatcher{}, nil
	default:
		return nil, fmt.Errorf("unknown article strategy: %s (supported: persona, bracket)", strategy)
	}
}

// PersonaArticleMatcher emits analysis[persona] for every article that has it.
type PersonaArticleMatcher struct{}

func (PersonaArticleMatcher) Name() string {
	return config.ArticleStrategyPersona
}

func (PersonaArticleMatcher) Match(q ArticleQuery, articles []model.ArticleAnalysis) []model.PersonalizedArticle {
	result := []model.PersonalizedArticle{}
	for _, article := range articles {
		entry, ok := article.Analysis[q.Persona]
		if !ok {
			continue
		}
		result = append(result, model.PersonalizedArticle{
			Title:          titleOrDefault(article.Title),
			Summary:        entry.Summary,
			Recommendation: entry.Recommendation,
		})
	}
	return result
}

// BracketArticleMatcher looks up analysis[bracket][goal] for the reader's
// goals in order and emits at most one result per article: the first goal
// that matches.
type BracketArticleMatcher struct{}

func (BracketArticleMatcher) Name() string {
	return config.ArticleStrategyBracket
}

func (BracketArticleMatcher) Match(q ArticleQuery, articles []model.ArticleAnalysis) []model.PersonalizedArticle {
	bracket := AgeBracket(q.Age)
	goals := make([]string, 0, len(q.Goals))
	for _, g := range q.Goals {
		goals = append(goals, Normalize(g))
	}

	result := []model.PersonalizedArticle{}
	for _, article := range articles {
		entry, ok := article.Analysis[bracket]
		if !ok {
			continue
		}
		for _, goal := range goals {
			record, ok := entry.Goals[goal]
			if !ok {
				continue
			}
			result = append(result, model.PersonalizedArticle{
				Title:          titleOrDefault(article.Title),
				Summary:        record.Summary,
				Recommendation: record.Recommendation,
				Goal:           goal,
			})
			break
		}
	}
	return result
}

func titleOrDefault(title string) string {
	if title == "" {
		return "제목 없음"
	}
	return title
}
