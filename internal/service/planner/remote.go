package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/lifefinance/navigator/internal/config"
	"github.com/lifefinance/navigator/internal/matching"
	"github.com/lifefinance/navigator/internal/model"
)

// RemoteProvider asks an external plan-generation service for a plan keyed by
// labels such as "30대 초반 (31-35세)". Failures never reach the caller: the
// results page renders with an empty plan instead.
type RemoteProvider struct {
	endpoint string
	http     *http.Client
}

func NewRemoteProvider(endpoint string, timeout time.Duration) *RemoteProvider {
	return &RemoteProvider{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

func (p *RemoteProvider) Name() string {
	return config.PlanSourceRemote
}

// planRequest is the profile without any identifier.
type planRequest struct {
	Age             int      `json:"age"`
	Gender          string   `json:"gender"`
	Occupation      string   `json:"occupation"`
	Residence       string   `json:"residence"`
	MonthlyIncome   int      `json:"monthly_income"`
	Dependents      int      `json:"dependents"`
	InvestmentStyle string   `json:"investment_style"`
	FinancialGoal   []string `json:"financial_goal"`
}

type planStep struct {
	label string
	tasks []string
}

func (p *RemoteProvider) Plans(ctx context.Context, profile *model.Profile) ([]model.PlanEntry, error) {
	steps, err := p.fetch(ctx, profile)
	if err != nil {
		slog.Warn("plan service unavailable, returning empty plan", "endpoint", p.endpoint, "error", err)
		return []model.PlanEntry{}, nil
	}

	entries := make([]model.PlanEntry, 0, len(steps))
	for _, s := range steps {
		entries = append(entries, matching.ResolveLabel(profile.Age, s.label, s.tasks))
	}
	return entries, nil
}

func (p *RemoteProvider) fetch(ctx context.Context, profile *model.Profile) ([]planStep, error) {
	goals := []string(profile.FinancialGoal)
	if goals == nil {
		goals = []string{}
	}
	body, err := json.Marshal(planRequest{
		Age:             profile.Age,
		Gender:          profile.Gender,
		Occupation:      profile.Occupation,
		Residence:       profile.Residence,
		MonthlyIncome:   profile.MonthlyIncome,
		Dependents:      profile.Dependents,
		InvestmentStyle: profile.InvestmentStyle,
		FinancialGoal:   goals,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	steps, err := decodeSteps(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return steps, nil
}

// decodeSteps reads a JSON object of label -> task list, keeping the key
// order the service sent.
func decodeSteps(r io.Reader) ([]planStep, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected object, got %v", tok)
	}

	steps := []planStep{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		label, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected string key, got %v", tok)
		}

		var tasks []string
		if err := dec.Decode(&tasks); err != nil {
			return nil, fmt.Errorf("tasks for %q: %w", label, err)
		}
		steps = append(steps, planStep{label: label, tasks: tasks})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return steps, nil
}
