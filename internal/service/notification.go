package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lifefinance/navigator/internal/model"
	"github.com/lifefinance/navigator/internal/repository"
)

type EmailNotifier interface {
	SendReportNotification(ctx context.Context, email, name string) error
}

type KakaoNotifier interface {
	SendReportNotification(ctx context.Context, user *model.User) error
}

// NotificationReport summarizes one batch run.
type NotificationReport struct {
	Total    int
	Sent     int
	Failed   int
	Skipped  int
	Duration time.Duration
}

// NotificationService tells every user their report was refreshed, over
// Kakao for Kakao signups and email for everyone else.
type NotificationService struct {
	userRepo repository.UserRepository
	email    EmailNotifier
	kakao    KakaoNotifier
}

func NewNotificationService(userRepo repository.UserRepository, email EmailNotifier, kakao KakaoNotifier) *NotificationService {
	return &NotificationService{
		userRepo: userRepo,
		email:    email,
		kakao:    kakao,
	}
}

// Run notifies all users. A failed delivery is logged and the batch moves on;
// only failing to list users or cancellation aborts the run.
func (s *NotificationService) Run(ctx context.Context) (NotificationReport, error) {
	start := time.Now()
	report := NotificationReport{}

	users, err := s.userRepo.All()
	if err != nil {
		return report, fmt.Errorf("failed to list users: %w", err)
	}
	report.Total = len(users)

	for _, user := range users {
		// Shutdown stops the batch; delivery failures do not
		if ctx.Err() != nil {
			report.Duration = time.Since(start)
			return report, fmt.Errorf("notification run interrupted after %d of %d users: %w",
				report.Sent+report.Failed+report.Skipped, report.Total, ctx.Err())
		}

		err := s.notify(ctx, user)
		switch {
		case errors.Is(err, errSkipNotification):
			report.Skipped++
		case err != nil:
			report.Failed++
			slog.Error("notification delivery failed",
				"error", err,
				"user_id", user.ID,
				"signup_method", user.SignupMethod,
			)
		default:
			report.Sent++
		}
	}

	report.Duration = time.Since(start)
	slog.Info("notification run finished",
		"total", report.Total,
		"sent", report.Sent,
		"failed", report.Failed,
		"skipped", report.Skipped,
		"duration", report.Duration,
	)
	return report, nil
}

var errSkipNotification = errors.New("no notification channel")

func (s *NotificationService) notify(ctx context.Context, user *model.User) error {
	switch user.SignupMethod {
	case model.SignupMethodKakao:
		if !user.HasKakaoToken() || s.kakao == nil {
			return errSkipNotification
		}
		return s.kakao.SendReportNotification(ctx, user)
	case model.SignupMethodEmail:
		if user.Email == "" || s.email == nil {
			return errSkipNotification
		}
		return s.email.SendReportNotification(ctx, user.Email, user.DisplayName())
	default:
		return errSkipNotification
	}
}
