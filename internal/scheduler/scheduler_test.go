package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewRejectsUnknownTimezone(t *testing.T) {
	_, err := New("Mars/Olympus_Mons", 0)
	assert.Error(t, err)
}

func TestAddRejectsBadSchedule(t *testing.T) {
	s, err := New("Asia/Seoul", 0)
	require.NoError(t, err)

	err = s.Add("not a schedule", Job{Name: "noop", Run: func(context.Context) error { return nil }})
	assert.Error(t, err)
}

func TestJobRunsAndStopWaits(t *testing.T) {
	s, err := New("Asia/Seoul", time.Second)
	require.NoError(t, err)

	var runs atomic.Int32
	started := make(chan struct{}, 1)
	require.NoError(t, s.Add("@every 1s", Job{
		Name: "count",
		Run: func(ctx context.Context) error {
			runs.Add(1)
			select {
			case started <- struct{}{}:
			default:
			}
			return errors.New("errors are logged, not fatal")
		},
	}))
	require.Len(t, s.Entries(), 1)

	s.Start()
	s.Start()

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("job never ran")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.GreaterOrEqual(t, runs.Load(), int32(1))
}

func TestStopCancelsRunningJob(t *testing.T) {
	s, err := New("UTC", 0)
	require.NoError(t, err)

	cancelled := make(chan struct{})
	started := make(chan struct{})
	require.NoError(t, s.Add("@every 1s", Job{
		Name: "long",
		Run: func(ctx context.Context) error {
			close(started)
			<-ctx.Done()
			close(cancelled)
			return ctx.Err()
		},
	}))
	s.Start()

	select {
	case <-started:
	case <-time.After(3 * time.Second):
		t.Fatal("job never ran")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))

	select {
	case <-cancelled:
	default:
		t.Fatal("job context was not cancelled")
	}
}

func TestPanickingJobIsRecovered(t *testing.T) {
	s, err := New("UTC", 0)
	require.NoError(t, err)

	var runs atomic.Int32
	require.NoError(t, s.Add("@every 1s", Job{
		Name: "panics",
		Run: func(context.Context) error {
			runs.Add(1)
			panic("boom")
		},
	}))
	s.Start()

	require.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
}

func TestStopWithoutStart(t *testing.T) {
	s, err := New("UTC", 0)
	require.NoError(t, err)
	require.NoError(t, s.Stop(context.Background()))
}
