package cron

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduler_RunOnceRunsJobsInOrder(t *testing.T) {
	s := NewScheduler()
	var order []string
	s.AddJob("first", time.Hour, func(ctx context.Context) error {
		order = append(order, "first")
		return errors.New("logged, not fatal")
	})
	s.AddJob("second", time.Hour, func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	s.RunOnce(context.Background())

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestScheduler_StartRunsImmediatelyAndStops(t *testing.T) {
	s := NewScheduler()
	var runs atomic.Int32
	ran := make(chan struct{}, 1)
	s.AddJob("tick", time.Hour, func(ctx context.Context) error {
		runs.Add(1)
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	})

	s.Start(context.Background())
	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run on start")
	}
	s.Stop()

	assert.Equal(t, int32(1), runs.Load())
}

func TestScheduler_StopWithoutStart(t *testing.T) {
	assert.NotPanics(t, func() { NewScheduler().Stop() })
}

type fakeAdvanceService struct {
	advance.AdvanceService
	gotToday time.Time
	due      []advance.AdvanceResponse
	err      error
}

func (f *fakeAdvanceService) ListDue(ctx context.Context, today time.Time) ([]advance.AdvanceResponse, error) {
	f.gotToday = today
	return f.due, f.err
}

func TestAdvanceJobs_ReportDueAdvancesUsesBusinessDate(t *testing.T) {
	riyadh := time.FixedZone("AST", 3*60*60)
	svc := &fakeAdvanceService{due: []advance.AdvanceResponse{{ID: "a1", WorkerName: "Ahmed"}}}
	jobs := NewAdvanceJobs(svc, riyadh)
	jobs.now = func() time.Time { return time.Date(2025, 6, 14, 22, 30, 0, 0, time.UTC) }

	require.NoError(t, jobs.ReportDueAdvances(context.Background()))
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), svc.gotToday)
}

func TestAdvanceJobs_PropagatesListError(t *testing.T) {
	svc := &fakeAdvanceService{err: errors.New("db down")}
	jobs := NewAdvanceJobs(svc, time.UTC)

	err := jobs.ReportDueAdvances(context.Background())
	assert.ErrorContains(t, err, "db down")
}

func TestAdvanceJobs_RegisterJobs(t *testing.T) {
	s := NewScheduler()
	svc := &fakeAdvanceService{}
	NewAdvanceJobs(svc, time.UTC).RegisterJobs(s, time.Minute)

	require.Len(t, s.jobs, 1)
	assert.Equal(t, DueAdvancesJobName, s.jobs[0].Name)
	assert.Equal(t, time.Minute, s.jobs[0].Interval)
}

type fakeRevokedTokens struct {
	auth.RevokedTokenRepository
	purgedAt time.Time
	err      error
}

func (f *fakeRevokedTokens) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	f.purgedAt = now
	return 3, f.err
}

func TestTokenJobs_PurgeRevokedTokens(t *testing.T) {
	now := time.Date(2025, 6, 15, 4, 0, 0, 0, time.UTC)
	repo := &fakeRevokedTokens{}
	jobs := NewTokenJobs(repo)
	jobs.now = func() time.Time { return now }

	require.NoError(t, jobs.PurgeRevokedTokens(context.Background()))
	assert.Equal(t, now, repo.purgedAt)

	repo.err = errors.New("db down")
	assert.ErrorIs(t, jobs.PurgeRevokedTokens(context.Background()), repo.err)

	s := NewScheduler()
	jobs.RegisterJobs(s, time.Hour)
	require.Len(t, s.jobs, 1)
	assert.Equal(t, PurgeRevokedTokensJobName, s.jobs[0].Name)
}
