package advance

import (
	"context"
	"testing"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memAdvanceRepo struct {
	advances map[string]advance.AdvanceRequest
}

func (r *memAdvanceRepo) Create(ctx context.Context, a advance.AdvanceRequest) (advance.AdvanceRequest, error) {
	r.advances[a.ID] = a
	return a, nil
}

func (r *memAdvanceRepo) GetByID(ctx context.Context, id string) (advance.AdvanceRequest, error) {
	a, ok := r.advances[id]
	if !ok {
		return advance.AdvanceRequest{}, advance.ErrAdvanceNotFound
	}
	return a, nil
}

func (r *memAdvanceRepo) List(ctx context.Context, filter advance.AdvanceFilter) ([]advance.AdvanceRequest, error) {
	var out []advance.AdvanceRequest
	for _, a := range r.advances {
		if filter.WorkerID != nil && a.WorkerID != *filter.WorkerID {
			continue
		}
		if filter.Status != nil && string(a.Status) != *filter.Status {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *memAdvanceRepo) UpdateStatus(ctx context.Context, id string, from, to advance.Status, paymentDate *time.Time, decidedAt time.Time) error {
	a, ok := r.advances[id]
	if !ok {
		return advance.ErrAdvanceNotFound
	}
	if a.Status != from {
		return advance.ErrInvalidAdvanceTransition
	}
	a.Status = to
	if paymentDate != nil {
		a.PaymentDate = paymentDate
	}
	a.DecidedAt = &decidedAt
	r.advances[id] = a
	return nil
}

type fakeWorkerRepo struct {
	worker.WorkerRepository
}

func (r *fakeWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	if id == "w1" {
		return worker.Worker{ID: "w1", Name: "Rahim", MonthlySalary: 3000, IsActive: true}, nil
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func newTestAdvanceService() (*AdvanceServiceImpl, *memAdvanceRepo) {
	repo := &memAdvanceRepo{advances: map[string]advance.AdvanceRequest{}}
	svc := NewAdvanceService(repo, &fakeWorkerRepo{}, time.UTC).(*AdvanceServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return svc, repo
}

func ptr(s string) *string { return &s }

func TestAdvanceService_Request(t *testing.T) {
	svc, _ := newTestAdvanceService()

	resp, err := svc.Request(context.Background(), "w1", advance.CreateAdvanceRequest{Amount: 250, Reason: "rent"})
	require.NoError(t, err)

	assert.Equal(t, "Rahim", resp.WorkerName)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-03-10", resp.RequestDate)
	assert.Equal(t, "250", resp.Amount.String())
	assert.Nil(t, resp.PaymentDate)

	_, err = svc.Request(context.Background(), "w1", advance.CreateAdvanceRequest{Amount: -5, Reason: "rent"})
	assert.Error(t, err)
}

func TestAdvanceService_Decide_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		steps   []advance.DecideAdvanceRequest
		want    advance.Status
		wantErr error
	}{
		{"approve pending", []advance.DecideAdvanceRequest{{Action: "approve"}}, advance.StatusApproved, nil},
		{"reject pending", []advance.DecideAdvanceRequest{{Action: "reject"}}, advance.StatusRejected, nil},
		{"schedule then approve", []advance.DecideAdvanceRequest{{Action: "schedule", PaymentDate: ptr("2025-03-20")}, {Action: "approve"}}, advance.StatusApproved, nil},
		{"schedule then reject", []advance.DecideAdvanceRequest{{Action: "schedule", PaymentDate: ptr("2025-03-20")}, {Action: "reject"}}, advance.StatusRejected, nil},
		{"approve twice", []advance.DecideAdvanceRequest{{Action: "approve"}, {Action: "reject"}}, advance.StatusApproved, advance.ErrInvalidAdvanceTransition},
		{"reschedule", []advance.DecideAdvanceRequest{{Action: "schedule", PaymentDate: ptr("2025-03-20")}, {Action: "schedule", PaymentDate: ptr("2025-03-25")}}, advance.StatusScheduled, advance.ErrInvalidAdvanceTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAdvanceService()
			ctx := context.Background()

			created, err := svc.Request(ctx, "w1", advance.CreateAdvanceRequest{Amount: 100, Reason: "rent"})
			require.NoError(t, err)

			var lastErr error
			for _, step := range tt.steps {
				step.ID = created.ID
				_, lastErr = svc.Decide(ctx, step)
			}

			if tt.wantErr != nil {
				assert.ErrorIs(t, lastErr, tt.wantErr)
			} else {
				assert.NoError(t, lastErr)
			}
			assert.Equal(t, tt.want, repo.advances[created.ID].Status)
		})
	}
}

func TestAdvanceService_Decide_ScheduleKeepsPaymentDate(t *testing.T) {
	svc, _ := newTestAdvanceService()
	ctx := context.Background()

	created, err := svc.Request(ctx, "w1", advance.CreateAdvanceRequest{Amount: 100, Reason: "rent"})
	require.NoError(t, err)

	_, err = svc.Decide(ctx, advance.DecideAdvanceRequest{ID: created.ID, Action: "schedule"})
	assert.Error(t, err)

	scheduled, err := svc.Decide(ctx, advance.DecideAdvanceRequest{ID: created.ID, Action: "schedule", PaymentDate: ptr("2025-03-20")})
	require.NoError(t, err)
	require.NotNil(t, scheduled.PaymentDate)
	assert.Equal(t, "2025-03-20", *scheduled.PaymentDate)

	approved, err := svc.Decide(ctx, advance.DecideAdvanceRequest{ID: created.ID, Action: "approve"})
	require.NoError(t, err)
	require.NotNil(t, approved.PaymentDate)
	assert.Equal(t, "2025-03-20", *approved.PaymentDate)
}

func TestAdvanceService_ListDue(t *testing.T) {
	svc, _ := newTestAdvanceService()
	ctx := context.Background()

	for _, date := range []string{"2025-03-05", "2025-03-10", "2025-03-11"} {
		created, err := svc.Request(ctx, "w1", advance.CreateAdvanceRequest{Amount: 100, Reason: "rent"})
		require.NoError(t, err)
		_, err = svc.Decide(ctx, advance.DecideAdvanceRequest{ID: created.ID, Action: "schedule", PaymentDate: ptr(date)})
		require.NoError(t, err)
	}
	_, err := svc.Request(ctx, "w1", advance.CreateAdvanceRequest{Amount: 100, Reason: "rent"})
	require.NoError(t, err)

	due, err := svc.ListDue(ctx, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Len(t, due, 2)
	for _, a := range due {
		assert.Equal(t, "scheduled", a.Status)
	}
}
