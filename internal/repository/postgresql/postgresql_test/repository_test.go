package postgresql_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fastep-work/fastep-backend-go/internal/domain/advance"
	"github.com/fastep-work/fastep-backend-go/internal/domain/feed"
	"github.com/fastep-work/fastep-backend-go/internal/domain/leave"
	"github.com/fastep-work/fastep-backend-go/internal/domain/payroll"
	"github.com/fastep-work/fastep-backend-go/internal/domain/shift"
	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/database"
	"github.com/fastep-work/fastep-backend-go/internal/repository/postgresql"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2025, 3, d, 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string { return &s }

func createWorker(t *testing.T, db *database.DB, name, code string, salary float64) worker.Worker {
	t.Helper()
	now := time.Now().UTC()
	w, err := postgresql.NewWorkerRepository(db).Create(context.Background(), worker.Worker{
		ID:            uuid.Must(uuid.NewV7()).String(),
		Name:          name,
		WorkerCode:    strPtr(code),
		Role:          worker.RoleWorker,
		MonthlySalary: salary,
		PasswordHash:  "hash",
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)
	return w
}

func newShift(workerID string, date time.Time, startHour, endHour int) shift.Shift {
	now := time.Now().UTC()
	return shift.Shift{
		ID:         uuid.Must(uuid.NewV7()).String(),
		WorkerID:   workerID,
		Date:       date,
		StartTime:  date.Add(time.Duration(startHour) * time.Hour),
		EndTime:    date.Add(time.Duration(endHour) * time.Hour),
		Status:     shift.StatusPending,
		TotalHours: float64(endHour - startHour),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestWorkerRepository_CodeIsCaseInsensitiveAndUnique(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewWorkerRepository(db)

	created := createWorker(t, db, "Ahmed", "FW-001", 3000)

	got, err := repo.GetByCode(ctx, "fw-001")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, 3000.0, got.MonthlySalary)

	dup := created
	dup.ID = uuid.Must(uuid.NewV7()).String()
	dup.WorkerCode = strPtr("fw-001")
	_, err = repo.Create(ctx, dup)
	assert.ErrorIs(t, err, worker.ErrWorkerCodeExists)

	_, err = repo.GetByID(ctx, uuid.Must(uuid.NewV7()).String())
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerRepository_UpdateAndDeactivate(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewWorkerRepository(db)
	w := createWorker(t, db, "Bilal", "FW-002", 3000)

	salary := 4500.0
	require.NoError(t, repo.Update(ctx, w.ID, worker.UpdateWorkerRequest{Name: strPtr("Bilal K"), MonthlySalary: &salary}))
	require.NoError(t, repo.SetActive(ctx, w.ID, false))

	got, err := repo.GetByID(ctx, w.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bilal K", got.Name)
	assert.Equal(t, 4500.0, got.MonthlySalary)
	assert.False(t, got.IsActive)

	active, err := repo.List(ctx, worker.WorkerFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestShiftRepository_UpsertReplacesUntilApproved(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewShiftRepository(db)
	w := createWorker(t, db, "Chandra", "FW-003", 3000)

	first, err := repo.Upsert(ctx, newShift(w.ID, day(3), 7, 17))
	require.NoError(t, err)

	second, err := repo.Upsert(ctx, newShift(w.ID, day(3), 8, 20))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "re-logging a date keeps one row")
	assert.Equal(t, 12.0, second.TotalHours)

	require.NoError(t, repo.Approve(ctx, second.ID, 150, time.Now().UTC()))
	assert.ErrorIs(t, repo.Approve(ctx, second.ID, 150, time.Now().UTC()), shift.ErrShiftAlreadyApproved)

	_, err = repo.Upsert(ctx, newShift(w.ID, day(3), 6, 18))
	assert.ErrorIs(t, err, shift.ErrShiftLocked)

	got, err := repo.GetByWorkerAndDate(ctx, w.ID, day(3))
	require.NoError(t, err)
	assert.True(t, got.IsApproved)
	assert.Equal(t, 150.0, got.ApprovedEarnings)
	assert.True(t, got.Date.Equal(day(3)))
}

func TestLeaveRepository_DecideOnce(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewLeaveRepository(db)
	w := createWorker(t, db, "Dev", "FW-004", 3000)

	now := time.Now().UTC()
	l, err := repo.Create(ctx, leave.Leave{
		ID:        uuid.Must(uuid.NewV7()).String(),
		WorkerID:  w.ID,
		Date:      day(5),
		Reason:    "sick",
		Status:    leave.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateStatus(ctx, l.ID, leave.StatusRejected, now))
	assert.ErrorIs(t, repo.UpdateStatus(ctx, l.ID, leave.StatusAccepted, now), leave.ErrLeaveAlreadyDecided)
	assert.ErrorIs(t, repo.UpdateStatus(ctx, uuid.Must(uuid.NewV7()).String(), leave.StatusAccepted, now), leave.ErrLeaveNotFound)

	got, err := repo.GetByID(ctx, l.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusRejected, got.Status)
	assert.NotNil(t, got.DecidedAt)
}

func TestAdvanceRepository_ScheduleThenApproveKeepsPaymentDate(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewAdvanceRepository(db)
	w := createWorker(t, db, "Emre", "FW-005", 3000)

	now := time.Now().UTC()
	a, err := repo.Create(ctx, advance.AdvanceRequest{
		ID:          uuid.Must(uuid.NewV7()).String(),
		WorkerID:    w.ID,
		WorkerName:  w.Name,
		Amount:      250,
		Reason:      "rent",
		RequestDate: day(1),
		Status:      advance.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	require.NoError(t, err)

	payDate := day(20)
	require.NoError(t, repo.UpdateStatus(ctx, a.ID, advance.StatusPending, advance.StatusScheduled, &payDate, now))
	require.NoError(t, repo.UpdateStatus(ctx, a.ID, advance.StatusScheduled, advance.StatusApproved, nil, now))

	err = repo.UpdateStatus(ctx, a.ID, advance.StatusPending, advance.StatusRejected, nil, now)
	assert.ErrorIs(t, err, advance.ErrInvalidAdvanceTransition)

	got, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, advance.StatusApproved, got.Status)
	require.NotNil(t, got.PaymentDate)
	assert.True(t, got.PaymentDate.Equal(payDate))
	assert.Equal(t, 250.0, got.Amount)
}

func TestFeedRepository_HighPriorityAnnouncementsFirst(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewFeedRepository(db)

	base := time.Now().UTC().Truncate(time.Second)
	for i, p := range []feed.Priority{feed.PriorityHigh, feed.PriorityLow, feed.PriorityLow} {
		_, err := repo.CreateAnnouncement(ctx, feed.Announcement{
			ID:        uuid.Must(uuid.NewV7()).String(),
			Content:   string(p),
			Priority:  p,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
	}

	list, err := repo.ListAnnouncements(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, feed.PriorityHigh, list[0].Priority)
	assert.True(t, list[1].CreatedAt.After(list[2].CreatedAt))

	assert.ErrorIs(t, repo.DeleteAnnouncement(ctx, uuid.Must(uuid.NewV7()).String()), feed.ErrAnnouncementNotFound)
	assert.NoError(t, repo.DeleteAnnouncement(ctx, list[0].ID))
}

func TestSnapshotRepository_LoadWorkerSnapshotIsScoped(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	shifts := postgresql.NewShiftRepository(db)
	snapshots := postgresql.NewSnapshotRepository(db)

	a := createWorker(t, db, "Farid", "FW-006", 3000)
	b := createWorker(t, db, "Gopal", "FW-007", 3000)
	for _, w := range []worker.Worker{a, b} {
		_, err := shifts.Upsert(ctx, newShift(w.ID, day(2), 7, 17))
		require.NoError(t, err)
	}

	all, err := snapshots.LoadSnapshot(ctx)
	require.NoError(t, err)
	assert.Len(t, all.Workers, 2)
	assert.Len(t, all.Shifts, 2)

	one, err := snapshots.LoadWorkerSnapshot(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, one.Workers, 1)
	require.Len(t, one.Shifts, 1)
	assert.Equal(t, a.ID, one.Shifts[0].WorkerID)

	_, err = snapshots.LoadWorkerSnapshot(ctx, uuid.Must(uuid.NewV7()).String())
	assert.ErrorIs(t, err, payroll.ErrWorkerNotFound)
}

func TestSnapshotRepository_InsideTransaction(t *testing.T) {
	db := setupDB(t)
	createWorker(t, db, "Hasan", "FW-008", 3000)

	var snap payroll.Snapshot
	err := postgresql.NewTxManager(db).RunInTx(context.Background(), func(ctx context.Context) error {
		var err error
		snap, err = postgresql.NewSnapshotRepository(db).LoadSnapshot(ctx)
		return err
	})
	require.NoError(t, err)
	assert.Len(t, snap.Workers, 1)
}

func TestTxManager_RollsBackOnError(t *testing.T) {
	db := setupDB(t)
	repo := postgresql.NewWorkerRepository(db)
	boom := errors.New("boom")

	err := postgresql.NewTxManager(db).RunInTx(context.Background(), func(ctx context.Context) error {
		now := time.Now().UTC()
		if _, err := repo.Create(ctx, worker.Worker{
			ID: uuid.Must(uuid.NewV7()).String(), Name: "Ivan", Role: worker.RoleWorker,
			IsActive: true, CreatedAt: now, UpdatedAt: now,
		}); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	list, err := repo.List(context.Background(), worker.WorkerFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRevokedTokenRepository_RevokeAndPurge(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	repo := postgresql.NewRevokedTokenRepository(db)
	now := time.Now().UTC()

	require.NoError(t, repo.Revoke(ctx, "live-hash", now.Add(time.Hour)))
	require.NoError(t, repo.Revoke(ctx, "live-hash", now.Add(time.Hour)), "revoking twice is a no-op")
	require.NoError(t, repo.Revoke(ctx, "old-hash", now.Add(-time.Minute)))

	revoked, err := repo.IsRevoked(ctx, "live-hash", now)
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = repo.IsRevoked(ctx, "old-hash", now)
	require.NoError(t, err)
	assert.False(t, revoked, "expired revocations no longer matter")

	revoked, err = repo.IsRevoked(ctx, "unknown", now)
	require.NoError(t, err)
	assert.False(t, revoked)

	deleted, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)
}
