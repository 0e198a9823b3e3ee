package worker

import (
	"context"
	"strings"
	"testing"

	"github.com/fastep-work/fastep-backend-go/internal/domain/worker"
	"github.com/fastep-work/fastep-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memWorkerRepo struct {
	workers map[string]worker.Worker
}

func newMemWorkerRepo() *memWorkerRepo {
	return &memWorkerRepo{workers: map[string]worker.Worker{}}
}

func (r *memWorkerRepo) GetByID(ctx context.Context, id string) (worker.Worker, error) {
	w, ok := r.workers[id]
	if !ok {
		return worker.Worker{}, worker.ErrWorkerNotFound
	}
	return w, nil
}

func (r *memWorkerRepo) GetByCode(ctx context.Context, code string) (worker.Worker, error) {
	for _, w := range r.workers {
		if w.WorkerCode != nil && strings.EqualFold(*w.WorkerCode, code) {
			return w, nil
		}
	}
	return worker.Worker{}, worker.ErrWorkerNotFound
}

func (r *memWorkerRepo) List(ctx context.Context, filter worker.WorkerFilter) ([]worker.Worker, error) {
	var out []worker.Worker
	for _, w := range r.workers {
		if filter.ActiveOnly && !w.IsActive {
			continue
		}
		out = append(out, w)
	}
	return out, nil
}

func (r *memWorkerRepo) Create(ctx context.Context, w worker.Worker) (worker.Worker, error) {
	r.workers[w.ID] = w
	return w, nil
}

func (r *memWorkerRepo) Update(ctx context.Context, id string, req worker.UpdateWorkerRequest) error {
	w, ok := r.workers[id]
	if !ok {
		return worker.ErrWorkerNotFound
	}
	if req.Name != nil {
		w.Name = *req.Name
	}
	if req.WorkerCode != nil {
		w.WorkerCode = req.WorkerCode
	}
	if req.MonthlySalary != nil {
		w.MonthlySalary = *req.MonthlySalary
	}
	if req.IsActive != nil {
		w.IsActive = *req.IsActive
	}
	r.workers[id] = w
	return nil
}

func (r *memWorkerRepo) SetActive(ctx context.Context, id string, active bool) error {
	w, ok := r.workers[id]
	if !ok {
		return worker.ErrWorkerNotFound
	}
	w.IsActive = active
	r.workers[id] = w
	return nil
}

func (r *memWorkerRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.workers[id]; !ok {
		return worker.ErrWorkerNotFound
	}
	delete(r.workers, id)
	return nil
}

func (r *memWorkerRepo) CountAdmins(ctx context.Context) (int, error) {
	n := 0
	for _, w := range r.workers {
		if w.IsAdmin() {
			n++
		}
	}
	return n, nil
}

func validCreateRequest() worker.CreateWorkerRequest {
	expiry := "2026-01-31"
	return worker.CreateWorkerRequest{
		Name:          "  Rahim Uddin ",
		WorkerCode:    "FW-001",
		MonthlySalary: 3000,
		Password:      "password123",
		IqamaExpiry:   &expiry,
	}
}

func TestWorkerService_Create(t *testing.T) {
	repo := newMemWorkerRepo()
	svc := NewWorkerService(repo)

	resp, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Rahim Uddin", resp.Name)
	assert.Equal(t, "worker", resp.Role)
	assert.True(t, resp.IsActive)
	require.NotNil(t, resp.IqamaExpiry)
	assert.Equal(t, "2026-01-31", *resp.IqamaExpiry)

	stored := repo.workers[resp.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestWorkerService_Create_DuplicateCode(t *testing.T) {
	svc := NewWorkerService(newMemWorkerRepo())

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), validCreateRequest())
	assert.ErrorIs(t, err, worker.ErrWorkerCodeExists)
}

func TestWorkerService_Create_Validation(t *testing.T) {
	svc := NewWorkerService(newMemWorkerRepo())

	req := validCreateRequest()
	req.MonthlySalary = 0
	req.Password = "short"

	_, err := svc.Create(context.Background(), req)
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestWorkerService_Update(t *testing.T) {
	svc := NewWorkerService(newMemWorkerRepo())
	ctx := context.Background()

	first, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	other := validCreateRequest()
	other.WorkerCode = "FW-002"
	second, err := svc.Create(ctx, other)
	require.NoError(t, err)

	salary := 4500.0
	updated, err := svc.Update(ctx, worker.UpdateWorkerRequest{ID: first.ID, MonthlySalary: &salary})
	require.NoError(t, err)
	assert.Equal(t, "4500", updated.MonthlySalary.String())

	taken := "FW-002"
	_, err = svc.Update(ctx, worker.UpdateWorkerRequest{ID: first.ID, WorkerCode: &taken})
	assert.ErrorIs(t, err, worker.ErrWorkerCodeExists)

	same := "FW-002"
	_, err = svc.Update(ctx, worker.UpdateWorkerRequest{ID: second.ID, WorkerCode: &same})
	assert.NoError(t, err)

	_, err = svc.Update(ctx, worker.UpdateWorkerRequest{ID: "missing", MonthlySalary: &salary})
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerService_DeactivateAndDelete(t *testing.T) {
	repo := newMemWorkerRepo()
	svc := NewWorkerService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Deactivate(ctx, created.ID))
	assert.False(t, repo.workers[created.ID].IsActive)

	require.NoError(t, svc.Delete(ctx, created.ID))
	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}

func TestWorkerService_EnsureAdmin(t *testing.T) {
	repo := newMemWorkerRepo()
	svc := NewWorkerService(repo)
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "ADMIN", "admin-password"))
	require.NoError(t, svc.EnsureAdmin(ctx, "ADMIN2", "admin-password"))

	admins, _ := repo.CountAdmins(ctx)
	assert.Equal(t, 1, admins)

	adminWorker, err := repo.GetByCode(ctx, "ADMIN")
	require.NoError(t, err)
	assert.Equal(t, worker.RoleAdmin, adminWorker.Role)

	err = svc.Delete(ctx, adminWorker.ID)
	assert.ErrorIs(t, err, worker.ErrLastAdmin)
}
