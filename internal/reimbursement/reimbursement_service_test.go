package reimbursement_test

import (
	"context"
	"errors"
	"testing"

	"mployee/internal/reimbursement"
	reimbursementerrors "mployee/internal/reimbursement/errors"
	"mployee/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

type stubFlusher struct {
	err   error
	calls int
}

func (f *stubFlusher) Flush(_ context.Context) error {
	f.calls++
	return f.err
}

func TestReimbursementService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		reg := reimbursement.NewRegistry()
		flusher := &stubFlusher{}
		svc := reimbursement.NewService(reg, flusher)

		resp, err := svc.Create(context.Background(), reimbursement.CreateReimbursementRequest{
			EmployeeID:  "EMP001",
			Amount:      1200,
			Description: "Travel",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, reimbursement.StatusPending, resp.Status)
		assert.Equal(t, 1, flusher.calls)
	})

	t.Run("negative validation failure skips flush", func(t *testing.T) {
		flusher := &stubFlusher{}
		svc := reimbursement.NewService(reimbursement.NewRegistry(), flusher)

		_, err := svc.Create(context.Background(), reimbursement.CreateReimbursementRequest{
			EmployeeID: "EMP001",
			Amount:     0,
		})

		assert.ErrorIs(t, err, reimbursementerrors.ErrAmountRequired)
		assert.Equal(t, 0, flusher.calls)
	})

	t.Run("negative flush failure drops the record", func(t *testing.T) {
		reg := reimbursement.NewRegistry()
		svc := reimbursement.NewService(reg, &stubFlusher{err: errors.New("store down")})

		_, err := svc.Create(context.Background(), reimbursement.CreateReimbursementRequest{
			EmployeeID:  "EMP001",
			Amount:      1200,
			Description: "Travel",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeIOError, appErr.Code)
		assert.Empty(t, reg.List())
	})
}

func TestReimbursementService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		reg := reimbursement.NewRegistry()
		svc := reimbursement.NewService(reg, &stubFlusher{})

		resp, err := svc.Create(context.Background(), reimbursement.CreateReimbursementRequest{
			EmployeeID:  "EMP001",
			Amount:      1200,
			Description: "Travel",
		})
		assert.NoError(t, err)

		assert.NoError(t, svc.Delete(context.Background(), resp.ID))
		assert.Empty(t, reg.List())
	})

	t.Run("negative absent id", func(t *testing.T) {
		svc := reimbursement.NewService(reimbursement.NewRegistry(), &stubFlusher{})
		err := svc.Delete(context.Background(), "1700000000000")
		assert.ErrorIs(t, err, reimbursementerrors.ErrReimbursementNotFound)
	})

	t.Run("negative flush failure restores the record", func(t *testing.T) {
		reg := reimbursement.NewRegistry()
		flusher := &stubFlusher{}
		svc := reimbursement.NewService(reg, flusher)

		resp, err := svc.Create(context.Background(), reimbursement.CreateReimbursementRequest{
			EmployeeID:  "EMP001",
			Amount:      1200,
			Description: "Travel",
		})
		assert.NoError(t, err)

		flusher.err = errors.New("store down")
		assert.Error(t, svc.Delete(context.Background(), resp.ID))
		assert.Len(t, reg.List(), 1)
	})
}
