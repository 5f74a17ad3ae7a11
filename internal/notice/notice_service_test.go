package notice_test

import (
	"context"
	"errors"
	"testing"

	"mployee/internal/notice"
	noticeerrors "mployee/internal/notice/errors"
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

func TestNoticeService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		reg := notice.NewRegistry()
		flusher := &stubFlusher{}
		svc := notice.NewService(reg, flusher)

		resp, err := svc.Create(context.Background(), notice.CreateNoticeRequest{
			Title:   "Holiday",
			Content: "Office closed Friday",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		assert.Equal(t, notice.PriorityLow, resp.Priority)
		assert.NotEmpty(t, resp.CreatedAt)
		assert.Equal(t, 1, flusher.calls)
	})

	t.Run("negative validation failure skips flush", func(t *testing.T) {
		flusher := &stubFlusher{}
		svc := notice.NewService(notice.NewRegistry(), flusher)

		_, err := svc.Create(context.Background(), notice.CreateNoticeRequest{Content: "No title"})

		assert.ErrorIs(t, err, noticeerrors.ErrTitleRequired)
		assert.Equal(t, 0, flusher.calls)
	})

	t.Run("negative flush failure drops the record", func(t *testing.T) {
		reg := notice.NewRegistry()
		svc := notice.NewService(reg, &stubFlusher{err: errors.New("store down")})

		_, err := svc.Create(context.Background(), notice.CreateNoticeRequest{
			Title:   "Holiday",
			Content: "Office closed Friday",
		})

		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeIOError, appErr.Code)
		assert.Empty(t, reg.List())
	})
}

func TestNoticeService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		reg := notice.NewRegistry()
		svc := notice.NewService(reg, &stubFlusher{})

		resp, err := svc.Create(context.Background(), notice.CreateNoticeRequest{
			Title:   "Holiday",
			Content: "Office closed Friday",
		})
		assert.NoError(t, err)

		assert.NoError(t, svc.Delete(context.Background(), resp.ID))
		assert.Empty(t, reg.List())
	})

	t.Run("negative absent id", func(t *testing.T) {
		svc := notice.NewService(notice.NewRegistry(), &stubFlusher{})
		err := svc.Delete(context.Background(), "1700000000000")
		assert.ErrorIs(t, err, noticeerrors.ErrNoticeNotFound)
	})

	t.Run("negative flush failure restores the record", func(t *testing.T) {
		reg := notice.NewRegistry()
		flusher := &stubFlusher{}
		svc := notice.NewService(reg, flusher)

		resp, err := svc.Create(context.Background(), notice.CreateNoticeRequest{
			Title:   "Holiday",
			Content: "Office closed Friday",
		})
		assert.NoError(t, err)

		flusher.err = errors.New("store down")
		assert.Error(t, svc.Delete(context.Background(), resp.ID))
		assert.Len(t, reg.List(), 1)
	})
}
