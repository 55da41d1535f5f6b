package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	deliverycontext "biolink/internal/delivery/context"
	domainerrors "biolink/internal/domain/errors"
	mockRepo "biolink/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestViewService(t *testing.T) (*mockRepo.MockViewCounterRepository, *viewService) {
	views := mockRepo.NewMockViewCounterRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return views, NewViewService(views, logger).(*viewService)
}

func TestViewService_Increment(t *testing.T) {
	views, srv := newTestViewService(t)
	ctx := context.Background()

	views.EXPECT().Load(ctx).Return(int64(41), nil)
	views.EXPECT().Save(ctx, int64(42)).Return(nil)

	assert.Equal(t, int64(42), srv.Increment(ctx))
}

func TestViewService_Increment_UnreadableCounterStartsAtZero(t *testing.T) {
	views, srv := newTestViewService(t)
	ctx := context.Background()

	views.EXPECT().Load(ctx).Return(int64(0), domainerrors.ErrStorageUnavailable)
	views.EXPECT().Save(ctx, int64(1)).Return(nil)

	assert.Equal(t, int64(1), srv.Increment(ctx))
}

func TestViewService_Increment_WriteFailureIsSwallowed(t *testing.T) {
	views, srv := newTestViewService(t)
	ctx := context.Background()

	views.EXPECT().Load(ctx).Return(int64(9), nil)
	views.EXPECT().Save(ctx, int64(10)).Return(errors.New("read-only file system"))

	assert.Equal(t, int64(10), srv.Increment(ctx))
}

func TestViewService_Increment_SerialisedInProcess(t *testing.T) {
	views, srv := newTestViewService(t)
	ctx := context.Background()

	var (
		mu     sync.Mutex
		stored int64
	)
	views.EXPECT().Load(ctx).RunAndReturn(func(context.Context) (int64, error) {
		mu.Lock()
		defer mu.Unlock()

		return stored, nil
	})
	views.EXPECT().Save(ctx, mock.AnythingOfType("int64")).RunAndReturn(func(_ context.Context, v int64) error {
		mu.Lock()
		defer mu.Unlock()
		stored = v

		return nil
	})

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			srv.Increment(ctx)
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(n), stored)
}

func TestViewService_Increment_LogsWithRequestLogger(t *testing.T) {
	views, srv := newTestViewService(t)

	var buf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-9"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	views.EXPECT().Load(ctx).Return(int64(3), nil)
	views.EXPECT().Save(ctx, int64(4)).Return(errors.New("read-only file system"))

	assert.Equal(t, int64(4), srv.Increment(ctx))
	assert.Contains(t, buf.String(), "request_id=req-9")
	assert.Contains(t, buf.String(), "Failed to persist view counter")
}
