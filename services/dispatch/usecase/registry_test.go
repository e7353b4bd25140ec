package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/logger"
	"github.com/piresc/nebengjek-dispatch/internal/pkg/models"
	"github.com/piresc/nebengjek-dispatch/services/dispatch/mocks"
	"github.com/stretchr/testify/assert"
)

func TestRegistry_OneProviderPerUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	eventGW := mocks.NewMockEventGW(ctrl)

	// user-1 loads twice: once before and once after logout; user-2 once
	store.EXPECT().Select(gomock.Any(), gomock.Any(), "user-1").Return(nil, nil).Times(2 * len(allTables))
	store.EXPECT().Select(gomock.Any(), gomock.Any(), "user-2").Return(nil, nil).Times(len(allTables))

	reg := NewRegistry(&models.Config{}, store, eventGW, WithLogger(logger.NewNopLogger()))
	defer reg.Close()
	ctx := context.Background()

	first := reg.Get(ctx, "user-1")
	assert.Same(t, first, reg.Get(ctx, "user-1"))
	assert.True(t, first.State().Loaded)

	other := reg.Get(ctx, "user-2")
	assert.NotSame(t, first, other)
	assert.Equal(t, "user-2", other.State().UserID)

	reg.Logout("user-1")
	assert.Empty(t, first.State().UserID)

	again := reg.Get(ctx, "user-1")
	assert.NotSame(t, first, again)
	assert.True(t, again.State().Loaded)
}

func TestRegistry_CancelledRequestStillLoads(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Select(gomock.Any(), gomock.Any(), "user-1").DoAndReturn(
		func(ctx context.Context, table, userID string) ([]models.Record, error) {
			return nil, ctx.Err()
		}).Times(len(allTables))

	reg := NewRegistry(&models.Config{}, store, nil, WithLogger(logger.NewNopLogger()))
	defer reg.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	p := reg.Get(ctx, "user-1")
	assert.True(t, p.State().Loaded)
}
