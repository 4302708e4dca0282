package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kwanchai/cleanbook/internal/model"
	"github.com/kwanchai/cleanbook/internal/storage/memory"
	"github.com/kwanchai/cleanbook/internal/testutil"
)

func newTestService() *Service {
	return New(memory.New(), testutil.NopLogger())
}

func TestCreateAndGet(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{
		Name:        "Deep Clean",
		Description: "Full home clean",
		Price:       1200,
		Duration:    "3 hours",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deep Clean", got.Name)
	assert.Equal(t, 1200.0, got.Price)
}

func TestUpdatePatchesOnlySetFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Deep Clean", Price: 1200, Duration: "3 hours"})
	require.NoError(t, err)

	price := 1500.0
	updated, err := svc.Update(ctx, created.ID, Patch{Price: &price})
	require.NoError(t, err)

	assert.Equal(t, 1500.0, updated.Price)
	assert.Equal(t, "Deep Clean", updated.Name, "unset fields stay untouched")
	assert.Equal(t, "3 hours", updated.Duration)
}

func TestUpdateMissingService(t *testing.T) {
	svc := newTestService()

	name := "x"
	_, err := svc.Update(context.Background(), "svc_missing", Patch{Name: &name})
	assert.ErrorIs(t, err, model.ErrServiceNotFound)
}

func TestDelete(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateInput{Name: "Deep Clean"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrServiceNotFound)

	list, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}
