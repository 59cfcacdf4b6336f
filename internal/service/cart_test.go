package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shop-service/internal/model"
)

func newCartFixture() (*CartService, *fakeCartRepo) {
	products := newFakeProductRepo(
		&model.Product{ID: 7, Title: "kettle", Price: 120},
		&model.Product{ID: 8, Title: "toaster", Price: 90},
	)
	carts := newFakeCartRepo(products)
	return NewCartService(products, carts, zap.NewNop()), carts
}

func TestCartAddCreatesItem(t *testing.T) {
	svc, _ := newCartFixture()

	items, err := svc.Add(context.Background(), 1, 7, 2)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].ProductID)
	assert.Equal(t, 2, items[0].Count)
	assert.Equal(t, "kettle", items[0].Product.Title)
}

func TestCartAddSumsCounts(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 7, 2)
	require.NoError(t, err)
	items, err := svc.Add(ctx, 1, 7, 3)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Count)
}

func TestCartAddRejectsNonPositiveCount(t *testing.T) {
	svc, carts := newCartFixture()

	_, err := svc.Add(context.Background(), 1, 7, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Empty(t, carts.items)
}

func TestCartAddUnknownProduct(t *testing.T) {
	svc, carts := newCartFixture()

	_, err := svc.Add(context.Background(), 1, 999, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, carts.carts)
}

func TestCartRemovePartial(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 7, 5)
	require.NoError(t, err)
	items, err := svc.Remove(ctx, 1, 7, 2)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Count)
}

func TestCartRemoveToZeroDeletesRow(t *testing.T) {
	svc, carts := newCartFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 7, 2)
	require.NoError(t, err)
	items, err := svc.Remove(ctx, 1, 7, 2)
	require.NoError(t, err)

	assert.Empty(t, items)
	assert.Empty(t, carts.items)
}

func TestCartRemoveBelowZeroLeavesStateUntouched(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 7, 1)
	require.NoError(t, err)

	_, err = svc.Remove(ctx, 1, 7, 2)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	items, err := svc.View(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Count)
}

func TestCartRemoveRejectsNonPositiveCount(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 7, 2)
	require.NoError(t, err)

	// A negative count must not turn the removal into an addition.
	for _, count := range []int{0, -1, -5} {
		_, err = svc.Remove(ctx, 1, 7, count)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}

	items, err := svc.View(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Count)
}

func TestCartRemoveMissingItemIsNoOp(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 7, 2)
	require.NoError(t, err)
	items, err := svc.Remove(ctx, 1, 8, 1)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].ProductID)
	assert.Equal(t, 2, items[0].Count)
}

func TestCartRemoveWithoutCart(t *testing.T) {
	svc, _ := newCartFixture()

	_, err := svc.Remove(context.Background(), 1, 7, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartViewWithoutCartIsEmpty(t *testing.T) {
	svc, _ := newCartFixture()

	items, err := svc.View(context.Background(), 42)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	svc, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.Add(ctx, 1, 7, 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, 2, 8, 1)
	require.NoError(t, err)

	items, err := svc.View(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].ProductID)
}
