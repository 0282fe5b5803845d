package cart

import (
	"context"
	"testing"

	"cabinkeep/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCartRepo is an in-memory CartRepository for service tests.
type fakeCartRepo struct {
	carts map[string]models.Cart
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]models.Cart)}
}

func (r *fakeCartRepo) GetByUserID(_ context.Context, userID string) (*models.Cart, error) {
	cart, ok := r.carts[userID]
	if !ok {
		return nil, nil
	}
	items := make([]models.CartItem, len(cart.Items))
	copy(items, cart.Items)
	cart.Items = items
	return &cart, nil
}

func (r *fakeCartRepo) Save(_ context.Context, cart models.Cart) error {
	r.carts[cart.UserID] = cart
	return nil
}

func TestGetCartLazyEmptyList(t *testing.T) {
	svc := &DefaultCartService{Repo: newFakeCartRepo()}

	items, err := svc.GetCart(context.Background(), "staff")
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestAddItemAppends(t *testing.T) {
	svc := &DefaultCartService{Repo: newFakeCartRepo()}
	ctx := context.Background()

	cabin := 2
	items, err := svc.AddItem(ctx, "staff", "Toilet Paper", 3, &cabin)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Toilet Paper", items[0].Item)
	assert.Equal(t, 3, items[0].Quantity)
	require.NotNil(t, items[0].Cabin)
	assert.Equal(t, 2, *items[0].Cabin)
	assert.NotEmpty(t, items[0].ID)

	// A nil cabin marks a general, aggregated request.
	items, err = svc.AddItem(ctx, "staff", "Coffee Pods", 12, nil)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Nil(t, items[1].Cabin)
}

func TestRemoveItemByPosition(t *testing.T) {
	svc := &DefaultCartService{Repo: newFakeCartRepo()}
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "staff", "Shampoo", 1, nil)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "staff", "Kleenex", 2, nil)
	require.NoError(t, err)

	items, err := svc.RemoveItem(ctx, "staff", 0)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Kleenex", items[0].Item)
}

func TestRemoveItemOutOfRange(t *testing.T) {
	repo := newFakeCartRepo()
	svc := &DefaultCartService{Repo: repo}
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "staff", "Bar Soap", 1, nil)
	require.NoError(t, err)

	for _, index := range []int{-1, 1, 5} {
		_, err := svc.RemoveItem(ctx, "staff", index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange, "index %d", index)
	}

	// The stored list is untouched after rejected removals.
	items, err := svc.GetCart(ctx, "staff")
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestRemoveItemNoCart(t *testing.T) {
	svc := &DefaultCartService{Repo: newFakeCartRepo()}

	_, err := svc.RemoveItem(context.Background(), "staff", 0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestCartsArePerUser(t *testing.T) {
	svc := &DefaultCartService{Repo: newFakeCartRepo()}
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "alice", "Dish Soap", 1, nil)
	require.NoError(t, err)

	items, err := svc.GetCart(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, items)
}
