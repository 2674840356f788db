package cart

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielaOM24/Cute-Mark/models"
)

// memStore is an in-memory Store that deep-copies carts on read and write, so
// a mutation only becomes visible after Save, like the real persistence layer.
type memStore struct {
	carts  map[string]models.Cart
	nextID uint
	err    error // when set, every call fails with it
}

func newMemStore() *memStore {
	return &memStore{carts: map[string]models.Cart{}}
}

func (s *memStore) FindByIdentity(identity string) (*models.Cart, error) {
	if s.err != nil {
		return nil, s.err
	}
	cart, ok := s.carts[identity]
	if !ok {
		return nil, ErrCartNotFound
	}
	clone := cart
	clone.Items = append([]models.CartItem(nil), cart.Items...)
	return &clone, nil
}

func (s *memStore) Create(cart *models.Cart) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	cart.CartID = s.nextID
	return s.put(cart)
}

func (s *memStore) Save(cart *models.Cart) error {
	if s.err != nil {
		return s.err
	}
	return s.put(cart)
}

func (s *memStore) put(cart *models.Cart) error {
	clone := *cart
	clone.Items = append([]models.CartItem(nil), cart.Items...)
	s.carts[cart.Identity] = clone
	return nil
}

func shirt(qty int) AddItemInput {
	return AddItemInput{
		ProductID: "P1",
		Name:      "Shirt",
		Price:     100,
		Color:     "red",
		Size:      "M",
		Qty:       qty,
	}
}

func TestGetCreatesEmptyCartLazily(t *testing.T) {
	store := newMemStore()
	engine := NewEngine(store)

	view, err := engine.Get("user_a@example.com")
	require.NoError(t, err)

	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
	assert.Equal(t, 0.0, view.TotalPrice)

	// The empty cart must have been persisted, not just synthesized.
	_, ok := store.carts["user_a@example.com"]
	assert.True(t, ok)
}

func TestAddItemMergesByCompositeKey(t *testing.T) {
	engine := NewEngine(newMemStore())

	view, err := engine.AddItem("u1", shirt(2))
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Qty)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, 200.0, view.TotalPrice)

	view, err = engine.AddItem("u1", shirt(3))
	require.NoError(t, err)
	require.Len(t, view.Items, 1, "same composite key must never create a second line")
	assert.Equal(t, 5, view.Items[0].Qty)
	assert.Equal(t, 5, view.TotalItems)
	assert.Equal(t, 500.0, view.TotalPrice)
}

func TestAddItemDistinctVariantsStaySeparate(t *testing.T) {
	engine := NewEngine(newMemStore())

	_, err := engine.AddItem("u1", shirt(1))
	require.NoError(t, err)

	blue := shirt(1)
	blue.Color = "blue"
	_, err = engine.AddItem("u1", blue)
	require.NoError(t, err)

	large := shirt(1)
	large.Size = "L"
	view, err := engine.AddItem("u1", large)
	require.NoError(t, err)

	assert.Len(t, view.Items, 3)
	assert.Equal(t, 3, view.TotalItems)
	assert.Equal(t, 300.0, view.TotalPrice)
}

func TestAddItemDefaultsQtyToOne(t *testing.T) {
	engine := NewEngine(newMemStore())

	view, err := engine.AddItem("u1", shirt(0))
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Qty)
}

func TestAddItemRejectsNegativeQty(t *testing.T) {
	engine := NewEngine(newMemStore())

	_, err := engine.AddItem("u1", shirt(-2))
	assert.ErrorIs(t, err, ErrInvalidQty)

	view, err := engine.Get("u1")
	require.NoError(t, err)
	assert.Empty(t, view.Items, "a rejected add must not leave a line behind")
}

func TestUpdateQtySetsAbsolutely(t *testing.T) {
	engine := NewEngine(newMemStore())

	_, err := engine.AddItem("u1", shirt(5))
	require.NoError(t, err)

	view, removed, err := engine.UpdateQty("u1", UpdateQtyInput{ProductID: "P1", Color: "red", Size: "M", Qty: 1})
	require.NoError(t, err)
	assert.False(t, removed)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Qty, "UpdateQty replaces, it does not add")
	assert.Equal(t, 100.0, view.TotalPrice)
}

func TestUpdateQtyZeroOrNegativeRemovesLine(t *testing.T) {
	for _, qty := range []int{0, -3} {
		engine := NewEngine(newMemStore())

		_, err := engine.AddItem("u1", shirt(2))
		require.NoError(t, err)

		view, removed, err := engine.UpdateQty("u1", UpdateQtyInput{ProductID: "P1", Color: "red", Size: "M", Qty: qty})
		require.NoError(t, err)
		assert.True(t, removed)
		assert.Empty(t, view.Items)

		view, err = engine.Get("u1")
		require.NoError(t, err)
		assert.Empty(t, view.Items)
	}
}

func TestUpdateQtyUnknownKeyLeavesCartUntouched(t *testing.T) {
	engine := NewEngine(newMemStore())

	_, err := engine.AddItem("u1", shirt(2))
	require.NoError(t, err)

	_, _, err = engine.UpdateQty("u1", UpdateQtyInput{ProductID: "P1", Color: "green", Size: "M", Qty: 9})
	assert.ErrorIs(t, err, ErrItemNotFound)

	view, err := engine.Get("u1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Qty)
}

func TestUpdateQtyMissingCart(t *testing.T) {
	engine := NewEngine(newMemStore())

	_, _, err := engine.UpdateQty("nobody", UpdateQtyInput{ProductID: "P1", Qty: 1})
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestRemoveItem(t *testing.T) {
	engine := NewEngine(newMemStore())

	_, err := engine.AddItem("u1", shirt(2))
	require.NoError(t, err)

	view, err := engine.RemoveItem("u1", ItemKey{ProductID: "P1", Color: "red", Size: "M"})
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
	assert.Equal(t, 0.0, view.TotalPrice)

	_, err = engine.RemoveItem("u1", ItemKey{ProductID: "P1", Color: "red", Size: "M"})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestClearRequiresExistingCart(t *testing.T) {
	engine := NewEngine(newMemStore())

	_, err := engine.Clear("nobody")
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestClearThenGetIsEmpty(t *testing.T) {
	engine := NewEngine(newMemStore())

	_, err := engine.AddItem("u1", shirt(2))
	require.NoError(t, err)
	other := shirt(1)
	other.ProductID = "P2"
	_, err = engine.AddItem("u1", other)
	require.NoError(t, err)

	view, err := engine.Clear("u1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	// Clearing twice behaves the same.
	view, err = engine.Clear("u1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	view, err = engine.Get("u1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
	assert.Equal(t, 0.0, view.TotalPrice)
}

func TestTotalsMatchItemList(t *testing.T) {
	engine := NewEngine(newMemStore())

	inputs := []AddItemInput{
		{ProductID: "P1", Name: "Shirt", Price: 100, Color: "red", Size: "M", Qty: 2},
		{ProductID: "P2", Name: "Hat", Price: 19.5, Qty: 1},
		{ProductID: "P1", Name: "Shirt", Price: 100, Color: "red", Size: "L", Qty: 4},
	}

	var view View
	var err error
	for _, in := range inputs {
		view, err = engine.AddItem("u1", in)
		require.NoError(t, err)
	}

	wantItems, wantPrice := 0, 0.0
	for _, item := range view.Items {
		wantItems += item.Qty
		wantPrice += item.Price * float64(item.Qty)
	}
	assert.Equal(t, wantItems, view.TotalItems)
	assert.Equal(t, wantPrice, view.TotalPrice)
}

func TestReferenceScenario(t *testing.T) {
	engine := NewEngine(newMemStore())

	_, err := engine.AddItem("u1", shirt(2))
	require.NoError(t, err)

	view, err := engine.Get("u1")
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, "P1", view.Items[0].ProductID)
	assert.Equal(t, 2, view.Items[0].Qty)
	assert.Equal(t, 2, view.TotalItems)
	assert.Equal(t, 200.0, view.TotalPrice)

	view, err = engine.AddItem("u1", shirt(3))
	require.NoError(t, err)
	assert.Equal(t, 5, view.Items[0].Qty)
	assert.Equal(t, 500.0, view.TotalPrice)

	view, _, err = engine.UpdateQty("u1", UpdateQtyInput{ProductID: "P1", Color: "red", Size: "M", Qty: 1})
	require.NoError(t, err)
	assert.Equal(t, 1, view.Items[0].Qty)
	assert.Equal(t, 100.0, view.TotalPrice)

	view, err = engine.RemoveItem("u1", ItemKey{ProductID: "P1", Color: "red", Size: "M"})
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, 0, view.TotalItems)
	assert.Equal(t, 0.0, view.TotalPrice)
}

func TestInfrastructureErrorsPropagate(t *testing.T) {
	store := newMemStore()
	boom := errors.New("connection refused")
	store.err = boom

	engine := NewEngine(store)

	_, err := engine.Get("u1")
	assert.ErrorIs(t, err, boom)

	_, err = engine.AddItem("u1", shirt(1))
	assert.ErrorIs(t, err, boom)
}

func TestDistinctIdentitiesNeverShareCarts(t *testing.T) {
	engine := NewEngine(newMemStore())

	_, err := engine.AddItem("user_a@example.com", shirt(2))
	require.NoError(t, err)

	view, err := engine.Get("session_abc123")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}
