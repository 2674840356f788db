// Package cart owns the mapping from a caller identity to its list of line
// items and implements the merge/update semantics of the shopping cart.
package cart

import (
	"errors"
	"time"

	"github.com/DanielaOM24/Cute-Mark/models"
)

var (
	ErrCartNotFound = errors.New("cart not found")
	ErrItemNotFound = errors.New("item not found in cart")
	ErrInvalidQty   = errors.New("quantity must be at least 1")
)

// Store persists whole carts keyed by identity. FindByIdentity returns
// ErrCartNotFound when no cart exists for the identity; any other error is an
// infrastructure failure and is propagated untouched.
type Store interface {
	FindByIdentity(identity string) (*models.Cart, error)
	Create(cart *models.Cart) error
	Save(cart *models.Cart) error
}

// Engine performs all cart mutations through an injected Store. Each call is
// an unguarded load-then-save over the whole cart: concurrent mutations for
// the same identity resolve last-write-wins.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// View is the response shape of every cart operation. Totals are recomputed
// from the item list on each call, never persisted.
type View struct {
	Items      []models.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

type AddItemInput struct {
	ProductID string
	Name      string
	Price     float64
	Color     string
	Size      string
	Qty       int // 0 means "not supplied", defaults to 1
	Image     string
}

type UpdateQtyInput struct {
	ProductID string
	Color     string
	Size      string
	Qty       int
}

// ItemKey is the composite key that makes a line unique within a cart.
type ItemKey struct {
	ProductID string
	Color     string
	Size      string
}

// Get loads the identity's cart, creating and persisting an empty one on
// first sight.
func (e *Engine) Get(identity string) (View, error) {
	cart, err := e.loadOrCreate(identity)
	if err != nil {
		return View{}, err
	}
	return viewOf(cart), nil
}

// AddItem merges the given line into the cart: an existing line with the same
// (productId, color, size) has its quantity increased, otherwise a new line is
// appended. A line never exists with qty < 1.
func (e *Engine) AddItem(identity string, in AddItemInput) (View, error) {
	if in.Qty < 0 {
		return View{}, ErrInvalidQty
	}
	if in.Qty == 0 {
		in.Qty = 1
	}

	cart, err := e.loadOrCreate(identity)
	if err != nil {
		return View{}, err
	}

	now := time.Now()
	if idx := indexOf(cart.Items, ItemKey{in.ProductID, in.Color, in.Size}); idx >= 0 {
		cart.Items[idx].Qty += in.Qty
		cart.Items[idx].AddedAt = now
	} else {
		cart.Items = append(cart.Items, models.CartItem{
			CartID:    cart.CartID,
			ProductID: in.ProductID,
			Name:      in.Name,
			Price:     in.Price,
			Color:     in.Color,
			Size:      in.Size,
			Qty:       in.Qty,
			Image:     in.Image,
			AddedAt:   now,
		})
	}

	if err := e.store.Save(cart); err != nil {
		return View{}, err
	}
	return viewOf(cart), nil
}

// UpdateQty sets a line's quantity absolutely. A quantity of zero or less
// removes the line. Returns whether the effect was a removal so the boundary
// can word its response accordingly.
func (e *Engine) UpdateQty(identity string, in UpdateQtyInput) (View, bool, error) {
	cart, err := e.store.FindByIdentity(identity)
	if err != nil {
		return View{}, false, err
	}

	idx := indexOf(cart.Items, ItemKey{in.ProductID, in.Color, in.Size})
	if idx < 0 {
		return View{}, false, ErrItemNotFound
	}

	removed := in.Qty <= 0
	if removed {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Qty = in.Qty
	}

	if err := e.store.Save(cart); err != nil {
		return View{}, false, err
	}
	return viewOf(cart), removed, nil
}

// RemoveItem deletes the line matching the composite key.
func (e *Engine) RemoveItem(identity string, key ItemKey) (View, error) {
	cart, err := e.store.FindByIdentity(identity)
	if err != nil {
		return View{}, err
	}

	idx := indexOf(cart.Items, key)
	if idx < 0 {
		return View{}, ErrItemNotFound
	}
	cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)

	if err := e.store.Save(cart); err != nil {
		return View{}, err
	}
	return viewOf(cart), nil
}

// Clear empties an existing cart. Unlike Get, a missing cart is an error here.
func (e *Engine) Clear(identity string) (View, error) {
	cart, err := e.store.FindByIdentity(identity)
	if err != nil {
		return View{}, err
	}

	cart.Items = nil
	if err := e.store.Save(cart); err != nil {
		return View{}, err
	}
	return viewOf(cart), nil
}

func (e *Engine) loadOrCreate(identity string) (*models.Cart, error) {
	cart, err := e.store.FindByIdentity(identity)
	if err == nil {
		return cart, nil
	}
	if !errors.Is(err, ErrCartNotFound) {
		return nil, err
	}

	cart = &models.Cart{Identity: identity}
	if err := e.store.Create(cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func indexOf(items []models.CartItem, key ItemKey) int {
	for i, item := range items {
		if item.Matches(key.ProductID, key.Color, key.Size) {
			return i
		}
	}
	return -1
}

func viewOf(cart *models.Cart) View {
	view := View{Items: []models.CartItem{}}
	for _, item := range cart.Items {
		view.Items = append(view.Items, item)
		view.TotalItems += item.Qty
		view.TotalPrice += item.Price * float64(item.Qty)
	}
	return view
}
