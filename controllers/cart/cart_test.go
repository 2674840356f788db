package cartControllers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DanielaOM24/Cute-Mark/cart"
	"github.com/DanielaOM24/Cute-Mark/middleware"
	"github.com/DanielaOM24/Cute-Mark/models"
)

type memStore struct {
	carts  map[string]models.Cart
	nextID uint
	err    error
}

func newMemStore() *memStore {
	return &memStore{carts: map[string]models.Cart{}}
}

func (s *memStore) FindByIdentity(identity string) (*models.Cart, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.carts[identity]
	if !ok {
		return nil, cart.ErrCartNotFound
	}
	clone := c
	clone.Items = append([]models.CartItem(nil), c.Items...)
	return &clone, nil
}

func (s *memStore) Create(c *models.Cart) error {
	if s.err != nil {
		return s.err
	}
	s.nextID++
	c.CartID = s.nextID
	return s.Save(c)
}

func (s *memStore) Save(c *models.Cart) error {
	if s.err != nil {
		return s.err
	}
	clone := *c
	clone.Items = append([]models.CartItem(nil), c.Items...)
	s.carts[c.Identity] = clone
	return nil
}

func newRouter(store cart.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := cart.NewEngine(store)

	r := gin.New()
	group := r.Group("/cart")
	group.Use(middleware.ResolveCartIdentity)
	group.GET("", GetCart(engine))
	group.POST("", AddCartItem(engine))
	group.PUT("", UpdateCartQty(engine))
	group.DELETE("", ClearCart(engine))
	group.DELETE("/item", RemoveCartItem(engine))
	return r
}

// do issues a request carrying the guest session cookie so every call in a
// test resolves to the same cart identity.
func do(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "test-session"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type cartResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Cart    struct {
		Items      []models.CartItem `json:"items"`
		TotalItems int               `json:"totalItems"`
		TotalPrice float64           `json:"totalPrice"`
	} `json:"cart"`
}

func parse(t *testing.T, w *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestGetCartStartsEmpty(t *testing.T) {
	r := newRouter(newMemStore())

	w := do(r, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := parse(t, w)
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Cart.Items)
	assert.Equal(t, 0, resp.Cart.TotalItems)
	assert.Equal(t, 0.0, resp.Cart.TotalPrice)
}

func TestAddItemValidatesRequiredFields(t *testing.T) {
	r := newRouter(newMemStore())

	w := do(r, http.MethodPost, "/cart", gin.H{"name": "Shirt", "price": 100})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, parse(t, w).Success)

	// Zero price is treated as missing, as in the reference behaviour.
	w = do(r, http.MethodPost, "/cart", gin.H{"productId": "P1", "name": "Shirt", "price": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddItemThenGet(t *testing.T) {
	r := newRouter(newMemStore())

	w := do(r, http.MethodPost, "/cart", gin.H{
		"productId": "P1", "name": "Shirt", "price": 100,
		"color": "red", "size": "M", "qty": 2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	resp := parse(t, w)
	assert.True(t, resp.Success)
	require.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, 2, resp.Cart.Items[0].Qty)
	assert.Equal(t, 2, resp.Cart.TotalItems)
	assert.Equal(t, 200.0, resp.Cart.TotalPrice)

	w = do(r, http.MethodGet, "/cart", nil)
	resp = parse(t, w)
	require.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, "P1", resp.Cart.Items[0].ProductID)
}

func TestAddSameVariantTwiceMerges(t *testing.T) {
	r := newRouter(newMemStore())
	item := gin.H{"productId": "P1", "name": "Shirt", "price": 100, "color": "red", "size": "M", "qty": 2}

	do(r, http.MethodPost, "/cart", item)
	item["qty"] = 3
	resp := parse(t, do(r, http.MethodPost, "/cart", item))

	require.Len(t, resp.Cart.Items, 1)
	assert.Equal(t, 5, resp.Cart.Items[0].Qty)
	assert.Equal(t, 500.0, resp.Cart.TotalPrice)
}

func TestUpdateQtyRemovesOnZero(t *testing.T) {
	r := newRouter(newMemStore())
	do(r, http.MethodPost, "/cart", gin.H{"productId": "P1", "name": "Shirt", "price": 100, "color": "red", "size": "M", "qty": 2})

	w := do(r, http.MethodPut, "/cart", gin.H{"productId": "P1", "color": "red", "size": "M", "qty": 0})
	require.Equal(t, http.StatusOK, w.Code)

	resp := parse(t, w)
	assert.Equal(t, "Product removed from cart", resp.Message)
	assert.Empty(t, resp.Cart.Items)
}

func TestUpdateQtyMissingItemIs404(t *testing.T) {
	r := newRouter(newMemStore())
	do(r, http.MethodPost, "/cart", gin.H{"productId": "P1", "name": "Shirt", "price": 100, "qty": 1})

	w := do(r, http.MethodPut, "/cart", gin.H{"productId": "P2", "qty": 3})
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, parse(t, w).Success)
}

func TestUpdateQtyMissingCartIs404(t *testing.T) {
	r := newRouter(newMemStore())

	w := do(r, http.MethodPut, "/cart", gin.H{"productId": "P1", "qty": 3})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveItemEndpoint(t *testing.T) {
	r := newRouter(newMemStore())
	do(r, http.MethodPost, "/cart", gin.H{"productId": "P1", "name": "Shirt", "price": 100, "color": "red", "size": "M", "qty": 2})

	w := do(r, http.MethodDelete, "/cart/item", gin.H{"productId": "P1", "color": "red", "size": "M"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, parse(t, w).Cart.Items)

	w = do(r, http.MethodDelete, "/cart/item", gin.H{"productId": "P1", "color": "red", "size": "M"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestClearCart(t *testing.T) {
	r := newRouter(newMemStore())

	// No cart yet: clearing is a 404, unlike GET which lazily creates.
	w := do(r, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	do(r, http.MethodPost, "/cart", gin.H{"productId": "P1", "name": "Shirt", "price": 100, "qty": 2})

	w = do(r, http.MethodDelete, "/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := parse(t, w)
	assert.Empty(t, resp.Cart.Items)
	assert.Equal(t, 0, resp.Cart.TotalItems)
	assert.Equal(t, 0.0, resp.Cart.TotalPrice)
}

func TestInfrastructureFailureIs500(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("connection refused")
	r := newRouter(store)

	w := do(r, http.MethodGet, "/cart", nil)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.False(t, parse(t, w).Success)
}
