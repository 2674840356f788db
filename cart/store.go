package cart

import (
	"time"

	"gorm.io/gorm"

	"github.com/DanielaOM24/Cute-Mark/models"
)

// GormStore persists carts in Postgres. A cart is always read and written as a
// whole aggregate (the cart row plus all of its item rows), so an interrupted
// request never leaves a half-written item list behind.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindByIdentity(identity string) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items").Where("identity = ?", identity).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *GormStore) Create(cart *models.Cart) error {
	return s.db.Create(cart).Error
}

// Save replaces the cart's item rows with the in-memory list and bumps the
// update timestamp, all in one transaction.
func (s *GormStore) Save(cart *models.Cart) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		for i := range cart.Items {
			cart.Items[i].ID = 0
			cart.Items[i].CartID = cart.CartID
		}
		if len(cart.Items) > 0 {
			if err := tx.Create(&cart.Items).Error; err != nil {
				return err
			}
		}

		return tx.Model(&models.Cart{}).
			Where("cart_id = ?", cart.CartID).
			Update("updated_at", time.Now()).Error
	})
}

// PurgeStaleSessionCarts removes guest-session carts that have not been
// touched within the retention window. User carts (identity "user_...") are
// never purged.
func (s *GormStore) PurgeStaleSessionCarts(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)

	var purged int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var ids []uint
		if err := tx.Model(&models.Cart{}).
			Where("identity LIKE ? AND updated_at < ?", "session\\_%", cutoff).
			Pluck("cart_id", &ids).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}

		if err := tx.Where("cart_id IN ?", ids).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}

		res := tx.Where("cart_id IN ?", ids).Delete(&models.Cart{})
		purged = res.RowsAffected
		return res.Error
	})
	return purged, err
}
