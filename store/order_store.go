package store

import (
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/canteen-app/models"
)

// OrderStore is plain record access over the orders table. Business
// validation lives in the services package, not here.
type OrderStore struct {
	DB *gorm.DB
}

func NewOrderStore(db *gorm.DB) *OrderStore {
	return &OrderStore{DB: db}
}

// Insert writes the order as a single row. The items column carries the
// whole cart, so the insert either lands completely or not at all.
func (s *OrderStore) Insert(order *models.Order) error {
	return s.DB.Create(order).Error
}

func (s *OrderStore) GetByID(id uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (s *OrderStore) GetForUser(id, userID uint) (*models.Order, error) {
	var order models.Order
	if err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateStatus flips the status only when the row still holds the expected
// current status. The returned count is zero when another writer got there
// first or the row is gone.
func (s *OrderStore) UpdateStatus(id uint, from, to models.OrderStatus) (int64, error) {
	res := s.DB.Model(&models.Order{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, res.Error
}

// ListByUser returns the user's non-completed orders created after since,
// newest first.
func (s *OrderStore) ListByUser(userID uint, since time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.
		Where("user_id = ? AND status != ? AND created_at >= ?", userID, models.StatusCompleted, since).
		Order("created_at desc").
		Find(&orders).Error
	return orders, err
}

// ListActive returns every non-completed order created after since, oldest
// first, for the staff queue view.
func (s *OrderStore) ListActive(since time.Time) ([]models.Order, error) {
	var orders []models.Order
	err := s.DB.
		Where("status != ? AND created_at >= ?", models.StatusCompleted, since).
		Order("created_at asc").
		Find(&orders).Error
	return orders, err
}

// DeleteActive removes every order still in flight, regardless of age.
func (s *OrderStore) DeleteActive() (int64, error) {
	res := s.DB.Where("status != ?", models.StatusCompleted).Delete(&models.Order{})
	return res.RowsAffected, res.Error
}

func (s *OrderStore) DeleteCompletedBefore(cutoff time.Time) (int64, error) {
	res := s.DB.
		Where("status = ? AND created_at < ?", models.StatusCompleted, cutoff).
		Delete(&models.Order{})
	return res.RowsAffected, res.Error
}

func (s *OrderStore) Count() (int64, error) {
	var count int64
	err := s.DB.Model(&models.Order{}).Count(&count).Error
	return count, err
}

// ResetSequence restarts order numbering from 1. Callers must only invoke
// this against an empty table, otherwise reused ids can collide with
// surviving rows.
func (s *OrderStore) ResetSequence() error {
	switch s.DB.Dialector.Name() {
	case "mysql":
		return s.DB.Exec("ALTER TABLE orders AUTO_INCREMENT = 1").Error
	case "sqlite", "sqlite3":
		// sqlite_sequence only exists once an AUTOINCREMENT table has been
		// written to; an empty rowid table restarts at 1 on its own.
		var n int64
		if err := s.DB.Raw(
			"SELECT count(*) FROM sqlite_master WHERE type = 'table' AND name = 'sqlite_sequence'",
		).Scan(&n).Error; err != nil || n == 0 {
			return err
		}
		return s.DB.Exec("DELETE FROM sqlite_sequence WHERE name = 'orders'").Error
	default:
		return s.DB.Exec("ALTER SEQUENCE orders_id_seq RESTART WITH 1").Error
	}
}
