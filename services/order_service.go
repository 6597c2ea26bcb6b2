package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/canteen-app/hub"
	"github.com/yeremiapane/canteen-app/models"
	"github.com/yeremiapane/canteen-app/store"
)

// activeWindow bounds the "recent orders" views; the canteen runs a daily
// service cycle, anything older is the cleanup job's business.
const activeWindow = 24 * time.Hour

// OrderService orchestrates the order store, the status transition rules
// and the broadcast hub behind the two write operations of the app.
type OrderService struct {
	DB    *gorm.DB
	Store *store.OrderStore
	Hub   *hub.Hub
}

func NewOrderService(db *gorm.DB, h *hub.Hub) *OrderService {
	return &OrderService{
		DB:    db,
		Store: store.NewOrderStore(db),
		Hub:   h,
	}
}

// PlaceOrder validates the cart, persists the order as pending and
// announces it to staff connections. Lines referencing a menu item are
// re-priced from the menu row so clients cannot undercut the listed price;
// lines without a menu id keep the submitted price.
func (s *OrderService) PlaceOrder(userID uint, cart []models.OrderItem) (*models.Order, error) {
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	items := make(models.OrderItems, 0, len(cart))
	for _, line := range cart {
		if line.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidCartLine)
		}

		if line.MenuID != 0 {
			var menu models.MenuItem
			if err := s.DB.First(&menu, line.MenuID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return nil, fmt.Errorf("%w: id %d", ErrUnknownMenuItem, line.MenuID)
				}
				return nil, err
			}
			if !menu.Available {
				return nil, fmt.Errorf("%w: %s", ErrItemUnavailable, menu.Name)
			}
			line.Name = menu.Name
			line.Price = menu.Price
		}

		items = append(items, line)
	}

	order := &models.Order{
		UserID:     userID,
		Items:      items,
		TotalPrice: items.Total(),
		Status:     models.StatusPending,
		CreatedAt:  time.Now(),
	}

	if err := s.Store.Insert(order); err != nil {
		return nil, err
	}

	if s.Hub != nil {
		s.Hub.NewOrder(*order)
	}
	return order, nil
}

// AdvanceStatus moves an order one step forward in its lifecycle. The
// store update is conditional on the status the transition was validated
// against, so a concurrent writer cannot sneak a second transition through.
func (s *OrderService) AdvanceStatus(orderID uint, requested models.OrderStatus) (*models.Order, error) {
	order, err := s.Store.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := models.CanTransition(order.Status, requested); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTransition, err)
	}

	affected, err := s.Store.UpdateStatus(order.ID, order.Status, requested)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrStatusConflict
	}

	order.Status = requested
	if s.Hub != nil {
		s.Hub.StatusChanged(*order)
	}
	return order, nil
}

// OrdersForUser returns the user's non-completed orders of the current
// service window, newest first. Backs the "my active orders" view and its
// refetch-on-reconnect recovery path.
func (s *OrderService) OrdersForUser(userID uint) ([]models.Order, error) {
	return s.Store.ListByUser(userID, time.Now().Add(-activeWindow))
}

// ActiveOrders returns every in-flight order of the window, oldest first.
func (s *OrderService) ActiveOrders() ([]models.Order, error) {
	return s.Store.ListActive(time.Now().Add(-activeWindow))
}

func (s *OrderService) OrderForUser(orderID, userID uint) (*models.Order, error) {
	order, err := s.Store.GetForUser(orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

// OrderStatus is the projection behind the public tracking page; it leaks
// nothing beyond the token and its current status.
func (s *OrderService) OrderStatus(orderID uint) (models.OrderStatus, error) {
	order, err := s.Store.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrOrderNotFound
		}
		return "", err
	}
	return order.Status, nil
}
