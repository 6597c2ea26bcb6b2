package services

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInvalidCartLine   = errors.New("invalid cart line")
	ErrUnknownMenuItem   = errors.New("menu item not found")
	ErrItemUnavailable   = errors.New("menu item not available")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrStatusConflict    = errors.New("order status changed concurrently")
)
