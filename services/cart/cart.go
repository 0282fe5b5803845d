package cart

import (
	"context"
	"errors"
	"fmt"

	"cabinkeep/models"

	"github.com/google/uuid"
)

// ErrIndexOutOfRange is returned when an item removal names a position beyond
// the current list. The stored list is left untouched.
var ErrIndexOutOfRange = errors.New("cart index out of range")

// GetCart returns the user's current list. A user with no stored cart gets an
// empty list; the document itself is created lazily on the first add.
func (s *DefaultCartService) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	cart, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	if cart == nil {
		return []models.CartItem{}, nil
	}
	return cart.Items, nil
}

// AddItem appends a line to the user's cart and returns the updated list.
func (s *DefaultCartService) AddItem(ctx context.Context, userID, item string, quantity int, cabin *int) ([]models.CartItem, error) {
	cart, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	if cart == nil {
		cart = &models.Cart{UserID: userID, Items: []models.CartItem{}}
	}

	cart.Items = append(cart.Items, models.CartItem{
		ID:       uuid.New().String(),
		Item:     item,
		Quantity: quantity,
		Cabin:    cabin,
	})

	if err := s.Repo.Save(ctx, *cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart.Items, nil
}

// RemoveItem removes the line at the given position in the current list
// ordering and returns the updated list. An index outside the list is
// rejected with ErrIndexOutOfRange rather than silently ignored, so a stale
// removal under concurrent modification surfaces to the caller.
func (s *DefaultCartService) RemoveItem(ctx context.Context, userID string, index int) ([]models.CartItem, error) {
	cart, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart: %w", err)
	}
	if cart == nil || index < 0 || index >= len(cart.Items) {
		return nil, ErrIndexOutOfRange
	}

	cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)

	if err := s.Repo.Save(ctx, *cart); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return cart.Items, nil
}
