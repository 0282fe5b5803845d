package cart

import (
	"context"

	cartRepo "cabinkeep/database/repository/cart"
	"cabinkeep/models"
)

// CartService manages the per-user supply-request list. Every method returns
// the updated list so clients can render without a follow-up read.
type CartService interface {
	GetCart(ctx context.Context, userID string) ([]models.CartItem, error)
	AddItem(ctx context.Context, userID, item string, quantity int, cabin *int) ([]models.CartItem, error)
	RemoveItem(ctx context.Context, userID string, index int) ([]models.CartItem, error)
}

// DefaultCartService is the production implementation.
type DefaultCartService struct {
	Repo cartRepo.CartRepository
}
