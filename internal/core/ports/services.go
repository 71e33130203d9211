package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"

	"checkout-persistence/internal/core/domain"
)

// PersistenceService is the per-session facade over the durable and cookie
// stores. Getters return a nil/empty sentinel for absent keys and an
// apperror STORE_001 for stored text that does not decode.
type PersistenceService interface {
	SetMaskedWallet(ctx context.Context, wallet *domain.MaskedWalletResponse) error
	GetMaskedWallet(ctx context.Context) (*domain.MaskedWalletResponse, error)

	SetFullWallet(ctx context.Context, wallet *domain.FullWalletResponse) error
	GetFullWallet(ctx context.Context) (*domain.FullWalletResponse, error)

	SetChangedJWT(ctx context.Context, jwt domain.ChangedJWT) error
	GetChangedJWT(ctx context.Context) (domain.ChangedJWT, error)

	SetCurrentItem(ctx context.Context, item *domain.Item) error
	GetCurrentItem(ctx context.Context) (*domain.Item, error)

	SetCartItem(ctx context.Context, cart domain.Cart) error
	GetCartItem(ctx context.Context) (domain.Cart, error)
	// UpdateCartItem removes cart[index], persists the cart and refreshes
	// anything derived from it.
	UpdateCartItem(ctx context.Context, index int, cart *domain.Cart) error

	SetTransactionID(ctx context.Context, id string) error
	GetTransactionID(ctx context.Context) (string, error)

	SetEmail(ctx context.Context, email string) error
	GetEmail(ctx context.Context) (string, error)

	SetAccessToken(ctx context.Context, token string, expirationMinutes int) error
	GetAccessToken(ctx context.Context) (string, error)
}

// WalletRequest is a signed wallet request JWT and the total it was built for.
type WalletRequest struct {
	JWT        string
	TotalPrice float64
	ExpiresAt  int64
}

// FullWalletParams holds the checkout adjustments added to a full wallet request.
type FullWalletParams struct {
	Cart                domain.Cart
	Tax                 float64
	Shipping            float64
	Origin              string
	GoogleTransactionID string
}

// WalletJWTService signs and verifies wallet JWTs with the merchant secret.
type WalletJWTService interface {
	BuildMaskedWalletRequest(cart domain.Cart, origin string, googleTransactionID string) (*WalletRequest, error)
	BuildFullWalletRequest(params FullWalletParams) (*WalletRequest, error)
	// BuildTransactionStatus signs the notification sent to the wallet once
	// the merchant has charged, or failed to charge, the full wallet card.
	BuildTransactionStatus(googleTransactionID string, status domain.TransactionStatus, reason domain.FailureReason) (*WalletRequest, error)
	Validate(token string) bool
}

// ValueSealer encrypts and authenticates values stored on the client.
// name is bound into the seal so a value cannot be replayed under another cookie.
type ValueSealer interface {
	Seal(name, value string) (string, error)
	Open(name, sealed string) (string, error)
}
