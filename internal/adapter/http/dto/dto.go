package dto

import "checkout-persistence/internal/core/domain"

// ChangedJWTRequest is the request body for storing a re-issued masked wallet JWT.
type ChangedJWTRequest struct {
	JWT string `json:"jwt" binding:"required,max=8192"`
}

// TransactionIDRequest is the request body for storing the merchant transaction ID.
type TransactionIDRequest struct {
	TransactionID string `json:"transaction_id" binding:"required,max=128,safe_id"`
}

// EmailRequest is the request body for storing the buyer email.
type EmailRequest struct {
	Email string `json:"email" binding:"required,email,max=254"`
}

// AccessTokenRequest is the request body for storing the OAuth access token.
// Non-positive expiration_minutes expire the token immediately.
type AccessTokenRequest struct {
	Token             string `json:"token" binding:"required,max=4096"`
	ExpirationMinutes int    `json:"expiration_minutes"`
}

// FullWalletRequest is the request body for a full wallet request JWT.
// Cart defaults to the session cart when omitted.
type FullWalletRequest struct {
	Cart                *domain.Cart `json:"cart,omitempty"`
	Tax                 float64      `json:"tax" binding:"gte=0"`
	Shipping            float64      `json:"shipping" binding:"gte=0"`
	GoogleTransactionID string       `json:"gid" binding:"omitempty,max=128,safe_id"`
}

// ValidateJWTRequest is the request body for wallet JWT validation.
type ValidateJWTRequest struct {
	JWT string `json:"jwt" binding:"required"`
}

// TransactionStatusRequest selects the transaction a status notification is
// signed for. It binds from the query string or a form or JSON body. The
// session transaction ID is used when gid is empty.
type TransactionStatusRequest struct {
	GoogleTransactionID string `form:"gid" json:"gid" binding:"omitempty,max=128,safe_id"`
	Status              string `form:"status" json:"status" binding:"omitempty,oneof=SUCCESS FAILURE"`
	Reason              string `form:"reason" json:"reason" binding:"omitempty,oneof=BAD_CVC BAD_CARD DECLINED OTHER"`
}

// ValueResponse wraps a single raw text value.
type ValueResponse struct {
	Value string `json:"value"`
}

// WalletRequestResponse is the response body for a signed wallet request.
type WalletRequestResponse struct {
	JWT        string  `json:"jwt"`
	TotalPrice float64 `json:"total_price"`
	ExpiresAt  int64   `json:"expires_at"` // Unix timestamp
}

// TransactionStatusResponse carries a signed transaction status JWT.
type TransactionStatusResponse struct {
	JWT       string `json:"jwt"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}

// CartUpdateResponse is the response body after removing a cart line.
type CartUpdateResponse struct {
	Cart   domain.Cart            `json:"cart"`
	Button *WalletRequestResponse `json:"button,omitempty"`
}

// ValidateJWTResponse is the response body for wallet JWT validation.
type ValidateJWTResponse struct {
	Valid bool `json:"valid"`
}
