package service

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"checkout-persistence/internal/core/domain"
	"checkout-persistence/internal/core/ports"
	"checkout-persistence/pkg/apperror"

	"github.com/golang-jwt/jwt/v5"
)

// walletRequestTTL is how long a signed wallet request stays valid.
const walletRequestTTL = time.Hour

// WalletMerchant identifies the merchant in wallet request JWTs.
type WalletMerchant struct {
	ID       string
	Secret   string
	Name     string
	ClientID string
	Currency string
}

// WalletJWTServiceImpl implements ports.WalletJWTService using HS256 JWT.
type WalletJWTServiceImpl struct {
	merchant WalletMerchant
	secret   []byte
	now      func() time.Time
}

// NewWalletJWTService creates a new wallet JWT service for merchant.
func NewWalletJWTService(merchant WalletMerchant) *WalletJWTServiceImpl {
	return &WalletJWTServiceImpl{
		merchant: merchant,
		secret:   []byte(merchant.Secret),
		now:      time.Now,
	}
}

// BuildMaskedWalletRequest signs a masked wallet request estimating the cart total.
func (s *WalletJWTServiceImpl) BuildMaskedWalletRequest(cart domain.Cart, origin string, googleTransactionID string) (*ports.WalletRequest, error) {
	total := cart.TotalPrice()
	request := domain.MaskedWalletRequest{
		ClientID:            s.merchant.ClientID,
		MerchantName:        s.merchant.Name,
		Origin:              origin,
		GoogleTransactionID: googleTransactionID,
		Pay: domain.RequestPay{
			CurrencyCode:        s.merchant.Currency,
			EstimatedTotalPrice: formatPrice(total),
		},
	}
	return s.sign(domain.MaskedWalletRequestTyp, request, total)
}

// BuildFullWalletRequest signs a full wallet request for the cart plus tax
// and shipping lines.
func (s *WalletJWTServiceImpl) BuildFullWalletRequest(params ports.FullWalletParams) (*ports.WalletRequest, error) {
	lines := make([]domain.Item, 0, len(params.Cart)+2)
	lines = append(lines, params.Cart...)
	lines = append(lines,
		domain.NewAdjustment(domain.RoleTax, "Tax", params.Tax),
		domain.NewAdjustment(domain.RoleShipping, "shipping detail", params.Shipping),
	)
	total := domain.Cart(lines).TotalPrice()

	request := domain.FullWalletRequest{
		ClientID:            s.merchant.ClientID,
		MerchantName:        s.merchant.Name,
		Origin:              params.Origin,
		GoogleTransactionID: params.GoogleTransactionID,
		Cart: domain.RequestCart{
			TotalPrice:   formatPrice(total),
			CurrencyCode: s.merchant.Currency,
			LineItems:    lines,
		},
	}
	return s.sign(domain.FullWalletRequestTyp, request, total)
}

// BuildTransactionStatus signs a transaction status notification. An empty
// status means SUCCESS. A reason is only accepted with FAILURE.
func (s *WalletJWTServiceImpl) BuildTransactionStatus(googleTransactionID string, status domain.TransactionStatus, reason domain.FailureReason) (*ports.WalletRequest, error) {
	if status == "" {
		status = domain.StatusSuccess
	}
	if reason != "" && status != domain.StatusFailure {
		return nil, apperror.Validation("reason is only allowed with status FAILURE")
	}

	request := domain.TransactionStatusRequest{
		MerchantName:        s.merchant.Name,
		GoogleTransactionID: googleTransactionID,
		Status:              status,
		Reason:              reason,
	}
	if err := domain.Validate(request); err != nil {
		return nil, apperror.Validation(err.Error())
	}
	return s.sign(domain.TransactionStatusTyp, request, 0)
}

// Validate reports whether token carries a valid HS256 signature from the
// merchant secret. The audience is not checked.
func (s *WalletJWTServiceImpl) Validate(tokenString string) bool {
	if tokenString == "" {
		return false
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	return err == nil && token.Valid
}

func (s *WalletJWTServiceImpl) sign(typ string, request any, total float64) (*ports.WalletRequest, error) {
	now := s.now()
	expiresAt := now.Add(walletRequestTTL)

	claims := jwt.MapClaims{
		"iss":     s.merchant.ID,
		"aud":     domain.WalletAudience,
		"typ":     typ,
		"iat":     now.Unix(),
		"exp":     expiresAt.Unix(),
		"request": request,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, apperror.ErrWalletSigning(fmt.Errorf("signing %s: %w", typ, err))
	}

	return &ports.WalletRequest{
		JWT:        tokenString,
		TotalPrice: total,
		ExpiresAt:  expiresAt.Unix(),
	}, nil
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

// ButtonRefresher rebuilds the masked wallet request behind the checkout
// button whenever the cart changes. It implements ports.CartRefresher.
type ButtonRefresher struct {
	wallet              ports.WalletJWTService
	origin              string
	googleTransactionID string

	mu   sync.Mutex
	last *ports.WalletRequest
}

// NewButtonRefresher binds wallet to the page origin and the buyer's
// Google transaction ID, if any.
func NewButtonRefresher(wallet ports.WalletJWTService, origin, googleTransactionID string) *ButtonRefresher {
	return &ButtonRefresher{
		wallet:              wallet,
		origin:              origin,
		googleTransactionID: googleTransactionID,
	}
}

func (r *ButtonRefresher) Refresh(_ context.Context, cart domain.Cart) error {
	req, err := r.wallet.BuildMaskedWalletRequest(cart, r.origin, r.googleTransactionID)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.last = req
	r.mu.Unlock()
	return nil
}

// Last returns the most recent button request, or nil before the first refresh.
func (r *ButtonRefresher) Last() *ports.WalletRequest {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
