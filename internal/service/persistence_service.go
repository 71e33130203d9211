package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"time"

	"checkout-persistence/internal/core/domain"
	"checkout-persistence/internal/core/ports"
	"checkout-persistence/pkg/apperror"

	"github.com/rs/zerolog"
)

// PersistenceServiceImpl implements ports.PersistenceService on top of one
// session's durable store and cookie store.
type PersistenceServiceImpl struct {
	durable   ports.DurableStore
	cookies   ports.CookieStore
	refresher ports.CartRefresher
	log       zerolog.Logger
	now       func() time.Time
}

// NewPersistenceService creates a new PersistenceServiceImpl.
// refresher may be nil when nothing is derived from the cart.
func NewPersistenceService(
	durable ports.DurableStore,
	cookies ports.CookieStore,
	refresher ports.CartRefresher,
	log zerolog.Logger,
) *PersistenceServiceImpl {
	return &PersistenceServiceImpl{
		durable:   durable,
		cookies:   cookies,
		refresher: refresher,
		log:       log,
		now:       time.Now,
	}
}

// ---- Wallet records ----

func (s *PersistenceServiceImpl) SetMaskedWallet(ctx context.Context, wallet *domain.MaskedWalletResponse) error {
	return putRecord(ctx, s, domain.KeyMaskedWallet, wallet, validateRecord[domain.MaskedWalletResponse])
}

func (s *PersistenceServiceImpl) GetMaskedWallet(ctx context.Context) (*domain.MaskedWalletResponse, error) {
	return getJSON(ctx, s, domain.KeyMaskedWallet, validateRecord[domain.MaskedWalletResponse])
}

func (s *PersistenceServiceImpl) SetFullWallet(ctx context.Context, wallet *domain.FullWalletResponse) error {
	return putRecord(ctx, s, domain.KeyFullWallet, wallet, validateRecord[domain.FullWalletResponse])
}

func (s *PersistenceServiceImpl) GetFullWallet(ctx context.Context) (*domain.FullWalletResponse, error) {
	return getJSON(ctx, s, domain.KeyFullWallet, validateRecord[domain.FullWalletResponse])
}

func (s *PersistenceServiceImpl) SetChangedJWT(ctx context.Context, jwt domain.ChangedJWT) error {
	return putRecord(ctx, s, domain.KeyChangedJWT, &jwt, nil)
}

// GetChangedJWT returns "" when nothing is stored.
func (s *PersistenceServiceImpl) GetChangedJWT(ctx context.Context) (domain.ChangedJWT, error) {
	jwt, err := getJSON[domain.ChangedJWT](ctx, s, domain.KeyChangedJWT, nil)
	if err != nil || jwt == nil {
		return "", err
	}
	return *jwt, nil
}

// ---- Items & cart ----

func (s *PersistenceServiceImpl) SetCurrentItem(ctx context.Context, item *domain.Item) error {
	return putRecord(ctx, s, domain.KeyCurrentItem, item, validateRecord[domain.Item])
}

// GetCurrentItem returns nil, nil when no item has been viewed yet.
func (s *PersistenceServiceImpl) GetCurrentItem(ctx context.Context) (*domain.Item, error) {
	return getJSON(ctx, s, domain.KeyCurrentItem, validateRecord[domain.Item])
}

func (s *PersistenceServiceImpl) SetCartItem(ctx context.Context, cart domain.Cart) error {
	return putRecord(ctx, s, domain.KeyCartItem, &cart, validateCart)
}

// GetCartItem returns an empty cart when none is stored.
func (s *PersistenceServiceImpl) GetCartItem(ctx context.Context) (domain.Cart, error) {
	cart, err := getJSON(ctx, s, domain.KeyCartItem, validateCart)
	if err != nil || cart == nil {
		return nil, err
	}
	return *cart, nil
}

// UpdateCartItem removes cart[index], writes the remaining cart back under
// cartItem and then refreshes the checkout button from it.
func (s *PersistenceServiceImpl) UpdateCartItem(ctx context.Context, index int, cart *domain.Cart) error {
	if cart == nil {
		cart = &domain.Cart{}
	}
	if index < 0 || index >= cart.Len() {
		return apperror.ErrCartIndexOutOfRange(index, cart.Len())
	}

	cart.Remove(index)
	if err := s.SetCartItem(ctx, *cart); err != nil {
		return err
	}

	if s.refresher == nil {
		return nil
	}
	if err := s.refresher.Refresh(ctx, *cart); err != nil {
		s.log.Error().Err(err).Int("items", cart.Len()).Msg("cart refresh failed")
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return err
		}
		return apperror.InternalError(err)
	}
	return nil
}

// ---- Raw text ----

func (s *PersistenceServiceImpl) SetTransactionID(ctx context.Context, id string) error {
	return s.putRaw(ctx, domain.KeyTransactionID, id)
}

func (s *PersistenceServiceImpl) GetTransactionID(ctx context.Context) (string, error) {
	value, _, err := s.durable.Get(ctx, domain.KeyTransactionID)
	if err != nil {
		return "", apperror.ErrStorage(err)
	}
	return value, nil
}

// ---- Cookies ----

// SetEmail stores the email in a session cookie.
func (s *PersistenceServiceImpl) SetEmail(ctx context.Context, email string) error {
	if err := s.cookies.Set(ctx, domain.KeyEmail, email, time.Time{}); err != nil {
		return apperror.ErrStorage(err)
	}
	s.log.Debug().Str("key", domain.KeyEmail).Msg("cookie written")
	return nil
}

func (s *PersistenceServiceImpl) GetEmail(ctx context.Context) (string, error) {
	return s.getCookie(ctx, domain.KeyEmail)
}

// SetAccessToken stores token in a cookie that expires expirationMinutes from
// now. Zero or negative minutes produce a cookie that is already expired.
func (s *PersistenceServiceImpl) SetAccessToken(ctx context.Context, token string, expirationMinutes int) error {
	return s.SetAccessTokenTTL(ctx, token, MinutesTTL(float64(expirationMinutes)))
}

// SetAccessTokenTTL is SetAccessToken for callers that hold fractional minutes.
func (s *PersistenceServiceImpl) SetAccessTokenTTL(ctx context.Context, token string, ttl time.Duration) error {
	expiresAt := s.now().Add(ttl)
	if err := s.cookies.Set(ctx, domain.KeyAccessToken, token, expiresAt); err != nil {
		return apperror.ErrStorage(err)
	}
	s.log.Debug().
		Str("key", domain.KeyAccessToken).
		Time("expires_at", expiresAt).
		Msg("cookie written")
	return nil
}

func (s *PersistenceServiceImpl) GetAccessToken(ctx context.Context) (string, error) {
	return s.getCookie(ctx, domain.KeyAccessToken)
}

// ---- helpers ----

// MinutesTTL converts minutes to a duration, saturating at the bounds of
// time.Duration. NaN yields zero.
func MinutesTTL(minutes float64) time.Duration {
	d := minutes * float64(time.Minute)
	switch {
	case math.IsNaN(d):
		return 0
	case d >= math.MaxInt64:
		return math.MaxInt64
	case d <= math.MinInt64:
		return math.MinInt64
	}
	return time.Duration(d)
}

// putRecord encodes value and writes it under key. A value that fails
// validate is refused and nothing is written, so every stored record decodes
// through getJSON.
func putRecord[T any](ctx context.Context, s *PersistenceServiceImpl, key string, value *T, validate func(*T) error) error {
	data, err := json.Marshal(value)
	if err != nil {
		return apperror.ErrSerialization(key, err)
	}
	if value != nil && validate != nil {
		if err := validate(value); err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("refusing invalid value")
			return apperror.ErrInvalidRecord(key, err)
		}
	}
	return s.putRaw(ctx, key, string(data))
}

func (s *PersistenceServiceImpl) putRaw(ctx context.Context, key, value string) error {
	if err := s.durable.Set(ctx, key, value); err != nil {
		return apperror.ErrStorage(err)
	}
	s.log.Debug().Str("key", key).Int("bytes", len(value)).Msg("value written")
	return nil
}

func (s *PersistenceServiceImpl) getCookie(ctx context.Context, name string) (string, error) {
	value, _, err := s.cookies.Get(ctx, name)
	if err != nil {
		return "", apperror.ErrStorage(err)
	}
	return value, nil
}

// getJSON reads key and decodes it into a *T. Absent keys and stored JSON
// null both yield nil.
func getJSON[T any](ctx context.Context, s *PersistenceServiceImpl, key string, validate func(*T) error) (*T, error) {
	raw, ok, err := s.durable.Get(ctx, key)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	if !ok {
		return nil, nil
	}

	var value *T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stored value is not valid JSON")
		return nil, apperror.ErrDecode(key, err)
	}
	if value == nil || validate == nil {
		return value, nil
	}
	if err := validate(value); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("stored value failed validation")
		return nil, apperror.ErrDecode(key, err)
	}
	return value, nil
}

func validateRecord[T any](record *T) error {
	return domain.Validate(record)
}

func validateCart(cart *domain.Cart) error {
	return domain.ValidateCart(*cart)
}
