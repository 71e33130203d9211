package handler

import (
	"context"
	"strconv"

	"checkout-persistence/internal/adapter/http/dto"
	"checkout-persistence/internal/adapter/http/middleware"
	"checkout-persistence/internal/core/domain"
	"checkout-persistence/internal/core/ports"
	"checkout-persistence/internal/service"
	"checkout-persistence/pkg/apperror"
	"checkout-persistence/pkg/response"

	"github.com/gin-gonic/gin"
)

// FacadeFunc binds the persistence facade to the request's session.
// refresher may be nil.
type FacadeFunc func(c *gin.Context, sessionID string, refresher ports.CartRefresher) ports.PersistenceService

// SessionHandler exposes the persistence facade under /api/v1/session.
type SessionHandler struct {
	facade FacadeFunc
	wallet ports.WalletJWTService // nil = no checkout button refresh
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(facade FacadeFunc, wallet ports.WalletJWTService) *SessionHandler {
	return &SessionHandler{facade: facade, wallet: wallet}
}

func (h *SessionHandler) bind(c *gin.Context, refresher ports.CartRefresher) (ports.PersistenceService, bool) {
	sid, ok := middleware.SessionID(c)
	if !ok {
		response.Error(c, apperror.ErrMissingSession())
		return nil, false
	}
	return h.facade(c, sid, refresher), true
}

// bindJSON decodes the body into v and checks its validate tags.
func bindJSON(c *gin.Context, v interface{}) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	if err := domain.Validate(v); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return false
	}
	return true
}

// ---- Wallet records ----

// PutMaskedWallet handles PUT /api/v1/session/maskedWallet.
func (h *SessionHandler) PutMaskedWallet(c *gin.Context) {
	var wallet domain.MaskedWalletResponse
	if !bindJSON(c, &wallet) {
		return
	}
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	if err := svc.SetMaskedWallet(c.Request.Context(), &wallet); err != nil {
		response.Error(c, err)
		return
	}
	response.Stored(c, domain.KeyMaskedWallet)
}

// GetMaskedWallet handles GET /api/v1/session/maskedWallet.
func (h *SessionHandler) GetMaskedWallet(c *gin.Context) {
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	wallet, err := svc.GetMaskedWallet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallet)
}

// PutFullWallet handles PUT /api/v1/session/fullWallet.
func (h *SessionHandler) PutFullWallet(c *gin.Context) {
	var wallet domain.FullWalletResponse
	if !bindJSON(c, &wallet) {
		return
	}
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	if err := svc.SetFullWallet(c.Request.Context(), &wallet); err != nil {
		response.Error(c, err)
		return
	}
	response.Stored(c, domain.KeyFullWallet)
}

// GetFullWallet handles GET /api/v1/session/fullWallet.
func (h *SessionHandler) GetFullWallet(c *gin.Context) {
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	wallet, err := svc.GetFullWallet(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, wallet)
}

// PutChangedJWT handles PUT /api/v1/session/changedJwt.
func (h *SessionHandler) PutChangedJWT(c *gin.Context) {
	var req dto.ChangedJWTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStruct(&req)

	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	if err := svc.SetChangedJWT(c.Request.Context(), domain.ChangedJWT(req.JWT)); err != nil {
		response.Error(c, err)
		return
	}
	response.Stored(c, domain.KeyChangedJWT)
}

// GetChangedJWT handles GET /api/v1/session/changedJwt.
func (h *SessionHandler) GetChangedJWT(c *gin.Context) {
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	jwt, err := svc.GetChangedJWT(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ValueResponse{Value: string(jwt)})
}

// ---- Items & cart ----

// PutCurrentItem handles PUT /api/v1/session/currentItem.
func (h *SessionHandler) PutCurrentItem(c *gin.Context) {
	var item domain.Item
	if !bindJSON(c, &item) {
		return
	}
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	if err := svc.SetCurrentItem(c.Request.Context(), &item); err != nil {
		response.Error(c, err)
		return
	}
	response.Stored(c, domain.KeyCurrentItem)
}

// GetCurrentItem handles GET /api/v1/session/currentItem.
func (h *SessionHandler) GetCurrentItem(c *gin.Context) {
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	item, err := svc.GetCurrentItem(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}

// PutCartItem handles PUT /api/v1/session/cartItem. The body is a JSON array.
func (h *SessionHandler) PutCartItem(c *gin.Context) {
	var cart domain.Cart
	if err := c.ShouldBindJSON(&cart); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if err := domain.ValidateCart(cart); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	if err := svc.SetCartItem(c.Request.Context(), cart); err != nil {
		response.Error(c, err)
		return
	}
	response.Stored(c, domain.KeyCartItem)
}

// GetCartItem handles GET /api/v1/session/cartItem.
func (h *SessionHandler) GetCartItem(c *gin.Context) {
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	cart, err := svc.GetCartItem(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if cart == nil {
		cart = domain.Cart{}
	}
	response.OK(c, cart)
}

// DeleteCartItem handles DELETE /api/v1/session/cartItem/:index.
// It removes one line from the stored cart and returns the rebuilt
// checkout button request. Query: gid (optional Google transaction ID).
func (h *SessionHandler) DeleteCartItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, apperror.Validation("index must be an integer"))
		return
	}

	gid := c.Query("gid")
	if gid != "" && !dto.IsSafeID(gid) {
		response.Error(c, apperror.Validation("gid contains invalid characters"))
		return
	}

	var button *service.ButtonRefresher
	var refresher ports.CartRefresher
	if h.wallet != nil {
		button = service.NewButtonRefresher(h.wallet, Origin(c), gid)
		refresher = button
	}

	svc, ok := h.bind(c, refresher)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	cart, err := svc.GetCartItem(ctx)
	if err != nil {
		response.Error(c, err)
		return
	}
	if err := svc.UpdateCartItem(ctx, index, &cart); err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.CartUpdateResponse{Cart: cart}
	if resp.Cart == nil {
		resp.Cart = domain.Cart{}
	}
	if button != nil {
		if req := button.Last(); req != nil {
			btn := toWalletRequestResponse(req)
			resp.Button = &btn
		}
	}
	response.OK(c, resp)
}

// ---- Raw text ----

// PutTransactionID handles PUT /api/v1/session/transactionId.
func (h *SessionHandler) PutTransactionID(c *gin.Context) {
	var req dto.TransactionIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	if err := svc.SetTransactionID(c.Request.Context(), req.TransactionID); err != nil {
		response.Error(c, err)
		return
	}
	response.Stored(c, domain.KeyTransactionID)
}

// GetTransactionID handles GET /api/v1/session/transactionId.
func (h *SessionHandler) GetTransactionID(c *gin.Context) {
	h.getText(c, ports.PersistenceService.GetTransactionID)
}

// ---- Cookies ----

// PutEmail handles PUT /api/v1/session/email.
func (h *SessionHandler) PutEmail(c *gin.Context) {
	var req dto.EmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	if err := svc.SetEmail(c.Request.Context(), req.Email); err != nil {
		response.Error(c, err)
		return
	}
	response.Stored(c, domain.KeyEmail)
}

// GetEmail handles GET /api/v1/session/email.
func (h *SessionHandler) GetEmail(c *gin.Context) {
	h.getText(c, ports.PersistenceService.GetEmail)
}

// PutAccessToken handles PUT /api/v1/session/accessToken.
func (h *SessionHandler) PutAccessToken(c *gin.Context) {
	var req dto.AccessTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStruct(&req)

	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	if err := svc.SetAccessToken(c.Request.Context(), req.Token, req.ExpirationMinutes); err != nil {
		response.Error(c, err)
		return
	}
	response.Stored(c, domain.KeyAccessToken)
}

// GetAccessToken handles GET /api/v1/session/accessToken.
func (h *SessionHandler) GetAccessToken(c *gin.Context) {
	h.getText(c, ports.PersistenceService.GetAccessToken)
}

func (h *SessionHandler) getText(c *gin.Context, get func(ports.PersistenceService, context.Context) (string, error)) {
	svc, ok := h.bind(c, nil)
	if !ok {
		return
	}
	value, err := get(svc, c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ValueResponse{Value: value})
}
