package handler

import (
	"net/http"

	"checkout-persistence/internal/adapter/http/dto"
	"checkout-persistence/internal/adapter/http/middleware"
	"checkout-persistence/internal/core/domain"
	"checkout-persistence/internal/core/ports"
	"checkout-persistence/pkg/apperror"
	"checkout-persistence/pkg/response"

	"github.com/gin-gonic/gin"
)

// WalletHandler signs and verifies wallet request JWTs.
type WalletHandler struct {
	wallet ports.WalletJWTService
	facade FacadeFunc
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(wallet ports.WalletJWTService, facade FacadeFunc) *WalletHandler {
	return &WalletHandler{wallet: wallet, facade: facade}
}

func (h *WalletHandler) sessionCart(c *gin.Context) (domain.Cart, bool) {
	sid, ok := middleware.SessionID(c)
	if !ok {
		response.Error(c, apperror.ErrMissingSession())
		return nil, false
	}
	cart, err := h.facade(c, sid, nil).GetCartItem(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return cart, true
}

// MaskedRequest handles GET /api/v1/wallet/masked-request.
// The estimated total comes from the session cart. Query: gid (optional).
func (h *WalletHandler) MaskedRequest(c *gin.Context) {
	gid := c.Query("gid")
	if gid != "" && !dto.IsSafeID(gid) {
		response.Error(c, apperror.Validation("gid contains invalid characters"))
		return
	}

	cart, ok := h.sessionCart(c)
	if !ok {
		return
	}

	req, err := h.wallet.BuildMaskedWalletRequest(cart, Origin(c), gid)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletRequestResponse(req))
}

// FullRequest handles POST /api/v1/wallet/full-request.
func (h *WalletHandler) FullRequest(c *gin.Context) {
	var req dto.FullWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	var cart domain.Cart
	if req.Cart != nil {
		cart = *req.Cart
		if err := domain.ValidateCart(cart); err != nil {
			response.Error(c, apperror.Validation(err.Error()))
			return
		}
	} else {
		var ok bool
		if cart, ok = h.sessionCart(c); !ok {
			return
		}
	}

	signed, err := h.wallet.BuildFullWalletRequest(ports.FullWalletParams{
		Cart:                cart,
		Tax:                 req.Tax,
		Shipping:            req.Shipping,
		Origin:              Origin(c),
		GoogleTransactionID: req.GoogleTransactionID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toWalletRequestResponse(signed))
}

// TransactionStatus handles GET and POST /api/v1/wallet/transaction-status.
// Params: gid, status (SUCCESS or FAILURE, default SUCCESS), reason.
func (h *WalletHandler) TransactionStatus(c *gin.Context) {
	var req dto.TransactionStatusRequest
	bind := c.ShouldBindQuery
	if c.Request.Method == http.MethodPost && c.Request.ContentLength != 0 {
		bind = c.ShouldBind
	}
	if err := bind(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStruct(&req)

	gid := req.GoogleTransactionID
	if gid == "" {
		sid, ok := middleware.SessionID(c)
		if !ok {
			response.Error(c, apperror.ErrMissingSession())
			return
		}
		stored, err := h.facade(c, sid, nil).GetTransactionID(c.Request.Context())
		if err != nil {
			response.Error(c, err)
			return
		}
		if gid = stored; gid == "" {
			response.Error(c, apperror.Validation("gid is required when the session has no transaction ID"))
			return
		}
	}

	signed, err := h.wallet.BuildTransactionStatus(gid, domain.TransactionStatus(req.Status), domain.FailureReason(req.Reason))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.TransactionStatusResponse{JWT: signed.JWT, ExpiresAt: signed.ExpiresAt})
}

// ValidateJWT handles POST /api/v1/wallet/jwt/validate.
func (h *WalletHandler) ValidateJWT(c *gin.Context) {
	var req dto.ValidateJWTRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.TrimStruct(&req)

	response.OK(c, dto.ValidateJWTResponse{Valid: h.wallet.Validate(req.JWT)})
}

func toWalletRequestResponse(req *ports.WalletRequest) dto.WalletRequestResponse {
	return dto.WalletRequestResponse{
		JWT:        req.JWT,
		TotalPrice: req.TotalPrice,
		ExpiresAt:  req.ExpiresAt,
	}
}
