package domain

// JWTEnvelope holds the registered claims shared by every wallet JWT payload.
type JWTEnvelope struct {
	Iss string `json:"iss,omitempty"`
	Aud string `json:"aud,omitempty"`
	Typ string `json:"typ,omitempty"`
	Iat int64  `json:"iat,omitempty"`
	Exp int64  `json:"exp,omitempty"`
}

// Address is a postal address returned by the wallet. Wallet payload types
// keep members they do not model in Extra.
type Address struct {
	Name        string `json:"name,omitempty"`
	Address1    string `json:"address1,omitempty"`
	Address2    string `json:"address2,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	PostalCode  string `json:"postalCode,omitempty"`
	CountryCode string `json:"countryCode,omitempty" validate:"omitempty,len=2"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Extra       Extra  `json:"-"`
}

// Ship carries the shipping details chosen by the buyer.
type Ship struct {
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
	Extra           Extra    `json:"-"`
}

// MaskedPay describes the masked payment instrument, e.g. "VISA xxxx-1234".
type MaskedPay struct {
	Description []string `json:"description,omitempty"`
	Extra       Extra    `json:"-"`
}

// MaskedWallet is the response body of a masked wallet JWT.
type MaskedWallet struct {
	GoogleTransactionID   string     `json:"googleTransactionId,omitempty"`
	MerchantTransactionID string     `json:"merchantTransactionId,omitempty"`
	Email                 string     `json:"email,omitempty" validate:"omitempty,email"`
	Pay                   *MaskedPay `json:"pay,omitempty"`
	Ship                  *Ship      `json:"ship,omitempty"`
	Extra                 Extra      `json:"-"`
}

// MaskedWalletResponse is the decoded payload of the masked wallet JWT.
type MaskedWalletResponse struct {
	JWTEnvelope
	Response MaskedWallet `json:"response"`
	Extra    Extra        `json:"-"`
}

// FullPay is the one-time card issued for a full wallet.
type FullPay struct {
	Pan            string   `json:"pan,omitempty"`
	Cvn            string   `json:"cvn,omitempty"`
	ExpMonth       int      `json:"expMonth,omitempty" validate:"omitempty,min=1,max=12"`
	ExpYear        int      `json:"expYear,omitempty"`
	BillingAddress *Address `json:"billingAddress,omitempty"`
	Extra          Extra    `json:"-"`
}

// FullWallet is the response body of a full wallet JWT.
type FullWallet struct {
	GoogleTransactionID   string   `json:"googleTransactionId,omitempty"`
	MerchantTransactionID string   `json:"merchantTransactionId,omitempty"`
	Email                 string   `json:"email,omitempty" validate:"omitempty,email"`
	Pay                   *FullPay `json:"pay,omitempty"`
	BillingAddress        *Address `json:"billingAddress,omitempty"`
	Ship                  *Ship    `json:"ship,omitempty"`
	Extra                 Extra    `json:"-"`
}

// FullWalletResponse is the decoded payload of the full wallet JWT.
type FullWalletResponse struct {
	JWTEnvelope
	Response FullWallet `json:"response"`
	Extra    Extra      `json:"-"`
}

// ChangedJWT is a re-issued masked wallet JWT carrying the Google transaction ID.
// It is stored as a JSON string.
type ChangedJWT string

// Wallet request JWT types.
const (
	WalletAudience         = "Google"
	MaskedWalletRequestTyp = "google/wallet/online/masked/v2/request"
	FullWalletRequestTyp   = "google/wallet/online/full/v2/request"
	TransactionStatusTyp   = "google/wallet/online/transactionstatus/v2"
)

// RequestPay is the payment section of a masked wallet request.
// Prices travel as decimal strings.
type RequestPay struct {
	CurrencyCode        string `json:"currencyCode"`
	EstimatedTotalPrice string `json:"estimatedTotalPrice"`
}

// MaskedWalletRequest asks the wallet for a masked payment instrument.
type MaskedWalletRequest struct {
	ClientID            string     `json:"clientId,omitempty"`
	MerchantName        string     `json:"merchantName"`
	Origin              string     `json:"origin"`
	GoogleTransactionID string     `json:"googleTransactionId,omitempty"`
	Ship                Ship       `json:"ship"`
	Pay                 RequestPay `json:"pay"`
}

// RequestCart is the itemized cart sent with a full wallet request.
type RequestCart struct {
	TotalPrice   string `json:"totalPrice"`
	CurrencyCode string `json:"currencyCode"`
	LineItems    []Item `json:"lineItems"`
}

// FullWalletRequest asks the wallet for the full payment credentials.
type FullWalletRequest struct {
	ClientID            string      `json:"clientId,omitempty"`
	MerchantName        string      `json:"merchantName"`
	Origin              string      `json:"origin"`
	GoogleTransactionID string      `json:"googleTransactionId,omitempty"`
	Cart                RequestCart `json:"cart"`
}

// TransactionStatus is the outcome of charging a full wallet card.
type TransactionStatus string

const (
	StatusSuccess TransactionStatus = "SUCCESS"
	StatusFailure TransactionStatus = "FAILURE"
)

// FailureReason explains a FAILURE transaction status.
type FailureReason string

const (
	ReasonBadCVC   FailureReason = "BAD_CVC"
	ReasonBadCard  FailureReason = "BAD_CARD"
	ReasonDeclined FailureReason = "DECLINED"
	ReasonOther    FailureReason = "OTHER"
)

// TransactionStatusRequest notifies the wallet of the charge outcome.
type TransactionStatusRequest struct {
	MerchantName        string            `json:"merchantName"`
	GoogleTransactionID string            `json:"googleTransactionId" validate:"required"`
	Status              TransactionStatus `json:"status" validate:"oneof=SUCCESS FAILURE"`
	Reason              FailureReason     `json:"reason,omitempty" validate:"omitempty,oneof=BAD_CVC BAD_CARD DECLINED OTHER"`
}
