package domain

// Fixed storage keys. Browser code reads the same names, so they must not change.
const (
	KeyMaskedWallet  = "maskedWallet"
	KeyFullWallet    = "fullWallet"
	KeyChangedJWT    = "changedJwt"
	KeyCurrentItem   = "currentItem"
	KeyCartItem      = "cartItem"
	KeyTransactionID = "transactionId"
	KeyEmail         = "email"
	KeyAccessToken   = "accessToken"
)

// DurableKeys lists the keys held by the durable store.
var DurableKeys = []string{
	KeyMaskedWallet,
	KeyFullWallet,
	KeyChangedJWT,
	KeyCurrentItem,
	KeyCartItem,
	KeyTransactionID,
}

// CookieKeys lists the keys held by the expiring cookie store.
var CookieKeys = []string{
	KeyEmail,
	KeyAccessToken,
}
