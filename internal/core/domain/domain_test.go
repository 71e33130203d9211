package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCart() Cart {
	return Cart{
		NewItem("bike-1", "Road bike", 1, 899.99),
		NewItem("bike-2", "Mountain bike", 2, 650),
		NewItem("helmet", "Helmet", 3, 20.5),
	}
}

func TestNewItem_ComputesTotal(t *testing.T) {
	item := NewItem("helmet", "Helmet", 3, 20.5)

	assert.Equal(t, 61.5, item.TotalPrice)
	assert.Empty(t, item.Role)
}

func TestNewItem_RoundsToCents(t *testing.T) {
	item := NewItem("bell", "Bell", 3, 0.1)

	assert.Equal(t, 0.3, item.TotalPrice)
}

func TestCart_Remove(t *testing.T) {
	tests := []struct {
		name    string
		index   int
		ok      bool
		wantIDs []string
	}{
		{"first", 0, true, []string{"bike-2", "helmet"}},
		{"middle", 1, true, []string{"bike-1", "helmet"}},
		{"last", 2, true, []string{"bike-1", "bike-2"}},
		{"negative", -1, false, []string{"bike-1", "bike-2", "helmet"}},
		{"past end", 3, false, []string{"bike-1", "bike-2", "helmet"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := sampleCart()
			assert.Equal(t, tt.ok, cart.Remove(tt.index))

			ids := make([]string, 0, cart.Len())
			for _, item := range cart {
				ids = append(ids, item.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCart_RemoveFromEmpty(t *testing.T) {
	var cart Cart
	assert.False(t, cart.Remove(0))
	assert.Equal(t, 0, cart.Len())
}

func TestCart_At(t *testing.T) {
	cart := sampleCart()

	item, ok := cart.At(1)
	require.True(t, ok)
	assert.Equal(t, "bike-2", item.ID)

	_, ok = cart.At(5)
	assert.False(t, ok)
}

func TestCart_TotalPrice(t *testing.T) {
	assert.Equal(t, 2261.49, sampleCart().TotalPrice())
	assert.Equal(t, 0.0, Cart(nil).TotalPrice())
}

func TestCart_EncodesAsArray(t *testing.T) {
	data, err := json.Marshal(Cart{NewItem("a", "A", 1, 2)})
	require.NoError(t, err)

	assert.JSONEq(t, `[{"id":"a","description":"A","quantity":1,"unitPrice":2,"totalPrice":2}]`, string(data))
}

func TestValidate_Item(t *testing.T) {
	assert.NoError(t, Validate(NewItem("a", "A", 1, 2)))
	assert.NoError(t, Validate(NewAdjustment(RoleTax, "Tax", 4.2)))

	assert.Error(t, Validate(Item{Description: "bad", Quantity: -1}))
	assert.Error(t, Validate(Item{Description: "bad", Role: "DISCOUNT"}))
}

func TestValidateCart(t *testing.T) {
	assert.NoError(t, ValidateCart(sampleCart()))
	assert.NoError(t, ValidateCart(nil))

	cart := sampleCart()
	cart[2].TotalPrice = -1
	err := ValidateCart(cart)
	assert.ErrorContains(t, err, "item 2")
}

func TestValidate_Wallets(t *testing.T) {
	masked := MaskedWalletResponse{
		JWTEnvelope: JWTEnvelope{Iss: "Google", Typ: "google/wallet/online/masked/v2/response"},
		Response: MaskedWallet{
			GoogleTransactionID: "gid-1",
			Email:               "buyer@example.com",
			Pay:                 &MaskedPay{Description: []string{"VISA xxxx-1111"}},
			Ship:                &Ship{ShippingAddress: &Address{CountryCode: "US"}},
		},
	}
	assert.NoError(t, Validate(masked))

	masked.Response.Email = "not-an-email"
	assert.Error(t, Validate(masked))

	full := FullWalletResponse{Response: FullWallet{Pay: &FullPay{ExpMonth: 13}}}
	assert.Error(t, Validate(full))
}

func TestMaskedWalletResponse_FlattensEnvelope(t *testing.T) {
	var resp MaskedWalletResponse
	require.NoError(t, json.Unmarshal([]byte(`{"iss":"Google","iat":10,"response":{"googleTransactionId":"gid"}}`), &resp))

	assert.Equal(t, "Google", resp.Iss)
	assert.Equal(t, int64(10), resp.Iat)
	assert.Equal(t, "gid", resp.Response.GoogleTransactionID)
}

func TestMaskedWalletResponse_KeepsUnknownMembers(t *testing.T) {
	raw := `{"iss":"Google","jti":"abc","response":{"googleTransactionId":"gid","buyerId":7,` +
		`"pay":{"description":["VISA xxxx-1111"],"brand":"VISA"},` +
		`"ship":{"shippingAddress":{"city":"Springfield","companyName":"Acme"}}}}`

	var resp MaskedWalletResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))

	assert.Equal(t, "gid", resp.Response.GoogleTransactionID)
	assert.JSONEq(t, `"abc"`, string(resp.Extra["jti"]))
	assert.JSONEq(t, `7`, string(resp.Response.Extra["buyerId"]))
	assert.JSONEq(t, `"VISA"`, string(resp.Response.Pay.Extra["brand"]))
	assert.JSONEq(t, `"Acme"`, string(resp.Response.Ship.ShippingAddress.Extra["companyName"]))

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestFullWalletResponse_KeepsUnknownMembers(t *testing.T) {
	raw := `{"typ":"google/wallet/online/full/v2/response","response":{"pay":{"pan":"4111","expMonth":1,"issuer":"x"},"note":{"a":[1,2]}}}`

	var resp FullWalletResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &resp))
	assert.Equal(t, 1, resp.Response.Pay.ExpMonth)
	assert.Nil(t, resp.Extra)

	out, err := json.Marshal(&resp)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
}

func TestWallet_KnownFieldsWinOverExtra(t *testing.T) {
	addr := Address{City: "Springfield", Extra: Extra{"city": json.RawMessage(`"Shelbyville"`), "zip4": json.RawMessage(`"1234"`)}}

	out, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"city":"Springfield","zip4":"1234"}`, string(out))
}

func TestWallet_MembersMatchCaseInsensitively(t *testing.T) {
	var w MaskedWallet
	require.NoError(t, json.Unmarshal([]byte(`{"Email":"a@example.com"}`), &w))

	assert.Equal(t, "a@example.com", w.Email)
	assert.Nil(t, w.Extra)
}

func TestKeys(t *testing.T) {
	assert.Len(t, DurableKeys, 6)
	assert.Equal(t, []string{"email", "accessToken"}, CookieKeys)
}
