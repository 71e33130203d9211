//go:build js && wasm

// Command wasm exposes the persistence facade to page scripts, backed by
// localStorage and document.cookie. The same object is installed as
// window.bikeStore.Cookie and as the global checkoutPersistence.
//
// Records are passed and returned as plain JS values. Failures are thrown
// as JS Error exceptions.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"syscall/js"

	"checkout-persistence/internal/adapter/storage/browser"
	"checkout-persistence/internal/core/domain"
	"checkout-persistence/internal/service"
	"checkout-persistence/pkg/logger"
)

// throwing wraps a Go callback returning {value} or {error} into a JS
// function that returns value or throws error.
var throwing = js.Global().Get("Function").New("fn", `return function() {
	const r = fn.apply(this, arguments);
	if (r.error !== undefined) { throw new Error(r.error); }
	return r.value;
};`)

func main() {
	log := logger.New("info", false)

	durable, err := browser.NewDurableStore()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to open localStorage")
	}
	svc := service.NewPersistenceService(durable, browser.NewCookieStore("/"), buttonRefresher{}, logger.Component(log, "persistence"))
	ctx := context.Background()

	api := map[string]any{
		"setMaskedWallet": export(func(args []js.Value) (any, error) {
			return nil, setRecord(ctx, arg(args, 0), svc.SetMaskedWallet)
		}),
		"getMaskedWallet": export(func([]js.Value) (any, error) { return svc.GetMaskedWallet(ctx) }),
		"setFullWallet": export(func(args []js.Value) (any, error) {
			return nil, setRecord(ctx, arg(args, 0), svc.SetFullWallet)
		}),
		"getFullWallet": export(func([]js.Value) (any, error) { return svc.GetFullWallet(ctx) }),
		"setChangeJwt": export(func(args []js.Value) (any, error) {
			return nil, svc.SetChangedJWT(ctx, domain.ChangedJWT(text(arg(args, 0))))
		}),
		"getChangeJwt": export(func([]js.Value) (any, error) {
			jwt, err := svc.GetChangedJWT(ctx)
			if jwt == "" {
				return nil, err
			}
			return jwt, err
		}),
		"setCurrentItem": export(func(args []js.Value) (any, error) {
			return nil, setRecord(ctx, arg(args, 0), svc.SetCurrentItem)
		}),
		"getCurrentItem": export(func([]js.Value) (any, error) { return svc.GetCurrentItem(ctx) }),
		"setCartItem": export(func(args []js.Value) (any, error) {
			var cart domain.Cart
			if err := decodeArg(arg(args, 0), &cart); err != nil {
				return nil, err
			}
			return nil, svc.SetCartItem(ctx, cart)
		}),
		"getCartItem": export(func([]js.Value) (any, error) {
			cart, err := svc.GetCartItem(ctx)
			if cart == nil {
				cart = domain.Cart{}
			}
			return cart, err
		}),
		// updateCartItem(index, cart) removes cart[index]. The stored cart is
		// used when cart is omitted. Returns the remaining items.
		"updateCartItem": export(func(args []js.Value) (any, error) {
			cart, err := cartArg(ctx, svc, arg(args, 1))
			if err != nil {
				return nil, err
			}
			if err := svc.UpdateCartItem(ctx, number(arg(args, 0)).Int(), &cart); err != nil {
				return nil, err
			}
			return cart, nil
		}),
		"setTransactionId": export(func(args []js.Value) (any, error) {
			return nil, svc.SetTransactionID(ctx, text(arg(args, 0)))
		}),
		"getTransactionId": export(func([]js.Value) (any, error) { return optional(svc.GetTransactionID(ctx)) }),
		"setEmail": export(func(args []js.Value) (any, error) {
			return nil, svc.SetEmail(ctx, text(arg(args, 0)))
		}),
		"getEmail": export(func([]js.Value) (any, error) { return optional(svc.GetEmail(ctx)) }),
		// setAccessToken(token, expirationMinutes) accepts fractional and
		// string minutes, as Date arithmetic in page scripts does.
		"setAccessToken": export(func(args []js.Value) (any, error) {
			minutes := number(arg(args, 1)).Float()
			return nil, svc.SetAccessTokenTTL(ctx, text(arg(args, 0)), service.MinutesTTL(minutes))
		}),
		"getAccessToken": export(func([]js.Value) (any, error) { return optional(svc.GetAccessToken(ctx)) }),
	}
	api["setChangedJwt"] = api["setChangeJwt"]
	api["getChangedJwt"] = api["getChangeJwt"]

	cookie := js.ValueOf(api)
	bikeStore := js.Global().Get("bikeStore")
	if bikeStore.Type() != js.TypeObject {
		bikeStore = js.ValueOf(map[string]any{})
		js.Global().Set("bikeStore", bikeStore)
	}
	bikeStore.Set("Cookie", cookie)
	js.Global().Set("checkoutPersistence", cookie)
	log.Info().Msg("bikeStore.Cookie ready")

	select {}
}

// buttonRefresher redraws the checkout button after a cart update by calling
// bikeStore.Wallet.createButton when the page defines it.
type buttonRefresher struct{}

func (buttonRefresher) Refresh(context.Context, domain.Cart) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("createButton: %v", r)
		}
	}()
	wallet := js.Global().Get("bikeStore").Get("Wallet")
	if wallet.Type() != js.TypeObject || wallet.Get("createButton").Type() != js.TypeFunction {
		return nil
	}
	wallet.Call("createButton")
	return nil
}

// export turns fn into a JS function. Go values are returned as parsed JSON
// and errors, including panics, are thrown.
func export(fn func(args []js.Value) (any, error)) js.Value {
	callback := js.FuncOf(func(_ js.Value, args []js.Value) (out any) {
		defer func() {
			if r := recover(); r != nil {
				out = failure(fmt.Errorf("%v", r))
			}
		}()
		value, err := fn(args)
		if err != nil {
			return failure(err)
		}
		converted, err := toJS(value)
		if err != nil {
			return failure(err)
		}
		return map[string]any{"value": converted}
	})
	return throwing.Invoke(callback)
}

func failure(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}

// toJS converts value through JSON, the way the page stored it.
func toJS(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return js.Global().Get("JSON").Call("parse", string(data)), nil
}

func arg(args []js.Value, i int) js.Value {
	if i < len(args) {
		return args[i]
	}
	return js.Undefined()
}

func text(v js.Value) string {
	if v.IsUndefined() || v.IsNull() {
		return ""
	}
	return v.String()
}

func number(v js.Value) js.Value {
	return js.Global().Call("Number", v)
}

// optional maps an empty string to null, matching an unset item.
func optional(value string, err error) (any, error) {
	if err != nil || value == "" {
		return nil, err
	}
	return value, nil
}

// decodeArg accepts a JS value or its JSON text.
func decodeArg(v js.Value, out any) error {
	raw := "null"
	switch v.Type() {
	case js.TypeString:
		raw = v.String()
	case js.TypeUndefined, js.TypeNull:
	default:
		raw = js.Global().Get("JSON").Call("stringify", v).String()
	}
	return json.Unmarshal([]byte(raw), out)
}

func setRecord[T any](ctx context.Context, v js.Value, set func(context.Context, *T) error) error {
	var record *T
	if err := decodeArg(v, &record); err != nil {
		return err
	}
	return set(ctx, record)
}

func cartArg(ctx context.Context, svc *service.PersistenceServiceImpl, v js.Value) (domain.Cart, error) {
	if v.IsUndefined() || v.IsNull() {
		return svc.GetCartItem(ctx)
	}
	var cart domain.Cart
	err := decodeArg(v, &cart)
	return cart, err
}
