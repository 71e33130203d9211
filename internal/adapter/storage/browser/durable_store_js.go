//go:build js && wasm

package browser

import (
	"context"
	"errors"
	"syscall/js"

	"checkout-persistence/internal/core/ports"
)

// DurableStore implements ports.DurableStore on window.localStorage.
// The browser profile is the session, so there is no session ID.
type DurableStore struct {
	kv js.Value
}

// NewDurableStore returns a store over window.localStorage.
func NewDurableStore() (*DurableStore, error) {
	kv := js.Global().Get("localStorage")
	if kv.IsUndefined() || kv.IsNull() {
		return nil, errors.New("localStorage is not available")
	}
	return &DurableStore{kv: kv}, nil
}

var _ ports.DurableStore = (*DurableStore)(nil)

// Get returns "", false, nil when localStorage has no item for key.
func (s *DurableStore) Get(_ context.Context, key string) (value string, ok bool, err error) {
	defer recoverJS(&err)
	v := s.kv.Call("getItem", key)
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// Set fails when the browser refuses the write, e.g. over quota.
func (s *DurableStore) Set(_ context.Context, key string, value string) (err error) {
	defer recoverJS(&err)
	s.kv.Call("setItem", key, value)
	return nil
}

// recoverJS turns a thrown JS exception into an error.
func recoverJS(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = jsErr
		return
	}
	panic(r)
}
