package domain

import (
	"encoding/json"
	"maps"
	"reflect"
	"slices"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Extra holds the JSON members of a wallet payload that have no field of
// their own. They are written back out unchanged after the known fields.
type Extra map[string]json.RawMessage

var knownMembers sync.Map // reflect.Type -> map[string]struct{}

// marshalOpen encodes known and appends the members of extra, sorted by
// name. Known fields win over an extra member of the same name.
func marshalOpen(known any, extra Extra) ([]byte, error) {
	data, err := json.Marshal(known)
	if err != nil || len(extra) == 0 {
		return data, err
	}

	for _, name := range slices.Sorted(maps.Keys(extra)) {
		path := gjson.Escape(name)
		if gjson.GetBytes(data, path).Exists() {
			continue
		}
		if data, err = sjson.SetRawBytes(data, path, extra[name]); err != nil {
			return nil, err
		}
	}
	return data, nil
}

// unmarshalOpen decodes data into known, a pointer to a struct, and returns
// the members that did not match any of its fields.
func unmarshalOpen(data []byte, known any) (Extra, error) {
	if err := json.Unmarshal(data, known); err != nil {
		return nil, err
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return nil, nil
	}

	fields := memberNames(reflect.TypeOf(known).Elem())
	var extra Extra
	root.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if _, ok := fields[strings.ToLower(name)]; ok {
			return true
		}
		if extra == nil {
			extra = Extra{}
		}
		extra[name] = json.RawMessage(value.Raw)
		return true
	})
	return extra, nil
}

// memberNames lists the lower-cased JSON names encoding/json maps onto t,
// following embedded structs the same way the decoder does.
func memberNames(t reflect.Type) map[string]struct{} {
	if cached, ok := knownMembers.Load(t); ok {
		return cached.(map[string]struct{})
	}

	names := map[string]struct{}{}
	collectMembers(t, names)
	knownMembers.Store(t, names)
	return names
}

func collectMembers(t reflect.Type, names map[string]struct{}) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		if field.Anonymous && name == "" {
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				collectMembers(ft, names)
				continue
			}
		}
		if !field.IsExported() {
			continue
		}
		if name == "" {
			name = field.Name
		}
		names[strings.ToLower(name)] = struct{}{}
	}
}

func (a Address) MarshalJSON() ([]byte, error) {
	type plain Address
	return marshalOpen(plain(a), a.Extra)
}

func (a *Address) UnmarshalJSON(data []byte) error {
	type plain Address
	var p plain
	extra, err := unmarshalOpen(data, &p)
	if err != nil {
		return err
	}
	*a = Address(p)
	a.Extra = extra
	return nil
}

func (s Ship) MarshalJSON() ([]byte, error) {
	type plain Ship
	return marshalOpen(plain(s), s.Extra)
}

func (s *Ship) UnmarshalJSON(data []byte) error {
	type plain Ship
	var p plain
	extra, err := unmarshalOpen(data, &p)
	if err != nil {
		return err
	}
	*s = Ship(p)
	s.Extra = extra
	return nil
}

func (p MaskedPay) MarshalJSON() ([]byte, error) {
	type plain MaskedPay
	return marshalOpen(plain(p), p.Extra)
}

func (p *MaskedPay) UnmarshalJSON(data []byte) error {
	type plain MaskedPay
	var v plain
	extra, err := unmarshalOpen(data, &v)
	if err != nil {
		return err
	}
	*p = MaskedPay(v)
	p.Extra = extra
	return nil
}

func (w MaskedWallet) MarshalJSON() ([]byte, error) {
	type plain MaskedWallet
	return marshalOpen(plain(w), w.Extra)
}

func (w *MaskedWallet) UnmarshalJSON(data []byte) error {
	type plain MaskedWallet
	var p plain
	extra, err := unmarshalOpen(data, &p)
	if err != nil {
		return err
	}
	*w = MaskedWallet(p)
	w.Extra = extra
	return nil
}

func (r MaskedWalletResponse) MarshalJSON() ([]byte, error) {
	type plain MaskedWalletResponse
	return marshalOpen(plain(r), r.Extra)
}

func (r *MaskedWalletResponse) UnmarshalJSON(data []byte) error {
	type plain MaskedWalletResponse
	var p plain
	extra, err := unmarshalOpen(data, &p)
	if err != nil {
		return err
	}
	*r = MaskedWalletResponse(p)
	r.Extra = extra
	return nil
}

func (p FullPay) MarshalJSON() ([]byte, error) {
	type plain FullPay
	return marshalOpen(plain(p), p.Extra)
}

func (p *FullPay) UnmarshalJSON(data []byte) error {
	type plain FullPay
	var v plain
	extra, err := unmarshalOpen(data, &v)
	if err != nil {
		return err
	}
	*p = FullPay(v)
	p.Extra = extra
	return nil
}

func (w FullWallet) MarshalJSON() ([]byte, error) {
	type plain FullWallet
	return marshalOpen(plain(w), w.Extra)
}

func (w *FullWallet) UnmarshalJSON(data []byte) error {
	type plain FullWallet
	var p plain
	extra, err := unmarshalOpen(data, &p)
	if err != nil {
		return err
	}
	*w = FullWallet(p)
	w.Extra = extra
	return nil
}

func (r FullWalletResponse) MarshalJSON() ([]byte, error) {
	type plain FullWalletResponse
	return marshalOpen(plain(r), r.Extra)
}

func (r *FullWalletResponse) UnmarshalJSON(data []byte) error {
	type plain FullWalletResponse
	var p plain
	extra, err := unmarshalOpen(data, &p)
	if err != nil {
		return err
	}
	*r = FullWalletResponse(p)
	r.Extra = extra
	return nil
}
