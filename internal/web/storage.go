//go:build js && wasm

package web

import (
	"context"
	"errors"
	"syscall/js"
)

// ErrNoStorage means window.localStorage is unavailable, e.g. in a private
// window with storage disabled.
var ErrNoStorage = errors.New("localStorage unavailable")

// LocalStorage is a contact.KV backed by window.localStorage.
type LocalStorage struct{}

func (LocalStorage) store() (v js.Value, err error) {
	defer catch(&err)
	v = global.Get("localStorage")
	if v.IsUndefined() || v.IsNull() {
		return v, ErrNoStorage
	}
	return v, nil
}

func (s LocalStorage) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	ls, err := s.store()
	if err != nil {
		return "", false, err
	}
	defer catch(&err)
	v := ls.Call("getItem", key)
	if v.IsNull() {
		return "", false, nil
	}
	return v.String(), true, nil
}

// Set stores value. Quota errors thrown by the browser are returned.
func (s LocalStorage) Set(ctx context.Context, key, value string) (err error) {
	ls, err := s.store()
	if err != nil {
		return err
	}
	defer catch(&err)
	ls.Call("setItem", key, value)
	return nil
}

// Remove deletes key, letting Cache.Clear drop the cached log.
func (s LocalStorage) Remove(ctx context.Context, key string) (err error) {
	ls, err := s.store()
	if err != nil {
		return err
	}
	defer catch(&err)
	ls.Call("removeItem", key)
	return nil
}
