//go:build js && wasm

package main

import (
	"context"
	"syscall/js"

	"github.com/designspace/designspace/internal/store"
)

// localStorage keeps the chart in the browser's window.localStorage.
type localStorage struct {
	storage js.Value
}

func newLocalStorage() *localStorage {
	return &localStorage{storage: js.Global().Get("localStorage")}
}

func (l *localStorage) Get(_ context.Context, key string) ([]byte, error) {
	v := l.storage.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return nil, store.ErrNotFound
	}
	return []byte(v.String()), nil
}

func (l *localStorage) Put(_ context.Context, key string, data []byte) (err error) {
	// setItem throws when the quota is exceeded.
	defer func() {
		if r := recover(); r != nil {
			err = jsError(r)
		}
	}()
	l.storage.Call("setItem", key, string(data))
	return nil
}
