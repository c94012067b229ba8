//go:build js && wasm

// Package web binds the reveal engine and the contact pipeline to a browser
// page when compiled to WebAssembly.
package web

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
)

var (
	global   = js.Global()
	document = global.Get("document")
)

// ScrollY returns the vertical scroll offset of the window.
func ScrollY() float64 { return global.Get("scrollY").Float() }

// InnerHeight returns the viewport height.
func InnerHeight() float64 { return global.Get("innerHeight").Float() }

// QueryAll returns every element under root matching selector. A null root
// searches the whole document.
func QueryAll(root js.Value, selector string) []js.Value {
	if root.IsNull() || root.IsUndefined() {
		root = document
	}
	list := root.Call("querySelectorAll", selector)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

// Query returns the first element matching selector, or false.
func Query(selector string) (js.Value, bool) {
	el := document.Call("querySelector", selector)
	return el, !el.IsNull()
}

// On attaches a listener to target. The returned func removes it.
func On(target js.Value, event string, fn func(ev js.Value), passive bool) func() {
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	opts := map[string]any{"passive": passive}
	target.Call("addEventListener", event, cb, opts)
	return func() {
		target.Call("removeEventListener", event, cb, opts)
		cb.Release()
	}
}

// JSError wraps a value thrown or rejected by JavaScript.
type JSError struct {
	Name    string
	Message string
}

func (e *JSError) Error() string {
	if e.Name == "" {
		return e.Message
	}
	return e.Name + ": " + e.Message
}

func newJSError(v js.Value) *JSError {
	if v.Type() == js.TypeObject {
		return &JSError{Name: v.Get("name").String(), Message: v.Get("message").String()}
	}
	return &JSError{Message: v.String()}
}

// IsAbort reports whether err is a DOMException named AbortError, which the
// browser uses for a cancelled picker.
func IsAbort(err error) bool {
	var jsErr *JSError
	return errors.As(err, &jsErr) && jsErr.Name == "AbortError"
}

// Await blocks until promise settles. It must not be called from the
// goroutine running a JavaScript callback.
func Await(ctx context.Context, promise js.Value) (js.Value, error) {
	type result struct {
		v   js.Value
		err error
	}
	ch := make(chan result, 1)
	// Callbacks release themselves; a cancelled wait leaves them to the
	// settling promise.
	var onOK, onErr js.Func
	release := func() {
		onOK.Release()
		onErr.Release()
	}
	onOK = js.FuncOf(func(this js.Value, args []js.Value) any {
		release()
		var v js.Value
		if len(args) > 0 {
			v = args[0]
		}
		ch <- result{v: v}
		return nil
	})
	onErr = js.FuncOf(func(this js.Value, args []js.Value) any {
		release()
		err := &JSError{Message: "promise rejected"}
		if len(args) > 0 {
			err = newJSError(args[0])
		}
		ch <- result{err: err}
		return nil
	})

	promise.Call("then", onOK, onErr)
	select {
	case r := <-ch:
		return r.v, r.err
	case <-ctx.Done():
		return js.Undefined(), ctx.Err()
	}
}

// catch converts a JavaScript exception raised by a syscall/js call into an
// error.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	if jsErr, ok := r.(js.Error); ok {
		*err = newJSError(jsErr.Value)
		return
	}
	*err = fmt.Errorf("%v", r)
}
