//go:build js && wasm

package web

import "syscall/js"

// AnimationFrames queues callbacks with window.requestAnimationFrame.
type AnimationFrames struct{}

func (AnimationFrames) RequestFrame(fn func()) {
	var cb js.Func
	cb = js.FuncOf(func(this js.Value, args []js.Value) any {
		cb.Release()
		fn()
		return nil
	})
	global.Call("requestAnimationFrame", cb)
}
