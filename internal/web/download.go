//go:build js && wasm

package web

import (
	"context"
	"syscall/js"
)

// BlobDownloader offers data as a file download through an object URL.
type BlobDownloader struct{}

func (BlobDownloader) Download(ctx context.Context, name string, data []byte) (err error) {
	defer catch(&err)

	buf := global.Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(buf, data)
	blob := global.Get("Blob").New([]any{buf}, map[string]any{"type": "application/json"})

	url := global.Get("URL").Call("createObjectURL", blob)
	a := document.Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", name)
	document.Get("body").Call("appendChild", a)
	a.Call("click")

	var cleanup js.Func
	cleanup = js.FuncOf(func(this js.Value, args []js.Value) any {
		global.Get("URL").Call("revokeObjectURL", url)
		a.Call("remove")
		cleanup.Release()
		return nil
	})
	global.Call("setTimeout", cleanup, 0)
	return nil
}
