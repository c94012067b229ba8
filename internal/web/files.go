//go:build js && wasm

package web

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/ziadkadry99/craftfolio/internal/contact"
)

// DirectoryPicker asks the user for the project folder with
// window.showDirectoryPicker and opens contact/contact-info.json in it.
type DirectoryPicker struct{}

func (DirectoryPicker) Pick(ctx context.Context) (contact.Location, error) {
	show := global.Get("showDirectoryPicker")
	if show.Type() != js.TypeFunction {
		return nil, contact.ErrNoPicker
	}
	root, err := Await(ctx, global.Call("showDirectoryPicker", map[string]any{"mode": "readwrite"}))
	if err != nil {
		if IsAbort(err) {
			return nil, fmt.Errorf("%w: picker cancelled", contact.ErrNoHandle)
		}
		return nil, fmt.Errorf("%w: %v", contact.ErrNoHandle, err)
	}
	create := map[string]any{"create": true}
	dir, err := Await(ctx, root.Call("getDirectoryHandle", "contact", create))
	if err != nil {
		return nil, fmt.Errorf("%w: opening contact folder: %v", contact.ErrNoHandle, err)
	}
	file, err := Await(ctx, dir.Call("getFileHandle", contact.FileName, create))
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", contact.ErrNoHandle, contact.FileName, err)
	}
	return &fileHandle{handle: file}, nil
}

// fileHandle is a contact.Location over a FileSystemFileHandle.
type fileHandle struct {
	handle js.Value
}

func (f *fileHandle) RequestWrite(ctx context.Context) error {
	opts := map[string]any{"mode": "readwrite"}
	state, err := Await(ctx, f.handle.Call("queryPermission", opts))
	if err == nil && state.String() == "granted" {
		return nil
	}
	state, err = Await(ctx, f.handle.Call("requestPermission", opts))
	if err != nil {
		return err
	}
	if state.String() != "granted" {
		return fmt.Errorf("permission %s", state.String())
	}
	return nil
}

func (f *fileHandle) Read(ctx context.Context) ([]byte, error) {
	file, err := Await(ctx, f.handle.Call("getFile"))
	if err != nil {
		return nil, err
	}
	text, err := Await(ctx, file.Call("text"))
	if err != nil {
		return nil, err
	}
	return []byte(text.String()), nil
}

func (f *fileHandle) Write(ctx context.Context, data []byte) error {
	w, err := Await(ctx, f.handle.Call("createWritable"))
	if err != nil {
		return err
	}
	if _, err := Await(ctx, w.Call("write", string(data))); err != nil {
		w.Call("abort")
		return err
	}
	_, err = Await(ctx, w.Call("close"))
	return err
}
