//go:build js && wasm

package web

import (
	"context"
	"syscall/js"
	"time"

	"github.com/ziadkadry99/craftfolio/internal/contact"
)

// FormSelector locates the contact form.
const FormSelector = ".connect form"

// ToastDuration is how long a notification stays up unless clicked.
const ToastDuration = 5 * time.Second

// Form is the contact form surface. It implements contact.UI with toast
// notifications.
type Form struct {
	el js.Value
}

// FindForm returns the page's contact form, if any.
func FindForm() (*Form, bool) {
	el, ok := Query(FormSelector)
	if !ok {
		return nil, false
	}
	return &Form{el: el}, true
}

// Fields reads the current input values.
func (f *Form) Fields() contact.Fields {
	value := func(sel string) string {
		el := f.el.Call("querySelector", sel)
		if el.IsNull() {
			return ""
		}
		return el.Get("value").String()
	}
	return contact.Fields{
		Name:    value("#name"),
		Email:   value("#email"),
		Company: value("#company"),
		Message: value("#message"),
	}
}

// Bind submits the form through p on every submit event. Each submission
// runs on its own goroutine so promises can be awaited.
func (f *Form) Bind(p *contact.Pipeline) func() {
	return On(f.el, "submit", func(ev js.Value) {
		ev.Call("preventDefault")
		fields := f.Fields()
		go p.Submit(context.Background(), fields)
	}, false)
}

func (f *Form) Reset() { f.el.Call("reset") }

func (f *Form) Notify(kind contact.Kind, message string) {
	showToast(message, string(kind), ToastDuration)
}

func toastContainer() js.Value {
	if c, ok := Query(".toast-container:not(.left)"); ok {
		return c
	}
	c := document.Call("createElement", "div")
	c.Set("className", "toast-container")
	document.Get("body").Call("appendChild", c)
	return c
}

func showToast(message, kind string, d time.Duration) {
	toast := document.Call("createElement", "div")
	toast.Set("className", "toast "+kind)
	toast.Set("textContent", message)
	toastContainer().Call("appendChild", toast)

	var (
		once   bool
		remove func()
	)
	hide := func() {
		if once {
			return
		}
		once = true
		toast.Get("classList").Call("add", "hide")
		time.AfterFunc(380*time.Millisecond, func() {
			toast.Call("remove")
			remove()
		})
	}
	timer := time.AfterFunc(d, hide)
	remove = On(toast, "click", func(js.Value) {
		timer.Stop()
		hide()
	}, false)
}
