// Package modal holds the single alert and single confirm dialog a session
// can have open. Showing a new dialog replaces the current one; there is no
// queue.
package modal

import (
	"context"
	"sync"
)

// Kind is the visual style of an alert
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Alert is a dismissible message box
type Alert struct {
	Message     string
	Title       string
	Kind        Kind
	ConfirmText string
}

// ConfirmFunc runs when the user accepts a confirm dialog
type ConfirmFunc func(ctx context.Context) error

// Confirm is a yes/no dialog with a pending action
type Confirm struct {
	Message     string
	Title       string
	ConfirmText string
	CancelText  string
	// ReturnTo is where the page goes after the dialog closes
	ReturnTo string

	onConfirm ConfirmFunc
}

// Helper owns the alert and confirm state of one session
type Helper struct {
	mu      sync.Mutex
	alert   *Alert
	confirm *Confirm
}

// New returns a helper with nothing shown
func New() *Helper {
	return &Helper{}
}

// ShowAlert replaces the current alert. Empty title, kind and confirm text
// fall back to defaults.
func (h *Helper) ShowAlert(message, title string, kind Kind, confirmText string) {
	if kind == "" {
		kind = KindInfo
	}
	if confirmText == "" {
		confirmText = "OK"
	}
	h.mu.Lock()
	h.alert = &Alert{Message: message, Title: title, Kind: kind, ConfirmText: confirmText}
	h.mu.Unlock()
}

// HideAlert dismisses the alert
func (h *Helper) HideAlert() {
	h.mu.Lock()
	h.alert = nil
	h.mu.Unlock()
}

// Alert returns a copy of the visible alert, or nil
func (h *Helper) Alert() *Alert {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.alert == nil {
		return nil
	}
	a := *h.alert
	return &a
}

// ConfirmOption customizes a confirm dialog
type ConfirmOption func(*Confirm)

// WithTitle sets the dialog title
func WithTitle(title string) ConfirmOption {
	return func(c *Confirm) { c.Title = title }
}

// WithButtons sets the accept and cancel labels
func WithButtons(confirmText, cancelText string) ConfirmOption {
	return func(c *Confirm) {
		c.ConfirmText = confirmText
		c.CancelText = cancelText
	}
}

// WithReturnTo sets the page to show once the dialog closes
func WithReturnTo(path string) ConfirmOption {
	return func(c *Confirm) { c.ReturnTo = path }
}

// ShowConfirm replaces the current confirm dialog with one that runs onConfirm when accepted
func (h *Helper) ShowConfirm(message string, onConfirm ConfirmFunc, opts ...ConfirmOption) {
	c := &Confirm{
		Message:     message,
		ConfirmText: "OK",
		CancelText:  "Cancel",
		ReturnTo:    "/",
		onConfirm:   onConfirm,
	}
	for _, opt := range opts {
		opt(c)
	}
	h.mu.Lock()
	h.confirm = c
	h.mu.Unlock()
}

// Confirm returns a copy of the visible confirm dialog, or nil
func (h *Helper) Confirm() *Confirm {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.confirm == nil {
		return nil
	}
	c := *h.confirm
	c.onConfirm = nil
	return &c
}

// Accept closes the confirm dialog and runs its action. It returns the
// dialog's ReturnTo and the action's error; ok is false when no dialog was open.
func (h *Helper) Accept(ctx context.Context) (returnTo string, ok bool, err error) {
	h.mu.Lock()
	c := h.confirm
	h.confirm = nil
	h.mu.Unlock()

	if c == nil {
		return "", false, nil
	}
	if c.onConfirm != nil {
		err = c.onConfirm(ctx)
	}
	return c.ReturnTo, true, err
}

// Cancel closes the confirm dialog without running its action
func (h *Helper) Cancel() (returnTo string, ok bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.confirm == nil {
		return "", false
	}
	returnTo = h.confirm.ReturnTo
	h.confirm = nil
	return returnTo, true
}

// Reset closes both dialogs
func (h *Helper) Reset() {
	h.mu.Lock()
	h.alert = nil
	h.confirm = nil
	h.mu.Unlock()
}
