package modal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowAlert_ReplacesWholesale(t *testing.T) {
	h := New()
	assert.Nil(t, h.Alert())

	h.ShowAlert("first", "Title 1", KindError, "Close")
	h.ShowAlert("second", "", "", "")

	a := h.Alert()
	require.NotNil(t, a)
	assert.Equal(t, "second", a.Message)
	assert.Equal(t, "", a.Title)
	assert.Equal(t, KindInfo, a.Kind)
	assert.Equal(t, "OK", a.ConfirmText)

	h.HideAlert()
	assert.Nil(t, h.Alert())
}

func TestConfirm_AcceptRunsCallbackOnceAndClears(t *testing.T) {
	h := New()
	calls := 0
	h.ShowConfirm("Delete tag?", func(ctx context.Context) error {
		calls++
		return nil
	}, WithReturnTo("/admin/tags"), WithTitle("Xác nhận"))

	c := h.Confirm()
	require.NotNil(t, c)
	assert.Equal(t, "Xác nhận", c.Title)

	returnTo, ok, err := h.Accept(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "/admin/tags", returnTo)
	assert.Equal(t, 1, calls)
	assert.Nil(t, h.Confirm())

	_, ok, _ = h.Accept(context.Background())
	assert.False(t, ok)
	assert.Equal(t, 1, calls)
}

func TestConfirm_CancelNeverRunsCallback(t *testing.T) {
	h := New()
	called := false
	h.ShowConfirm("Delete?", func(ctx context.Context) error {
		called = true
		return nil
	}, WithReturnTo("/admin/places"))

	returnTo, ok := h.Cancel()
	assert.True(t, ok)
	assert.Equal(t, "/admin/places", returnTo)
	assert.False(t, called)
	assert.Nil(t, h.Confirm())
}

func TestConfirm_SecondCallOverwritesFirst(t *testing.T) {
	h := New()
	var ran []string
	h.ShowConfirm("one", func(ctx context.Context) error { ran = append(ran, "one"); return nil })
	h.ShowConfirm("two", func(ctx context.Context) error { ran = append(ran, "two"); return nil })

	_, _, err := h.Accept(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"two"}, ran)
}

func TestConfirm_AcceptPropagatesError(t *testing.T) {
	h := New()
	boom := errors.New("boom")
	h.ShowConfirm("x", func(ctx context.Context) error { return boom })

	_, ok, err := h.Accept(context.Background())
	assert.True(t, ok)
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, h.Confirm())
}

func TestReset(t *testing.T) {
	h := New()
	h.ShowAlert("a", "", KindWarning, "")
	h.ShowConfirm("c", nil)
	h.Reset()
	assert.Nil(t, h.Alert())
	assert.Nil(t, h.Confirm())
}
