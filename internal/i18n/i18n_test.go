package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNegotiate(t *testing.T) {
	tests := []struct {
		header string
		want   Lang
	}{
		{"vi-VN,vi;q=0.9,en;q=0.8", Vietnamese},
		{"en-US,en;q=0.9", English},
		{"fr-FR,en;q=0.5", English},
		{"ja", Vietnamese},
		{"", Vietnamese},
		{";;;", Vietnamese},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, Negotiate(tt.header, Vietnamese))
		})
	}
}

func TestT_Fallbacks(t *testing.T) {
	assert.Equal(t, "Sign in", T(English, "nav.login"))
	assert.Equal(t, "Đăng nhập", T(Vietnamese, "nav.login"))
	assert.Equal(t, "Đăng nhập", T(Lang("de"), "nav.login"))
	assert.Equal(t, "no.such.key", T(English, "no.such.key"))
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	for key := range catalog[Vietnamese] {
		_, ok := catalog[English][key]
		assert.True(t, ok, "english catalog is missing %q", key)
	}
	for key := range catalog[English] {
		_, ok := catalog[Vietnamese][key]
		assert.True(t, ok, "vietnamese catalog is missing %q", key)
	}
}

func TestParse(t *testing.T) {
	l, ok := Parse("en")
	assert.True(t, ok)
	assert.Equal(t, English, l)
	_, ok = Parse("xx")
	assert.False(t, ok)
}
