package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBearerToken(t *testing.T) {
	tests := []struct {
		header string
		token  string
		ok     bool
	}{
		{"Bearer abc.def.ghi", "abc.def.ghi", true},
		{"bearer abc", "abc", true},
		{"Bearer ", "", false},
		{"Basic dXNlcjpwYXNz", "", false},
		{"abc", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		token, ok := BearerToken(tt.header)
		assert.Equal(t, tt.ok, ok, "header %q", tt.header)
		assert.Equal(t, tt.token, token, "header %q", tt.header)
	}
}

func TestParseID(t *testing.T) {
	id, ok := ParseID("12")
	assert.True(t, ok)
	assert.Equal(t, int64(12), id)

	for _, v := range []string{"", "0", "-3", "abc", "1.5"} {
		_, ok := ParseID(v)
		assert.False(t, ok, v)
	}
}

func TestStringPtr(t *testing.T) {
	assert.Nil(t, StringPtr("   "))
	assert.Equal(t, "Metz", *StringPtr(" Metz "))
}
