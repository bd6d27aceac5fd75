package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToString(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Nil", nil, ""},
		{"String", "hello", "hello"},
		{"Bytes", []byte("raw"), "raw"},
		{"Bool", true, "true"},
		{"Float", 1.5, "1.5"},
		{"WholeFloat", float64(42), "42"},
		{"Int64", int64(7), "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToString(tt.in))
		})
	}
}

func TestToBool(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   bool
		wantOK bool
	}{
		{"True", true, true, true},
		{"False", false, false, true},
		{"StringTrue", "true", true, true},
		{"StringPadded", " false ", false, true},
		{"StringGarbage", "maybe", false, false},
		{"IntZero", 0, false, true},
		{"Int64One", int64(1), true, true},
		{"Nil", nil, false, false},
		{"List", []string{"a"}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToBool(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestToStrings(t *testing.T) {
	got, ok := ToStrings([]any{"a", 1.0, true})
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "1", "true"}, got)

	got, ok = ToStrings([]string{"x"})
	assert.True(t, ok)
	assert.Equal(t, []string{"x"}, got)

	_, ok = ToStrings("not a list")
	assert.False(t, ok)
}
