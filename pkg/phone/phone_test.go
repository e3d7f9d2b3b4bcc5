package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"two digits", "11", "11"},
		{"partial area and number", "119123", "(11) 9123"},
		{"seven digits", "1191234", "(11) 91234"},
		{"eight digits", "11912345", "(11) 91234-5"},
		{"landline", "1133334444", "(11) 3333-4444"},
		{"mobile", "11912345678", "(11) 91234-5678"},
		{"extra digits are dropped", "119123456789999", "(11) 91234-5678"},
		{"noise is ignored", "+55 abc", "55"},
		{"already formatted mobile", "(11) 91234-5678", "(11) 91234-5678"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.input))
		})
	}
}

func TestFormatIdempotent(t *testing.T) {
	inputs := []string{"1", "119", "119123", "11912345", "1133334444", "11912345678", "(11) 9"}
	for _, in := range inputs {
		once := Format(in)
		assert.Equal(t, once, Format(once), in)
	}
}

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("(11) 91234-5678"))
	assert.True(t, IsValid("1133334444"))
	assert.False(t, IsValid("119123"))
	assert.False(t, IsValid("119123456789"))
	assert.False(t, IsValid(""))
}
