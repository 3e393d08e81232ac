package brdoc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOnlyDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"111.444.777-35", "11144477735"},
		{"(11) 98765-4321", "11987654321"},
		{"abc", ""},
		{"", ""},
		{"a1b2c3", "123"},
		{"٣12", "12"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, OnlyDigits(tt.in), tt.in)
	}
}

func TestOnlyDigits_KeepsRelativeOrder(t *testing.T) {
	inputs := []string{"9-8.7 6/5", "x0y0z1", "+55 (21) 3333-4444"}

	for _, in := range inputs {
		got := OnlyDigits(in)
		for _, c := range got {
			assert.True(t, c >= '0' && c <= '9', "unexpected %q in %q", c, got)
		}

		idx := 0
		for _, c := range got {
			pos := strings.IndexRune(in[idx:], c)
			assert.GreaterOrEqual(t, pos, 0, "digit %q out of order in %q", c, in)
			idx += pos + 1
		}
	}
}

func TestFormatCPF(t *testing.T) {
	assert.Equal(t, "111.444.777-35", FormatCPF("11144477735"))
	assert.Equal(t, "111.444.777-35", FormatCPF("111.444.777-35"))
	assert.Equal(t, "000.000.001-23", FormatCPF("123"))
	assert.Equal(t, "000.000.000-00", FormatCPF(""))
	assert.Equal(t, "123456789012", FormatCPF("123456789012"))
}

func TestFormatCPF_RoundTripThroughNormalize(t *testing.T) {
	for i := 0; i < 200; i++ {
		d := fmt.Sprintf("%011d", i*48271%100000000000)
		once := FormatCPF(d)
		assert.Equal(t, once, FormatCPF(OnlyDigits(once)))
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "(11) 3456-7890", FormatPhone("1134567890"))
	assert.Equal(t, "(11) 98765-4321", FormatPhone("11987654321"))
	assert.Equal(t, "123", FormatPhone("123"))
	assert.Equal(t, "(21) 99999-0000", FormatPhone("(21) 99999-0000"))
}

func TestValidateCPF(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
		want error
	}{
		{"valid formatted", "111.444.777-35", nil},
		{"valid digits", "52998224725", nil},
		{"repeated zeros", "00000000000", ErrInvalidChecksum},
		{"repeated formatted", "000.000.000-00", ErrInvalidChecksum},
		{"repeated nines", "99999999999", ErrInvalidChecksum},
		{"bad second digit", "12345678900", ErrInvalidChecksum},
		{"bad first digit", "11144477745", ErrInvalidChecksum},
		{"too short", "1234567890", ErrInvalidFormat},
		{"too long", "111444777350", ErrInvalidFormat},
		{"empty", "", ErrInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCPF(tt.cpf))
			assert.Equal(t, tt.want == nil, IsValidCPF(tt.cpf))
		})
	}
}

func TestValidateCPF_AcceptsComputedCheckDigits(t *testing.T) {
	for _, base := range []string{"123456789", "987654321", "100200300", "046813579"} {
		first := checkDigit(base)
		second := checkDigit(base + string(first))
		cpf := base + string(first) + string(second)

		assert.NoError(t, ValidateCPF(cpf), cpf)
	}
}

func TestIsCPFFormatted(t *testing.T) {
	assert.True(t, IsCPFFormatted("111.444.777-35"))
	assert.True(t, IsCPFFormatted("11144477735"))
	assert.False(t, IsCPFFormatted("044889741-55"))
	assert.False(t, IsCPFFormatted("111.444.77735"))
	assert.False(t, IsCPFFormatted(""))
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"11987654321", "(11) 98765-4321", "1134567890", "(61) 3333-4444", "99912345678"}
	for _, p := range valid {
		assert.NoError(t, ValidatePhone(p), p)
		assert.True(t, IsValidPhone(p), p)
	}

	invalid := []string{"00000000000", "123", "", "(20) 99999-0000", "119876543210", "1012345678"}
	for _, p := range invalid {
		assert.ErrorIs(t, ValidatePhone(p), ErrInvalidPhoneFormat, p)
		assert.False(t, IsValidPhone(p), p)
	}
}
