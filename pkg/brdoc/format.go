package brdoc

import "strings"

const cpfLength = 11

// OnlyDigits strips every non-digit character, keeping the digits in order.
func OnlyDigits(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if c := text[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// FormatCPF renders a CPF in display form (ddd.ddd.ddd-dd), left-padding
// short values with zeros. Values with more than 11 digits are returned as
// plain digits rather than truncated.
func FormatCPF(cpf string) string {
	digits := OnlyDigits(cpf)
	if len(digits) > cpfLength {
		return digits
	}
	digits = strings.Repeat("0", cpfLength-len(digits)) + digits

	return digits[0:3] + "." + digits[3:6] + "." + digits[6:9] + "-" + digits[9:11]
}

// FormatPhone renders fixed-line (10 digits) and mobile (11 digits) numbers
// as (DD) XXXX-XXXX and (DD) XXXXX-XXXX. Any other length is returned as
// plain digits.
func FormatPhone(phone string) string {
	digits := OnlyDigits(phone)

	switch len(digits) {
	case 10:
		return "(" + digits[0:2] + ") " + digits[2:6] + "-" + digits[6:10]
	case 11:
		return "(" + digits[0:2] + ") " + digits[2:7] + "-" + digits[7:11]
	default:
		return digits
	}
}
