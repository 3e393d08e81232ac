// Package brdoc formats and validates Brazilian identifier fields: CPF
// taxpayer numbers and phone numbers with area code (DDD).
package brdoc

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidFormat      = errors.New("cpf must have 11 digits")
	ErrInvalidChecksum    = errors.New("cpf check digits do not match")
	ErrInvalidPhoneFormat = errors.New("phone must have 10 or 11 digits and a valid area code")
)

var cpfDisplayPattern = regexp.MustCompile(`^\d{3}\.\d{3}\.\d{3}-\d{2}$`)
var cpfDigitsPattern = regexp.MustCompile(`^\d{11}$`)

// validDDD holds the area codes assigned by ANATEL.
var validDDD = map[string]struct{}{}

func init() {
	for _, ddd := range []string{
		"11", "12", "13", "14", "15", "16", "17", "18", "19",
		"21", "22", "24", "27", "28",
		"31", "32", "33", "34", "35", "37", "38",
		"41", "42", "43", "44", "45", "46", "47", "48", "49",
		"51", "53", "54", "55",
		"61", "62", "63", "64", "65", "66", "67", "68", "69",
		"71", "73", "74", "75", "77", "79",
		"81", "82", "83", "84", "85", "86", "87", "88", "89",
		"91", "92", "93", "94", "95", "96", "97", "98", "99",
	} {
		validDDD[ddd] = struct{}{}
	}
}

// IsCPFFormatted reports whether cpf is written either in display form
// (ddd.ddd.ddd-dd) or as exactly 11 bare digits.
func IsCPFFormatted(cpf string) bool {
	return cpfDisplayPattern.MatchString(cpf) || cpfDigitsPattern.MatchString(cpf)
}

// ValidateCPF checks the two mod-11 check digits of a CPF. Sequences of a
// single repeated digit pass the arithmetic but are rejected.
func ValidateCPF(cpf string) error {
	digits := OnlyDigits(cpf)
	if len(digits) != cpfLength {
		return ErrInvalidFormat
	}

	repeated := true
	for i := 1; i < cpfLength; i++ {
		if digits[i] != digits[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return ErrInvalidChecksum
	}

	if checkDigit(digits[:9]) != digits[9] || checkDigit(digits[:10]) != digits[10] {
		return ErrInvalidChecksum
	}
	return nil
}

// IsValidCPF is the boolean form of ValidateCPF.
func IsValidCPF(cpf string) bool {
	return ValidateCPF(cpf) == nil
}

// checkDigit computes the next CPF check digit for the given prefix. Weights
// run from len(prefix)+1 down to 2.
func checkDigit(prefix string) byte {
	sum := 0
	weight := len(prefix) + 1
	for i := 0; i < len(prefix); i++ {
		sum += int(prefix[i]-'0') * weight
		weight--
	}

	rest := sum % 11
	if rest < 2 {
		return '0'
	}
	return byte('0' + 11 - rest)
}

// ValidatePhone accepts 10 (fixed-line) or 11 (mobile) digits starting with a
// known DDD. Punctuation is ignored.
func ValidatePhone(phone string) error {
	digits := OnlyDigits(phone)
	if len(digits) != 10 && len(digits) != 11 {
		return ErrInvalidPhoneFormat
	}
	if _, ok := validDDD[digits[:2]]; !ok {
		return ErrInvalidPhoneFormat
	}
	return nil
}

// IsValidPhone is the boolean form of ValidatePhone.
func IsValidPhone(phone string) bool {
	return ValidatePhone(phone) == nil
}
