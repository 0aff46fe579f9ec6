package conversion

import (
	"fmt"
	"math/big"
	"strings"
)

const digits = "0123456789ABCDEF"

// SupportedBases are the radixes offered by the base converter screen
var SupportedBases = []int{2, 8, 10, 16}

func checkBase(base int) error {
	if base < 2 || base > len(digits) {
		return fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}
	return nil
}

// ParseInBase reads text as a number written in base, one digit at a time.
// Digits are case-insensitive and a leading '-' marks a negative number.
// Empty input is zero.
func ParseInBase(text string, base int) (*big.Int, error) {
	if err := checkBase(base); err != nil {
		return nil, err
	}

	s := strings.TrimSpace(text)
	result := new(big.Int)
	if s == "" {
		return result, nil
	}

	negative := false
	if s[0] == '-' {
		negative = true
		s = s[1:]
		if s == "" {
			return nil, fmt.Errorf("%w: sign without digits", ErrInvalidDigit)
		}
	}

	radix := big.NewInt(int64(base))
	for _, r := range strings.ToUpper(s) {
		d := strings.IndexRune(digits, r)
		if d < 0 || d >= base {
			return nil, fmt.Errorf("%w %q for base %d", ErrInvalidDigit, r, base)
		}
		result.Mul(result, radix)
		result.Add(result, big.NewInt(int64(d)))
	}

	if negative {
		result.Neg(result)
	}
	return result, nil
}

// FormatInBase writes n in base using upper-case digits
func FormatInBase(n *big.Int, base int) (string, error) {
	if err := checkBase(base); err != nil {
		return "", err
	}
	if n == nil || n.Sign() == 0 {
		return "0", nil
	}

	rest := new(big.Int).Abs(n)
	radix := big.NewInt(int64(base))
	rem := new(big.Int)

	var out []byte
	for rest.Sign() > 0 {
		rest.QuoRem(rest, radix, rem)
		out = append(out, digits[rem.Int64()])
	}
	if n.Sign() < 0 {
		out = append(out, '-')
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out), nil
}

// ConvertBase rewrites text from one base into another
func ConvertBase(text string, from, to int) (string, error) {
	n, err := ParseInBase(text, from)
	if err != nil {
		return "", err
	}
	return FormatInBase(n, to)
}
