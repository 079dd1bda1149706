package validate

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
	// RUT with optional thousand dots: 12.345.678-5 or 12345678-5
	reRUT  = regexp.MustCompile(`^[0-9]{1,2}(\.?[0-9]{3}){2}-[0-9kK]$`)
	reDate = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 50 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// ID validates a simple resource identifier (product/customer ids).
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Qty parses a quantity field; garbage and sub-1 values fall back to 1, the
// stock ceiling is enforced later by the cart.
func Qty(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// Name validates a displayable name with a reasonable max length.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 60 {
		return "", false
	}
	return s, true
}

// RUT checks format and the mod-11 verification digit.
func RUT(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !reRUT.MatchString(s) {
		return "", false
	}
	clean := strings.ReplaceAll(s, ".", "")
	parts := strings.SplitN(clean, "-", 2)
	body, dv := parts[0], strings.ToUpper(parts[1])

	sum, factor := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * factor
		factor++
		if factor > 7 {
			factor = 2
		}
	}
	want := 11 - sum%11
	var expect string
	switch want {
	case 11:
		expect = "0"
	case 10:
		expect = "K"
	default:
		expect = strconv.Itoa(want)
	}
	return s, dv == expect
}

// Date validates a calendar date string as used by the delivery-date field.
func Date(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reDate.MatchString(s)
}

// Password enforces the login complexity window.
func Password(s string) bool {
	l := len(s)
	if l < 8 || l > 20 {
		return false
	}
	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range s {
		switch {
		case 'a' <= r && r <= 'z':
			hasLower = true
		case 'A' <= r && r <= 'Z':
			hasUpper = true
		case '0' <= r && r <= '9':
			hasDigit = true
		default:
			hasSymbol = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSymbol
}
