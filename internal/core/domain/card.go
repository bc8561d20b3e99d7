package domain

import (
	"errors"
	"time"
)

var (
	ErrCardNumber = errors.New("card number must be 16 digits and pass the Luhn check")
	ErrCardExpiry = errors.New("card is expired or expiry is invalid")
	ErrCardCVV    = errors.New("CVV must be 3 digits")
)

// LuhnValid reports whether number is all digits and passes the Luhn checksum.
func LuhnValid(number string) bool {
	if number == "" {
		return false
	}
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		c := number[i]
		if c < '0' || c > '9' {
			return false
		}
		d := int(c - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// ValidateCard applies the card-rail rules: 16-digit Luhn-valid number,
// month 1-12, expiry not before the current month, 3-digit CVV.
func ValidateCard(number string, month, year int, cvv string, now time.Time) error {
	if len(number) != 16 || !LuhnValid(number) {
		return ErrCardNumber
	}
	if month < 1 || month > 12 {
		return ErrCardExpiry
	}
	y, m := now.Year(), int(now.Month())
	if year < y || (year == y && month < m) {
		return ErrCardExpiry
	}
	if len(cvv) != 3 || !isDigits(cvv) {
		return ErrCardCVV
	}
	return nil
}

// LastFour returns the trailing four characters of a card number.
func LastFour(number string) string {
	if len(number) < 4 {
		return number
	}
	return number[len(number)-4:]
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
