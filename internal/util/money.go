package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MinorUnitsPerUnit is the scale between a currency unit and its minor unit.
const MinorUnitsPerUnit = 100

var ErrInvalidAmount = errors.New("invalid monetary amount")

// ToMinorUnits converts a decimal currency amount such as "12.5" into integer
// minor units (1250). At most two fractional digits are accepted and the
// amount must not be negative. The conversion never goes through a float.
func ToMinorUnits(amount string) (int64, error) {
	s := strings.TrimSpace(amount)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidAmount
	}

	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" || !isDigits(whole) {
		return 0, ErrInvalidAmount
	}
	if hasDot && (len(frac) == 0 || len(frac) > 2 || !isDigits(frac)) {
		return 0, ErrInvalidAmount
	}
	for len(frac) < 2 {
		frac += "0"
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	cents, _ := strconv.ParseInt(frac, 10, 64)
	if units > (1<<63-1-cents)/MinorUnitsPerUnit {
		return 0, ErrInvalidAmount
	}
	return units*MinorUnitsPerUnit + cents, nil
}

// FormatMinorUnits renders minor units with two decimal places: 1250 -> "12.50".
func FormatMinorUnits(minor int64) string {
	sign := ""
	if minor < 0 {
		sign = "-"
		minor = -minor
	}
	return fmt.Sprintf("%s%d.%02d", sign, minor/MinorUnitsPerUnit, minor%MinorUnitsPerUnit)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
