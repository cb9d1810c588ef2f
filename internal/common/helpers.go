package common

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// OCTDecimals is the number of fractional digits of the native unit:
	// 1 OCT = 10^6 micro-OCT.
	OCTDecimals = 6
)

// MicroToOCT converts micro units to an OCT decimal string without float
// precision loss.
func MicroToOCT(micro uint64) string {
	return formatWithDecimals(micro, OCTDecimals)
}

// OCTToMicro converts an OCT decimal string to micro units without float
// precision loss. Fractional digits beyond 6 are truncated, never rounded.
func OCTToMicro(oct string) (uint64, error) {
	raw, err := OCTToRawString(oct)
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(raw, 10, 64)
}

// OCTToRawString converts an OCT decimal string to an integer string of micro
// units, using string arithmetic only. Fractional digits beyond 6 are
// truncated, leading zeros of the result are stripped, and an all-zero
// amount normalizes to "0".
func OCTToRawString(oct string) (string, error) {
	s := strings.TrimSpace(oct)
	if s == "" {
		return "", fmt.Errorf("empty amount")
	}

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return "", fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := ""
	if len(parts) == 2 {
		frac = parts[1]
	}
	if whole == "" && frac == "" {
		return "", fmt.Errorf("invalid decimal format")
	}
	if whole == "" {
		whole = "0"
	}
	if !isDigits(whole) || (frac != "" && !isDigits(frac)) {
		return "", fmt.Errorf("amount must contain only digits and a decimal point")
	}

	// Pad or truncate fractional part to exactly 6 digits
	if len(frac) < OCTDecimals {
		frac += strings.Repeat("0", OCTDecimals-len(frac))
	} else if len(frac) > OCTDecimals {
		frac = frac[:OCTDecimals]
	}

	combined := strings.TrimLeft(whole+frac, "0")
	if combined == "" {
		return "0", nil
	}
	return combined, nil
}

// CompareOCTAmounts compares two OCT decimal string amounts without float
// precision loss. Returns -1 if a < b, 0 if a == b, 1 if a > b.
func CompareOCTAmounts(a, b string) (int, error) {
	aVal, err := OCTToMicro(a)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", a, err)
	}

	bVal, err := OCTToMicro(b)
	if err != nil {
		return 0, fmt.Errorf("failed to parse amount '%s': %w", b, err)
	}

	if aVal < bVal {
		return -1, nil
	}
	if aVal > bVal {
		return 1, nil
	}
	return 0, nil
}

// formatWithDecimals converts integer to decimal string by inserting decimal point
// Example: formatWithDecimals(24981836, 6) = "24.981836"
func formatWithDecimals(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
