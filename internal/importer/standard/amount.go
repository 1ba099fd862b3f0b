package standard

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses an amount cell into an exact decimal. Both plain
// ("1234.56") and European ("1.234,56") formats are accepted, with optional
// thousands separators.
func parseAmount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, fmt.Errorf("empty amount")
	}

	clean := s

	switch {
	case strings.Contains(s, ","):
		// A comma marks the European decimal separator; any dots are
		// thousands separators.
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	case strings.Count(s, ".") > 1:
		// Multiple dots can only be thousands separators ("1.234.567").
		clean = strings.ReplaceAll(clean, ".", "")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d, nil
}
