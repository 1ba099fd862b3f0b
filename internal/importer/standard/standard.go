// Package standard parses the generic expense CSV layout: a header row naming
// date, description, amount and category columns, in any order, followed by
// one expense per row.
package standard

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/mvargas/spendtrack/internal/encoding"
	"github.com/mvargas/spendtrack/internal/expense"
)

const (
	colDate     = "date"
	colDesc     = "description"
	colAmount   = "amount"
	colCategory = "category"
)

// dateLayouts are tried in order when parsing the date column.
var dateLayouts = []string{
	time.RFC3339,
	time.DateOnly,
	"02/01/2006",
	"02-01-2006",
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]expense.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	idxDate, idxDesc, idxAmount, idxCategory := -1, -1, -1, -1
	headerFound := false

	var params []expense.CreateParams

	for _, row := range rows {
		if !headerFound {
			matches := 0

			for i, col := range row {
				switch strings.ToLower(strings.TrimSpace(col)) {
				case colDate:
					idxDate = i
					matches++
				case colDesc:
					idxDesc = i
					matches++
				case colAmount:
					idxAmount = i
					matches++
				case colCategory:
					idxCategory = i
				}
			}

			// Date and amount are the minimum needed to store anything useful.
			if matches >= 2 && idxDate != -1 && idxAmount != -1 {
				headerFound = true
			}

			continue
		}

		maxIdx := max(idxDate, max(idxDesc, max(idxAmount, idxCategory)))
		if len(row) <= maxIdx {
			continue
		}

		date, ok := parseDate(strings.TrimSpace(row[idxDate]))
		if !ok {
			continue
		}

		amount, err := parseAmount(strings.TrimSpace(row[idxAmount]))
		if err != nil {
			// Row is not a data row (subtotal, footer). Skip rather than
			// fail the whole upload.
			continue
		}

		description := ""
		if idxDesc != -1 {
			description = strings.TrimSpace(row[idxDesc])
		}

		category := ""
		if idxCategory != -1 {
			category = strings.TrimSpace(row[idxCategory])
		}

		params = append(params, expense.CreateParams{
			Description: description,
			Amount:      amount,
			Category:    category,
			Date:        date,
		})
	}

	if !headerFound {
		return nil, fmt.Errorf("no header row with date and amount columns found")
	}

	return params, nil
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
