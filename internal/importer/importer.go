package importer

import (
	"io"

	"github.com/mvargas/spendtrack/internal/expense"
)

// Source identifies the CSV layout of an uploaded file.
type Source string

const (
	SourceStandard Source = "standard"
)

type Parser interface {
	Parse(r io.Reader) ([]expense.CreateParams, error)
}
