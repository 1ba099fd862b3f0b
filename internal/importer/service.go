package importer

import (
	"fmt"
	"io"

	"github.com/mvargas/spendtrack/internal/expense"
	"github.com/mvargas/spendtrack/internal/importer/standard"
)

type Service struct {
	standardParser Parser
}

func NewService() *Service {
	return &Service{
		standardParser: standard.NewParser(),
	}
}

func (s *Service) Import(source Source, r io.Reader) ([]expense.CreateParams, error) {
	var parser Parser

	switch source {
	case SourceStandard:
		parser = s.standardParser
	default:
		return nil, fmt.Errorf("unknown source: %s", source)
	}

	return parser.Parse(r)
}
