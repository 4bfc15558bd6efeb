package importer

import (
	"fmt"
	"io"

	"github.com/trungle-dev/renty/internal/importer/roster"
	"github.com/trungle-dev/renty/internal/property"
)

type Service struct {
	rosterImporter Importer
}

func NewService() *Service {
	return &Service{
		rosterImporter: roster.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]property.SeedApartment, error) {
	var importer Importer

	switch format {
	case FormatRoster:
		importer = s.rosterImporter
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return importer.Parse(r)
}
