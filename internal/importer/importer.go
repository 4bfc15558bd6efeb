package importer

import (
	"io"

	"github.com/trungle-dev/renty/internal/property"
)

type Format string

const (
	FormatRoster Format = "roster"
)

type Importer interface {
	Parse(r io.Reader) ([]property.SeedApartment, error)
}
