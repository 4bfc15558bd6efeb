package roster

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	enc "github.com/trungle-dev/renty/internal/encoding"
	"github.com/trungle-dev/renty/internal/property"
)

// Parser reads apartment roster CSV exports and produces seed rows.
// It auto-detects which export language (Vietnamese or English headers)
// is being used by matching column headers against known profiles.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]property.SeedApartment, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching roster format found: expected floor and area columns")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps normalized column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := normalize(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts seed rows from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]property.SeedApartment, error) {
	floorIdx := cols[p.FloorCol]
	areaIdx := cols[p.AreaCol]

	var seeds []property.SeedApartment

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		floor, ok := parseInt(row, floorIdx)
		if !ok {
			// Footer or blank row.
			continue
		}

		area, err := parseArea(cellValue(row, areaIdx))
		if err != nil {
			return nil, fmt.Errorf("row %d: area: %w", rowNum, err)
		}

		seed := property.SeedApartment{
			FloorNumber: floor,
			Area:        area,
		}

		// Room number is optional; a blank cell means one is derived
		// from the floor during seeding.
		if idx, ok := cols[p.RoomCol]; ok {
			seed.RoomNumber = cellValue(row, idx)
		}

		if idx, ok := cols[p.BedroomsCol]; ok {
			if n, okN := parseInt(row, idx); okN {
				seed.Bedrooms = n
			}
		}

		if idx, ok := cols[p.BathroomsCol]; ok {
			if n, okN := parseInt(row, idx); okN {
				seed.Bathrooms = n
			}
		}

		seeds = append(seeds, seed)
	}

	return seeds, nil
}

// parseArea accepts both "75.5" and the comma decimal "75,5" used by
// spreadsheet exports.
func parseArea(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("missing value")
	}

	clean := strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}

	return v, nil
}

func parseInt(row []string, idx int) (int, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return 0, false
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}

	return n, true
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

// normalize lowercases and trims a header cell so matching tolerates
// the casing differences between exports.
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
