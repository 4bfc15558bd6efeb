package roster_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/trungle-dev/renty/internal/importer/roster"
)

func TestParser_Vietnamese(t *testing.T) {
	csv := `Danh sách căn hộ - Tòa nhà A2;
Xuất ngày;01-08-2026

Tầng;Phòng;Diện tích;Phòng ngủ;Phòng tắm
3;301;75,5;2;1
3;;82;3;2
5;502;60.0;1;1

Tổng cộng;3 căn
`

	p := roster.NewParser()
	seeds, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, seeds, 3)

	assert.Equal(t, 3, seeds[0].FloorNumber)
	assert.Equal(t, "301", seeds[0].RoomNumber)
	assert.Equal(t, 75.5, seeds[0].Area)
	assert.Equal(t, 2, seeds[0].Bedrooms)
	assert.Equal(t, 1, seeds[0].Bathrooms)

	// Blank room cell rows are kept; the number is derived later.
	assert.Equal(t, "", seeds[1].RoomNumber)
	assert.Equal(t, 82.0, seeds[1].Area)

	assert.Equal(t, 5, seeds[2].FloorNumber)
	assert.Equal(t, "502", seeds[2].RoomNumber)
	assert.Equal(t, 60.0, seeds[2].Area)
}

func TestParser_English(t *testing.T) {
	csv := `Floor;Room;Area;Bedrooms;Bathrooms
2;201;55;1;1
2;202;55;1;1
`

	p := roster.NewParser()
	seeds, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, seeds, 2)

	assert.Equal(t, "201", seeds[0].RoomNumber)
	assert.Equal(t, "202", seeds[1].RoomNumber)
}

func TestParser_Windows1258(t *testing.T) {
	// Legacy exports arrive as Windows-1258; the parser must decode the
	// bytes before reading the rows.
	utf8CSV := "Building;Floor;Room;Area\nTòa nhà A2;4;401;68,5\n"

	encoded, err := charmap.Windows1258.NewEncoder().Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := roster.NewParser()
	seeds, err := p.Parse(bytes.NewReader(encoded))
	require.NoError(t, err)
	require.Len(t, seeds, 1)

	assert.Equal(t, 4, seeds[0].FloorNumber)
	assert.Equal(t, "401", seeds[0].RoomNumber)
	assert.Equal(t, 68.5, seeds[0].Area)
}

func TestParser_BadArea(t *testing.T) {
	csv := `Floor;Room;Area
2;201;not-a-number
`

	p := roster.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.ErrorContains(t, err, "area")
}

func TestParser_NoHeader(t *testing.T) {
	csv := `some;unrelated;file
1;2;3
`

	p := roster.NewParser()
	_, err := p.Parse(strings.NewReader(csv))
	assert.ErrorContains(t, err, "no matching roster format")
}
