package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trungle-dev/renty/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 with Vietnamese characters should pass through unchanged.
	input := "Tầng;Phòng;Diện tích\n3;301;75.5\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_Windows1258(t *testing.T) {
	// Windows-1258 encoded "Tòa nhà;Phòng đôi\n".
	// In Windows-1258: ò = 0xF2, à = 0xE0, đ = 0xF0, ô = 0xF4
	cp1258Bytes := []byte{
		'T', 0xF2, 'a', ' ', 'n', 'h', 0xE0, ';',
		'P', 'h', 0xF2, 'n', 'g', ' ', 0xF0, 0xF4, 'i', '\n',
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(cp1258Bytes))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Tòa nhà;Phòng đôi\n", string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	// UTF-8 BOM (0xEF 0xBB 0xBF) should be stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("Tầng;Phòng\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Tầng;Phòng\n", string(got))
}
