package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainRenderer(t *testing.T) {
	var out bytes.Buffer
	r := NewPlainRenderer(&out)

	r.Clear()
	r.Prompt("Enter: ")
	r.Line("row")
	r.Banner("banner")
	r.Header("header")
	r.Success("ok")
	r.Error("bad")
	r.Highlight("match")

	assert.Equal(t, "Enter: row\nbanner\nheader\nok\nbad\nmatch\n", out.String())
}

func TestStyledRenderer_NonTerminalWriter(t *testing.T) {
	var out bytes.Buffer
	r := NewStyledRenderer(&out)

	r.Clear()
	r.Error("Invalid price. Please enter a positive number.")
	r.Highlight("Electronics, Phone, 900")
	r.Line("")

	output := out.String()
	assert.NotContains(t, output, clearScreen)
	assert.Contains(t, output, "Invalid price. Please enter a positive number.")
	assert.Contains(t, output, "Electronics, Phone, 900")
	assert.True(t, strings.HasSuffix(output, "\n\n"))
}

func TestReaderSource(t *testing.T) {
	src := NewReaderSource(strings.NewReader("first\r\nsecond\nlast"))

	line, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first", line)

	line, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	line, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "last", line)

	_, err = src.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderSource_LongLine(t *testing.T) {
	long := strings.Repeat("x", 70*1024)
	src := NewReaderSource(strings.NewReader(long + "\nnext\n"))

	line, err := src.ReadLine()
	require.NoError(t, err)
	assert.Len(t, line, len(long))

	line, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "next", line)
}
