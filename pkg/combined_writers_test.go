package pkg

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestCombinedWriter_Write(t *testing.T) {
	stdout := &strings.Builder{}
	stdout.WriteString("starting ...")
	logFile := &strings.Builder{}

	cw := NewCombinedWriter(stdout, logFile)
	require.NotNil(t, cw)
	assert.Len(t, cw.Writers, 2)
	assert.NoError(t, cw.Err)

	line1 := "averages recalculated\n"
	line2 := "chart statistics served\n"
	n, err := cw.Write([]byte(line1))
	require.NoError(t, err)
	assert.Equal(t, 2*len(line1), n)
	n, err = cw.Write([]byte(line2))
	require.NoError(t, err)
	assert.Equal(t, 2*len(line2), n)

	assert.Equal(t, "starting ..."+line1+line2, stdout.String())
	assert.Equal(t, line1+line2, logFile.String())
}

func TestCombinedWriter_Write_WithErrors(t *testing.T) {
	sb := &strings.Builder{}
	cw := NewCombinedWriter(&failingWriter{name: "disk"}, sb, &failingWriter{name: "pipe"})

	line := "weight added"
	n, err := cw.Write([]byte(line))
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 2)
	assert.Contains(t, err.Error(), "disk")
	assert.Contains(t, err.Error(), "pipe")

	// only the string builder got the line
	assert.Equal(t, len(line), n)
	assert.Equal(t, line, sb.String())
}

type failingWriter struct {
	name string
}

func (fw *failingWriter) Write([]byte) (int, error) {
	return 0, errors.New(fw.name + " is full")
}
