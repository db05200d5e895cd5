package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/beka-birhanu/mazeball/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type zeroSource struct{}

func (zeroSource) Intn(int) int { return 0 }

func TestWriteMaze(t *testing.T) {
	m, err := maze.Generate(3, 3, zeroSource{}, maze.WithStart(maze.CellPosition{Row: 0, Col: 0}))
	require.NoError(t, err)

	t.Run("ASCII with solution", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writeMaze(&out, m, false, true))

		assert.True(t, strings.HasPrefix(out.String(), m.String()))
		assert.Contains(t, out.String(), "Solution (5 cells):\n(0,0) (0,1) (0,2) (1,2) (2,2) \n")
	})

	t.Run("JSON", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, writeMaze(&out, m, true, false))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
		assert.EqualValues(t, 3, decoded["rows"])
		assert.Contains(t, decoded, "horizontals")
	})
}

func TestPrintCommand(t *testing.T) {
	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}

	out, err := run("print", "--rows", "4", "--cols", "6", "--seed", "9", "--start-row", "0", "--start-col", "0")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 2*4+1)
	assert.Equal(t, "+"+strings.Repeat("---+", 6), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "| S "))

	again, err := run("print", "--rows", "4", "--cols", "6", "--seed", "9", "--start-row", "0", "--start-col", "0")
	require.NoError(t, err)
	assert.Equal(t, out, again)

	_, err = run("print", "--rows", "0", "--cols", "6", "--seed", "9")
	assert.ErrorIs(t, err, maze.ErrInvalidDimension)
}
