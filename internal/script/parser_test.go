package script

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/tiler/internal/domain/entity"
)

func TestParse(t *testing.T) {
	src := `
# three tiles
add Editor
ADD Build Log
split Build Log vertical
ratio Editor 0.3

focus Editor
next
prev
toggle
close New Tile
`
	cmds, err := Parse(strings.NewReader(src))
	require.NoError(t, err)

	want := []Command{
		{Line: 3, Op: OpAdd, Title: "Editor"},
		{Line: 4, Op: OpAdd, Title: "Build Log"},
		{Line: 5, Op: OpSplit, Title: "Build Log", Direction: entity.DirectionVertical},
		{Line: 6, Op: OpRatio, Title: "Editor", Ratio: 0.3},
		{Line: 8, Op: OpFocus, Title: "Editor"},
		{Line: 9, Op: OpNext},
		{Line: 10, Op: OpPrev},
		{Line: 11, Op: OpToggle},
		{Line: 12, Op: OpClose, Title: "New Tile"},
	}
	assert.Equal(t, want, cmds)
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		wantMsg string
	}{
		{name: "unknown", text: "resize A 3", wantMsg: "unknown command"},
		{name: "add without title", text: "add", wantMsg: "add needs a title"},
		{name: "split without direction", text: "split A", wantMsg: "split needs a title and a direction"},
		{name: "bad direction", text: "split A diagonal", wantMsg: "direction must be"},
		{name: "bad ratio", text: "ratio A half", wantMsg: "not a number"},
		{name: "next with args", text: "next A", wantMsg: "takes no arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseLine(7, tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSyntax)

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, 7, perr.Line)
			assert.Contains(t, perr.Error(), tt.wantMsg)
		})
	}
}

func TestParse_ReportsLineNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("add A\n\n# ok\nsplit A sideways\n"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 4")
}

func TestParseDirection_ShortForms(t *testing.T) {
	dir, ok := parseDirection("H")
	assert.True(t, ok)
	assert.Equal(t, entity.DirectionHorizontal, dir)

	dir, ok = parseDirection("v")
	assert.True(t, ok)
	assert.Equal(t, entity.DirectionVertical, dir)
}

func TestVerbs_EveryUsageParses(t *testing.T) {
	samples := map[string]string{
		"<title>":         "Editor",
		"<title> <h|v>":   "Editor h",
		"<title> <value>": "Editor 0.3",
	}

	for _, v := range Verbs() {
		t.Run(string(v.Op), func(t *testing.T) {
			line := string(v.Op)
			if v.Args != "" {
				args, ok := samples[v.Args]
				require.True(t, ok, "no sample for %q", v.Args)
				line += " " + args
			}
			cmd, err := ParseLine(1, line)
			require.NoError(t, err)
			assert.Equal(t, v.Op, cmd.Op)
			assert.True(t, strings.HasPrefix(v.Usage(), string(v.Op)))
		})
	}

	_, err := ParseLine(1, "resize A 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add, close, focus, split, ratio, next, prev, toggle")
}
