// Package script parses and runs line-oriented tiling scripts.
//
// One command per line; blank lines and lines starting with '#' are skipped:
//
//	add Editor
//	split Editor h
//	ratio Editor 0.3
//	focus New Tile
//	next
//	prev
//	toggle
//	close Editor
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bnema/tiler/internal/domain/entity"
)

// Op names a script command.
type Op string

const (
	OpAdd    Op = "add"
	OpClose  Op = "close"
	OpFocus  Op = "focus"
	OpSplit  Op = "split"
	OpRatio  Op = "ratio"
	OpNext   Op = "next"
	OpPrev   Op = "prev"
	OpToggle Op = "toggle"
)

// Verb documents one script command.
type Verb struct {
	Op      Op
	Args    string
	Summary string
}

// Verbs lists the script commands in reference order.
func Verbs() []Verb {
	return []Verb{
		{Op: OpAdd, Args: "<title>", Summary: "Add a tile next to the focused one and focus it."},
		{Op: OpClose, Args: "<title>", Summary: "Close the tile; its sibling takes the parent's place."},
		{Op: OpFocus, Args: "<title>", Summary: "Focus the tile."},
		{Op: OpSplit, Args: "<title> <h|v>", Summary: "Split the tile horizontally or vertically; the new tile takes focus."},
		{Op: OpRatio, Args: "<title> <value>", Summary: "Set the ratio of the container holding the tile, clamped to 0.1-0.9."},
		{Op: OpNext, Summary: "Focus the next tile in creation order."},
		{Op: OpPrev, Summary: "Focus the previous tile in creation order."},
		{Op: OpToggle, Summary: "Switch between tiling and floating layout."},
	}
}

// Usage returns the verb and its arguments, e.g. "split <title> <h|v>".
func (v Verb) Usage() string {
	if v.Args == "" {
		return string(v.Op)
	}
	return string(v.Op) + " " + v.Args
}

func verbNames() string {
	verbs := Verbs()
	names := make([]string, 0, len(verbs))
	for _, v := range verbs {
		names = append(names, string(v.Op))
	}
	return strings.Join(names, ", ")
}

// ErrSyntax is wrapped by every *ParseError.
var ErrSyntax = errors.New("script syntax error")

// ParseError reports a malformed line.
type ParseError struct {
	Line int
	Text string
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Msg, e.Text)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// Command is one parsed script line.
type Command struct {
	Line      int
	Op        Op
	Title     string
	Direction entity.Direction
	Ratio     float64
}

func (c Command) String() string {
	switch c.Op {
	case OpAdd, OpClose, OpFocus:
		return fmt.Sprintf("%s %s", c.Op, c.Title)
	case OpSplit:
		return fmt.Sprintf("%s %s %s", c.Op, c.Title, c.Direction)
	case OpRatio:
		return fmt.Sprintf("%s %s %g", c.Op, c.Title, c.Ratio)
	default:
		return string(c.Op)
	}
}

// Parse reads a whole script. The first malformed line aborts parsing.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		cmd, err := ParseLine(line, text)
		if err != nil {
			return nil, err
		}
		cmds = append(cmds, cmd)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return cmds, nil
}

// ParseLine parses a single non-empty command line.
func ParseLine(line int, text string) (Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Command{}, &ParseError{Line: line, Text: text, Msg: "empty command"}
	}
	fail := func(msg string) (Command, error) {
		return Command{}, &ParseError{Line: line, Text: text, Msg: msg}
	}

	cmd := Command{Line: line, Op: Op(strings.ToLower(fields[0]))}
	args := fields[1:]

	switch cmd.Op {
	case OpAdd, OpClose, OpFocus:
		if len(args) == 0 {
			return fail(fmt.Sprintf("%s needs a title", cmd.Op))
		}
		cmd.Title = strings.Join(args, " ")

	case OpSplit:
		if len(args) < 2 {
			return fail("split needs a title and a direction")
		}
		dir, ok := parseDirection(args[len(args)-1])
		if !ok {
			return fail("direction must be h, v, horizontal or vertical")
		}
		cmd.Title = strings.Join(args[:len(args)-1], " ")
		cmd.Direction = dir

	case OpRatio:
		if len(args) < 2 {
			return fail("ratio needs a title and a value")
		}
		ratio, err := strconv.ParseFloat(args[len(args)-1], 64)
		if err != nil {
			return fail("ratio value is not a number")
		}
		cmd.Title = strings.Join(args[:len(args)-1], " ")
		cmd.Ratio = ratio

	case OpNext, OpPrev, OpToggle:
		if len(args) != 0 {
			return fail(fmt.Sprintf("%s takes no arguments", cmd.Op))
		}

	default:
		return fail("unknown command (want one of " + verbNames() + ")")
	}
	return cmd, nil
}

func parseDirection(s string) (entity.Direction, bool) {
	switch strings.ToLower(s) {
	case "h", "horizontal":
		return entity.DirectionHorizontal, true
	case "v", "vertical":
		return entity.DirectionVertical, true
	}
	return "", false
}
