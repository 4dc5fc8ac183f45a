// Released under an MIT license. See LICENSE.

package ui

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/hsnb/internal/engine"
	"github.com/michaelmacinnis/hsnb/internal/script"
	"github.com/michaelmacinnis/hsnb/internal/system/cache"
	"github.com/michaelmacinnis/hsnb/internal/type/result"
)

type canned map[string]*result.T

func (c canned) Interpret(text string, out io.Writer) *result.T {
	if r, ok := c[text]; ok {
		return r
	}

	io.WriteString(out, "out:"+text+"\n")

	return result.Empty()
}

func printer() (*Printer, *bytes.Buffer, *bytes.Buffer) {
	var out, err bytes.Buffer

	return NewPrinter(&out, &err, false), &out, &err
}

func TestPrint(t *testing.T) {
	p, out, errs := printer()

	p.Print(result.Ok("14"))
	p.Print(result.Empty())
	p.Print(result.Failed("divide by zero"))

	assert.Equal(t, "%text 14\n", out.String())
	assert.Equal(t, "divide by zero\n", errs.String())
}

func TestBatchContinuesAfterFailure(t *testing.T) {
	p, out, errs := printer()

	i := canned{
		"bad":  result.Failed("oops"),
		"good": result.Ok("1"),
	}

	err := Batch(i, "nb.hs", strings.NewReader("%hs\nbad\n%hs\ngood\n%hs\nbad\n"), p)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	require.Len(t, merr.Errors, 2)

	assert.Equal(t, "nb.hs:2: oops", merr.Errors[0].Error())
	assert.Equal(t, "nb.hs:6: oops", merr.Errors[1].Error())

	assert.Equal(t, "%text 1\n", out.String())
	assert.Equal(t, "oops\noops\n", errs.String())
}

func TestBatchNotebook(t *testing.T) {
	e := engine.New(script.New(script.Config{}))
	require.NoError(t, e.Open())

	defer e.Close()

	p, out, _ := printer()

	nb := strings.Join([]string{
		"%hs",
		"my_func x y = x * y",
		"%hs",
		"my_func 2 7",
		"%hs",
		"do",
		"  print 1",
		"  putStrLn \"!\"",
	}, "\n")

	require.NoError(t, Batch(e, "nb.hs", strings.NewReader(nb), p))
	assert.Equal(t, "%text 14\n1!\n", out.String())
}

func TestCommand(t *testing.T) {
	p, out, _ := printer()

	require.NoError(t, Command(canned{"x": result.Ok("1")}, "x", p))
	assert.Equal(t, "%text 1\n", out.String())

	err := Command(canned{"y": result.Failed("nope")}, "y", p)
	require.EqualError(t, err, "nope")
}

func TestSnippet(t *testing.T) {
	s := &snippet{}

	text, quit := s.add("1 + 1")
	assert.Equal(t, "1 + 1", text)
	assert.False(t, quit)

	for _, line := range []string{":{", "f 0 = 1", "f n = n * f (n - 1)"} {
		text, _ = s.add(line)
		assert.Empty(t, text)
	}

	assert.True(t, s.open)

	text, _ = s.add(" :} ")
	assert.Equal(t, "f 0 = 1\nf n = n * f (n - 1)", text)
	assert.False(t, s.open)

	_, quit = s.add(":quit")
	assert.True(t, quit)
}

func TestComplete(t *testing.T) {
	cache.Populate([]string{"my_func", "my_other", "map"})

	head, cs, tail := complete("show (my_", 9)
	assert.Equal(t, "show (", head)
	assert.Equal(t, []string{"my_func", "my_other"}, cs)
	assert.Equal(t, "", tail)

	head, cs, tail = complete("ma xs", 2)
	assert.Equal(t, "", head)
	assert.Equal(t, []string{"map"}, cs)
	assert.Equal(t, " xs", tail)

	_, cs, _ = complete("1 + ", 4)
	assert.Empty(t, cs)
}
