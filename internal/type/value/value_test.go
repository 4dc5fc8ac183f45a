// Released under an MIT license. See LICENSE.

package value

import (
	"bytes"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShow(t *testing.T) {
	cases := []struct {
		v    T
		want string
	}{
		{Bool(true), "True"},
		{Bool(false), "False"},
		{Char('a'), "'a'"},
		{Char('\n'), `'\n'`},
		{Double(1), "1.0"},
		{Double(2.5), "2.5"},
		{Double(1e21), "1.0e+21"},
		{Double(math.Inf(1)), "Infinity"},
		{Double(math.NaN()), "NaN"},
		{Int(-3), "-3"},
		{Str("a\"b"), `"a\"b"`},
		{Unit{}, "()"},
		{Nothing, "Nothing"},
		{Just(Int(-1)), "Just (-1)"},
		{Just(Just(Int(1))), "Just (Just 1)"},
		{Tuple{Int(1), Str("x")}, `(1, "x")`},
		{Nil, "[]"},
		{FromSlice([]T{Int(1), Int(2)}), "[1, 2]"},
		{Return(Unit{}), "<IO>"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, c.v.Show())
	}
}

func TestDisplay(t *testing.T) {
	assert.Equal(t, "text", Display(Str("text")))
	assert.Equal(t, "c", Display(Char('c')))
	assert.Equal(t, "[1]", Display(FromSlice([]T{Int(1)})))
}

func TestUncons(t *testing.T) {
	h, tail, ok := Uncons(Str("ab"))
	require.True(t, ok)
	assert.Equal(t, Char('a'), h)
	assert.Equal(t, Str("b"), tail)

	_, _, ok = Uncons(Str(""))
	assert.False(t, ok)

	_, _, ok = Uncons(Nil)
	assert.False(t, ok)

	assert.Panics(t, func() {
		Uncons(Int(1))
	})
}

func TestToSlice(t *testing.T) {
	vs := ToSlice(FromSlice([]T{Int(1), Int(2), Int(3)}))

	assert.Equal(t, []T{Int(1), Int(2), Int(3)}, vs)
	assert.Equal(t, []T{Char('h'), Char('i')}, ToSlice(Str("hi")))
}

func TestCompare(t *testing.T) {
	cases := []struct {
		a, b T
		want int
	}{
		{Int(1), Int(2), -1},
		{Int(2), Double(1.5), 1},
		{Double(1), Int(1), 0},
		{Char('a'), Char('b'), -1},
		{Bool(false), Bool(true), -1},
		{Str("abc"), Str("abd"), -1},
		{Str("ab"), FromSlice([]T{Char('a'), Char('b')}), 0},
		{FromSlice([]T{Int(1)}), FromSlice([]T{Int(1), Int(2)}), -1},
		{Tuple{Int(1), Int(2)}, Tuple{Int(1), Int(1)}, 1},
		{Nothing, Just(Int(0)), -1},
		{Just(Int(2)), Just(Int(1)), 1},
		{Unit{}, Unit{}, 0},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, Compare(c.a, c.b), "%s %s", c.a.Show(), c.b.Show())
	}

	assert.True(t, Equal(Str(""), Nil))
}

func TestCompareMismatch(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)

		err, ok := r.(*Error)
		require.True(t, ok)
		assert.Equal(t, "cannot compare Int with Bool", err.Error())
	}()

	Compare(Int(1), Bool(true))
}

type lazyInt struct {
	n      int
	forced *int
}

func (l lazyInt) Force() T {
	*l.forced++

	return Int(l.n)
}

func (l lazyInt) Show() string {
	return Force(l).Show()
}

func TestForce(t *testing.T) {
	n := 0

	assert.Equal(t, Int(3), Force(lazyInt{n: 3, forced: &n}))
	assert.Equal(t, 1, n)
	assert.Equal(t, Int(4), Force(Int(4)))
}

func TestAction(t *testing.T) {
	var b bytes.Buffer

	a := &Action{Run: func(w io.Writer) T {
		_, _ = io.WriteString(w, "out")

		return Int(1)
	}}

	assert.Equal(t, Int(1), a.Run(&b))
	assert.Equal(t, "out", b.String())
	assert.Equal(t, Str("x"), Return(Str("x")).Run(&b))
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "Int", TypeName(Int(1)))
	assert.Equal(t, "String", TypeName(Str("")))
	assert.Equal(t, "list", TypeName(Nil))
	assert.Equal(t, "Just", TypeName(Just(Unit{})))
	assert.Equal(t, "IO action", TypeName(Return(Unit{})))
}
