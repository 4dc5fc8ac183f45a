// Released under an MIT license. See LICENSE.

package script

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/hsnb/internal/type/outcome"
)

func open(t *testing.T) *T {
	t.Helper()

	s := New(Config{})
	require.NoError(t, s.Open())

	t.Cleanup(func() {
		require.NoError(t, s.Close())
	})

	return s
}

// shown evaluates text and returns the rendered value.
func shown(t *testing.T, s *T, text string) string {
	t.Helper()

	o := s.Evaluate(text, &bytes.Buffer{})
	require.Equal(t, outcome.Value, o.Kind(), "%q: %v", text, o.Err())
	require.Equal(t, outcome.Immediate, o.Form(), "%q", text)

	return o.Value().String()
}

// printed evaluates text, forces the resulting action and returns its output.
func printed(t *testing.T, s *T, text string) string {
	t.Helper()

	var b bytes.Buffer

	o := s.Evaluate(text, &b)
	require.Equal(t, outcome.Value, o.Kind(), "%q: %v", text, o.Err())
	require.Equal(t, outcome.Deferred, o.Form(), "%q", text)
	require.NoError(t, o.Force())

	return b.String()
}

func define(t *testing.T, s *T, text string) {
	t.Helper()

	o := s.Evaluate(text, &bytes.Buffer{})
	require.Equal(t, outcome.Empty, o.Kind(), "%q: %v", text, o.Err())
}

func TestValues(t *testing.T) {
	s := open(t)

	cases := []struct {
		text string
		want string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"7 / 2", "3.5"},
		{"2.0 * 3", "6.0"},
		{"7 `div` 2", "3"},
		{"(-7) `div` 2", "-4"},
		{"(-7) `mod` 2", "1"},
		{"(-7) `rem` 2", "-1"},
		{"2 ^ 10", "1024"},
		{"'a'", "a"},
		{"show 'a'", "'a'"},
		{`show "a\tb"`, `"a\tb"`},
		{"True && not False", "True"},
		{"()", "()"},
		{"(1, \"two\")", `(1, "two")`},
		{"Just (-1)", "Just (-1)"},
		{"Just (Just 1)", "Just (Just 1)"},
		{"[]", "[]"},
		{"[1, 2, 3]", "[1, 2, 3]"},
		{"['a'..'e']", `['a', 'b', 'c', 'd', 'e']`},
		{"[1, 3..9]", "[1, 3, 5, 7, 9]"},
		{"[10, 8..1]", "[10, 8, 6, 4, 2]"},
		{"take 3 [1..]", "[1, 2, 3]"},
		{"compare 1 2", "LT"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, shown(t, s, c.text), "%q", c.text)
	}
}

func TestPrelude(t *testing.T) {
	s := open(t)

	cases := []struct {
		text string
		want string
	}{
		{"map (*2) [1, 2, 3]", "[2, 4, 6]"},
		{"filter even [1..10]", "[2, 4, 6, 8, 10]"},
		{"foldr (:) [] [1, 2]", "[1, 2]"},
		{"foldl (-) 10 [1, 2]", "7"},
		{"sum [1..100]", "5050"},
		{"product [1..5]", "120"},
		{"length \"hello\"", "5"},
		{"head [1, 2]", "1"},
		{"tail [1, 2]", "[2]"},
		{"last [1, 2, 3]", "3"},
		{"init [1, 2, 3]", "[1, 2]"},
		{"null []", "True"},
		{"reverse [1, 2, 3]", "[3, 2, 1]"},
		{"drop 2 [1, 2, 3]", "[3]"},
		{"takeWhile (< 3) [1..]", "[1, 2]"},
		{"dropWhile (< 3) [1..5]", "[3, 4, 5]"},
		{"elem 3 [1, 2, 3]", "True"},
		{"notElem 3 [1, 2, 3]", "False"},
		{"zip [1, 2] \"ab\"", "[(1, 'a'), (2, 'b')]"},
		{"zipWith (+) [1, 2] [10, 20]", "[11, 22]"},
		{"concat [[1], [2, 3]]", "[1, 2, 3]"},
		{"concatMap (replicate 2) [1, 2]", "[1, 1, 2, 2]"},
		{"take 3 (iterate (*2) 1)", "[1, 2, 4]"},
		{"take 2 (repeat 'x')", "['x', 'x']"},
		{"take 5 (cycle [1, 2])", "[1, 2, 1, 2, 1]"},
		{"and [True, False]", "False"},
		{"or [True, False]", "True"},
		{"any odd [2, 4]", "False"},
		{"all even [2, 4]", "True"},
		{"maximum [3, 1, 2]", "3"},
		{"minimum [3, 1, 2]", "1"},
		{"lookup 2 [(1, 'a'), (2, 'b')]", "Just 'b'"},
		{"lookup 3 [(1, 'a')]", "Nothing"},
		{"splitAt 1 [1, 2, 3]", "([1], [2, 3])"},
		{"span even [2, 4, 5, 6]", "([2, 4], [5, 6])"},
		{"words \"a  b c\"", `["a", "b", "c"]`},
		{"unwords [\"a\", \"b\"]", "a b"},
		{"lines \"a\\nb\\n\"", `["a", "b"]`},
		{"fst (1, 2) + snd (1, 2)", "3"},
		{"maybe 0 (+1) (Just 1)", "2"},
		{"fromMaybe 0 Nothing", "0"},
		{"(show . (+1)) 1", "2"},
		{"negate 3", "-3"},
		{"abs (-3)", "3"},
		{"signum (-3)", "-1"},
		{"gcd 12 18", "6"},
		{"min 1 2 + max 1 2", "3"},
		{"fromIntegral 3 / 2", "1.5"},
		{"flip (-) 1 3", "2"},
		{"const 1 undefined", "1"},
		{"id $ 1 + 1", "2"},
		{"sort [3, 1, 2]", "[1, 2, 3]"},
		{"nub [1, 1, 2]", "[1, 2]"},
		{"map toUpper \"abc\"", "['A', 'B', 'C']"},
		{"packed (map toUpper \"abc\")", "ABC"},
		{"ord 'a'", "97"},
		{"chr 98", "b"},
		{"\"ab\" ++ \"cd\"", "abcd"},
		{"[1, 2] !! 1", "2"},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, shown(t, s, c.text), "%q", c.text)
	}
}

func TestDefinitions(t *testing.T) {
	s := open(t)

	define(t, s, "fact 0 = 1\nfact n = n * fact (n - 1)")
	assert.Equal(t, "120", shown(t, s, "fact 5"))

	define(t, s, `
classify n
  | n < 0 = "negative"
  | n == 0 = "zero"
  | otherwise = "positive"`)
	assert.Equal(t, "zero", shown(t, s, "classify 0"))
	assert.Equal(t, "positive", shown(t, s, "classify 3"))

	define(t, s, `
hyp a b = sqrt (sq a + sq b)
  where
    sq x = x * x`)
	assert.Equal(t, "5.0", shown(t, s, "hyp 3 4"))

	define(t, s, "len [] = 0\nlen (_:xs) = 1 + len xs")
	assert.Equal(t, "3", shown(t, s, "len \"abc\""))

	define(t, s, "firsts all@(x:_) = (x, all)")
	assert.Equal(t, "(1, [1, 2])", shown(t, s, "firsts [1, 2]"))

	define(t, s, "x |> f = f x")
	assert.Equal(t, "4", shown(t, s, "3 |> (+1)"))

	assert.Equal(t, "[1, 1, 2, 3, 5, 8]", shown(t, s, "fibs = 1 : 1 : zipWith (+) fibs (tail fibs)\ntake 6 fibs"))
}

func TestExpressions(t *testing.T) {
	s := open(t)

	cases := []struct {
		text string
		want string
	}{
		{"(\\x y -> x - y) 5 3", "2"},
		{"let y = 2 in y * y", "4"},
		{"if 1 > 2 then \"yes\" else \"no\"", "no"},
		{"case Just 3 of\n  Just n -> n\n  Nothing -> 0", "3"},
		{"case [1, 2] of\n  [a, b] -> a + b\n  _ -> 0", "3"},
		{"(subtract 1) 3", "2"},
		{"(`div` 2) 9", "4"},
		{"(10 -) 3", "7"},
		{"[(x, y) | x <- [1..3], y <- \"ab\", odd x]", "[(1, 'a'), (1, 'b'), (3, 'a'), (3, 'b')]"},
		{"[y | x <- [1..3], let y = x * 10]", "[10, 20, 30]"},
		{"[x | Just x <- [Just 1, Nothing, Just 3]]", "[1, 3]"},
	}

	define(t, s, "subtract x y = y - x")

	for _, c := range cases {
		assert.Equal(t, c.want, shown(t, s, c.text), "%q", c.text)
	}
}

func TestDo(t *testing.T) {
	s := open(t)

	assert.Equal(t, "12\n3\n", printed(t, s, "do\nprint 1\nprintln 2\nputStrLn \"3\""))
	assert.Equal(t, "1", printed(t, s, "print 1"))
	assert.Equal(t, "6\n", printed(t, s, "do\n  let x = 2\n  y <- return 3\n  println (x * y)"))
	assert.Equal(t, "a\nb\n", printed(t, s, "mapM_ putStrLn [\"a\", \"b\"]"))
	assert.Equal(t, "1\n2\n", printed(t, s, "forM_ [1, 2] println"))
	assert.Equal(t, "yes\n", printed(t, s, "when True (putStrLn \"yes\") >> unless True (putStrLn \"no\")"))
	assert.Equal(t, "3\n", printed(t, s, "return 3 >>= println"))
	assert.Equal(t, "ab", printed(t, s, "sequence_ [putStr \"a\", putStr \"b\"]"))
}

func TestStatementsRunInOrder(t *testing.T) {
	s := open(t)

	var b bytes.Buffer

	o := s.Evaluate("putStr \"a\"\nputStr \"b\"\n1 + 1", &b)
	require.Equal(t, outcome.Value, o.Kind(), "%v", o.Err())

	assert.Equal(t, "2", o.Value().String())
	assert.Equal(t, "ab", b.String())
}

func TestRedefinition(t *testing.T) {
	s := open(t)

	define(t, s, "my_func x y = x * y")
	assert.Equal(t, "14", shown(t, s, "my_func 2 7"))

	define(t, s, "my_func :: Int -> Int -> Int\nmy_func x y = x + y")
	assert.Equal(t, "9", shown(t, s, "my_func 4 5"))
}

func TestModules(t *testing.T) {
	s := open(t)

	define(t, s, "module test.MyModule where\nhello = 1")

	o := s.Evaluate("hello", &bytes.Buffer{})
	require.Equal(t, outcome.Failure, o.Kind())

	define(t, s, "import test.MyModule")
	assert.Equal(t, "1", shown(t, s, "hello"))

	define(t, s, "import Data.List\nimport Data.Char")

	o = s.Evaluate("import Missing", &bytes.Buffer{})
	require.Equal(t, outcome.Failure, o.Kind())

	var w *outcome.WrappedError
	require.True(t, errors.As(o.Err(), &w))
	assert.Contains(t, w.Err.Error(), "module Missing not found")
}

func TestFailures(t *testing.T) {
	s := open(t)

	cases := []struct {
		text    string
		wrapped bool
		want    string
	}{
		{"1 = 2", true, "syntax error"},
		{"data T = A", true, "'data' declarations are not supported"},
		{"f x = y", true, "can't resolve 'y'"},
		{"Foo 1", true, "unknown constructor 'Foo'"},
		{"head []", false, "head: empty list"},
		{"1 `div` 0", false, "divide by zero"},
		{"undefined", false, "Prelude.undefined"},
		{"1 + True", false, "expected a number, found Bool"},
		{"let x = x + 1 in x", false, "<<loop>>"},
		{"g n = g (n + 1) + 1\ng 0", false, "stack overflow"},
	}

	for _, c := range cases {
		o := s.Evaluate(c.text, &bytes.Buffer{})
		require.Equal(t, outcome.Failure, o.Kind(), "%q", c.text)

		var w *outcome.WrappedError

		assert.Equal(t, c.wrapped, errors.As(o.Err(), &w), "%q", c.text)
		assert.Contains(t, o.Err().Error(), c.want, "%q", c.text)
	}

	assert.Equal(t, "2", shown(t, s, "1 + 1"))
}

func TestForceFailure(t *testing.T) {
	s := open(t)

	o := s.Evaluate("putStrLn (error \"bad\")", &bytes.Buffer{})
	require.Equal(t, outcome.Value, o.Kind())
	require.Equal(t, outcome.Deferred, o.Form())

	err := o.Force()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
}

func TestClosed(t *testing.T) {
	s := New(Config{})

	o := s.Evaluate("1", &bytes.Buffer{})
	require.Equal(t, outcome.Failure, o.Kind())
	assert.ErrorIs(t, o.Err(), ErrClosed)
}

func TestParseCache(t *testing.T) {
	s := open(t)

	assert.Equal(t, "2", shown(t, s, "1 + 1"))
	assert.Equal(t, 1, s.cache.Len())
	assert.Equal(t, "2", shown(t, s, "1 + 1"))
	assert.Equal(t, 1, s.cache.Len())
}

func TestNames(t *testing.T) {
	s := open(t)

	define(t, s, "zzz = 1")

	assert.Contains(t, s.Names(), "zzz")
}
