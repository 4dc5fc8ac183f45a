// Released under an MIT license. See LICENSE.

package outcome

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type text string

func (t text) String() string {
	return string(t)
}

func TestNone(t *testing.T) {
	o := None()

	assert.Equal(t, Empty, o.Kind())
	assert.NoError(t, o.Err())
	assert.NoError(t, o.Force())
	assert.Equal(t, "Empty", o.Kind().String())
}

func TestReady(t *testing.T) {
	o := Ready(text("14"))

	assert.Equal(t, Value, o.Kind())
	assert.Equal(t, Immediate, o.Form())
	assert.Equal(t, "14", o.Value().String())
	assert.NoError(t, o.Force())
}

func TestLater(t *testing.T) {
	forced := 0
	o := Later(func() error {
		forced++

		return nil
	})

	assert.Equal(t, Value, o.Kind())
	assert.Equal(t, Deferred, o.Form())
	require.NoError(t, o.Force())
	assert.Equal(t, 1, forced)
}

func TestFailed(t *testing.T) {
	inner := errors.New("syntax error")
	o := Failed(Wrap(inner))

	assert.Equal(t, Failure, o.Kind())
	assert.Equal(t, "Failure", o.Kind().String())
	assert.Equal(t, "evaluation failed: syntax error", o.Err().Error())
	assert.ErrorIs(t, o.Err(), inner)

	var w *WrappedError
	require.ErrorAs(t, o.Err(), &w)
	assert.Equal(t, inner, w.Err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Value", Value.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
