// Released under an MIT license. See LICENSE.

package result

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResults(t *testing.T) {
	cases := []struct {
		r       *T
		code    Code
		message string
		text    string
	}{
		{Empty(), Success, "", ""},
		{Ok("123"), Success, "123", "%text 123"},
		{Failed("syntax error"), Error, "syntax error", "%text syntax error"},
	}

	for _, c := range cases {
		assert.Equal(t, c.code, c.r.Code())
		assert.Equal(t, c.message, c.r.Message())
		assert.Equal(t, c.text, c.r.String())
	}

	assert.Equal(t, "SUCCESS", Success.String())
	assert.Equal(t, "ERROR", Error.String())
}
