// Released under an MIT license. See LICENSE.

package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete(t *testing.T) {
	Populate([]string{"map", "mapM_", "max", "++", "(,)", "my_func", "map"})

	assert.Equal(t, []string{"map", "mapM_"}, Complete("map"))
	assert.Equal(t, []string{"map", "mapM_", "max"}, Complete("ma"))
	assert.Equal(t, []string{"my_func"}, Complete("my"))
	assert.Empty(t, Complete("+"))
	assert.Empty(t, Complete("zzz"))
}
