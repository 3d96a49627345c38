package hidkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseActionTypeDefaultsToPress(t *testing.T) {
	assert.Equal(t, Press, ParseActionType(""))
	assert.Equal(t, Press, ParseActionType("PRESS"))
	assert.Equal(t, Down, ParseActionType("down"))
	assert.Equal(t, Up, ParseActionType("Up"))
}

func TestActionTypeString(t *testing.T) {
	assert.Equal(t, "DOWN", Down.String())
	assert.Equal(t, "UP", Up.String())
	assert.Equal(t, "PRESS", Press.String())
	assert.Equal(t, "MOVE", Move.String())
}
