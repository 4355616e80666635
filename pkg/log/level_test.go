package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Equal(t, Debug, Parse("debug"))
	assert.Equal(t, Debug, Parse("DEBUG"))
	assert.Equal(t, Warn, Parse("warn"))
	assert.Equal(t, Error, Parse("error"))
	assert.Equal(t, Fatal, Parse("fatal"))

	// Unknown levels fall back to info
	assert.Equal(t, Info, Parse(""))
	assert.Equal(t, Info, Parse("verbose"))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", Debug.String())
	assert.Equal(t, "INFO", Info.String())
	assert.Equal(t, "WARN", Warn.String())
	assert.Equal(t, "ERROR", Error.String())
	assert.Equal(t, "FATAL", Fatal.String())
}
