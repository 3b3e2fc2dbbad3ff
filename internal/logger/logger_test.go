package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestSetLevel(t *testing.T) {
	require.NoError(t, Init("test"))
	t.Cleanup(func() { _ = SetLevel("info") })

	require.NoError(t, SetLevel("debug"))
	assert.Equal(t, zapcore.DebugLevel, Level())

	require.NoError(t, SetLevel("WARN"))
	assert.Equal(t, zapcore.WarnLevel, Level())

	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, zapcore.WarnLevel, Level())
}
