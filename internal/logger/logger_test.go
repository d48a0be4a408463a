package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew_ValidLevels(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	levels := []string{"debug", "info", "warn", "error"}

	for _, lvl := range levels {
		t.Run(lvl, func(t *testing.T) {
			log, err := New(lvl)
			assert.NoError(t, err)
			assert.NotNil(t, log)
			assert.Same(t, log, Log)

			assert.NotPanics(t, func() {
				Log.Infow("test log", "level", lvl)
			})
		})
	}
}

func TestNew_InvalidLevel(t *testing.T) {
	originalLog := Log
	defer func() { Log = originalLog }()

	_, err := New("not-a-level")
	assert.Error(t, err)
}

func TestLog_NopBeforeNew(t *testing.T) {
	assert.NotNil(t, Log)
	assert.IsType(t, &zap.SugaredLogger{}, Log)

	assert.NotPanics(t, func() {
		Log.Infow("nop logger test")
	})
}
