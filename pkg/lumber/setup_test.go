package lumber

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		config   LoggingConfig
		instance int
		wantErr  bool
	}{
		{"zap console", LoggingConfig{EnableConsole: true, ConsoleLevel: Debug}, InstanceZapLogger, false},
		{"logrus console", LoggingConfig{EnableConsole: true, ConsoleLevel: Info}, InstanceLogrusLogger, false},
		{"logrus invalid level", LoggingConfig{ConsoleLevel: "loud"}, InstanceLogrusLogger, true},
		{"unknown instance", LoggingConfig{}, 42, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.config, false, tt.instance)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			logger.Debugf("debug %d", 1)
			logger.WithFields(Fields{"file": "Foo.scala"}).Infof("info")
		})
	}
}

func TestNewLogger_File(t *testing.T) {
	location := filepath.Join(t.TempDir(), "reporter.log")
	for _, instance := range []int{InstanceZapLogger, InstanceLogrusLogger} {
		logger, err := NewLogger(LoggingConfig{
			EnableFile:     true,
			FileJSONFormat: true,
			FileLevel:      Debug,
			FileLocation:   location,
		}, true, instance)
		require.NoError(t, err)
		logger.WithFields(Fields{"instance": instance}).Warnf("written to file")
	}
	assert.FileExists(t, location)
}

func Test_rotatingFile(t *testing.T) {
	sink := rotatingFile(LoggingConfig{FileLocation: "coveralls.log"})
	assert.Equal(t, "coveralls.log", sink.Filename)
	assert.Equal(t, maxFileSizeMB, sink.MaxSize)
	assert.Equal(t, maxFileAgeDay, sink.MaxAge)
	assert.True(t, sink.Compress)
}
