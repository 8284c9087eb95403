package logger

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	origLevel, origNow := minLevel, now
	now = func() time.Time { return time.Date(2024, time.May, 1, 9, 5, 3, 0, time.UTC) }
	t.Cleanup(func() {
		log.SetOutput(os.Stdout)
		minLevel, now = origLevel, origNow
	})
	return &buf
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", Debug.String())
	assert.Equal(t, "INFO", Info.String())
	assert.Equal(t, "WARN", Warn.String())
	assert.Equal(t, "ERROR", Error.String())
	assert.Equal(t, "LEVEL(9)", Level(9).String())
	assert.Less(t, Debug, Info)
	assert.Less(t, Warn, Error)
}

func TestSetLevel(t *testing.T) {
	capture(t)
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", Debug},
		{"info", Info},
		{"warn", Warn},
		{"error", Error},
		{"loud", Info},
		{"", Info},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			SetLevel(tt.input)
			assert.Equal(t, tt.want, minLevel)
		})
	}
}

func TestLog_Format(t *testing.T) {
	buf := capture(t)

	Infof("panel %s %dx%d", "round", 240, 240)

	assert.Equal(t, "2024-05-01T09:05:03Z [INFO] panel round 240x240\n", buf.String())
}

func TestLog_FiltersBelowLevel(t *testing.T) {
	buf := capture(t)
	SetLevel("warn")

	Debugf("hidden")
	Infof("hidden")
	Warnf("shown %d", 1)
	Errorf("shown %d", 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[WARN] shown 1")
	assert.Contains(t, lines[1], "[ERROR] shown 2")
}
