// Package logger writes levelled, timestamped lines through the standard log
// package.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"
)

// Level is the severity of a message. Higher values are more severe.
type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < Debug || l > Error {
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
	return levelNames[l]
}

var (
	mu       sync.Mutex
	minLevel = Info
	now      = time.Now
)

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stdout)
}

// SetLevel sets the minimum level printed. Unknown names select info.
func SetLevel(level string) {
	l := Info
	switch level {
	case "debug":
		l = Debug
	case "warn":
		l = Warn
	case "error":
		l = Error
	}
	mu.Lock()
	minLevel = l
	mu.Unlock()
}

// SetOutput redirects log lines.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// Log prints a message as "timestamp [LEVEL] message".
func Log(level Level, format string, v ...interface{}) {
	mu.Lock()
	floor := minLevel
	mu.Unlock()
	if level < floor {
		return
	}
	log.Printf("%s [%s] %s", now().Format(time.RFC3339), level, fmt.Sprintf(format, v...))
}

func Debugf(format string, v ...interface{}) { Log(Debug, format, v...) }

func Infof(format string, v ...interface{}) { Log(Info, format, v...) }

func Warnf(format string, v ...interface{}) { Log(Warn, format, v...) }

func Errorf(format string, v ...interface{}) { Log(Error, format, v...) }

// Fatalf logs at error level and exits with status 1.
func Fatalf(format string, v ...interface{}) {
	Log(Error, format, v...)
	os.Exit(1)
}
