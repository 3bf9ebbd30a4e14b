package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// stderrLogger writes admin.Logger output as "LEVEL msg key=value ..." lines.
type stderrLogger struct {
	writer io.Writer
	mutex  sync.Mutex
	levels map[string]*color.Color
}

func newStderrLogger(writer io.Writer, noColor bool) *stderrLogger {
	levels := map[string]*color.Color{
		"DEBUG": color.New(color.FgCyan),
		"INFO":  color.New(color.FgGreen),
		"WARN":  color.New(color.FgYellow),
		"ERROR": color.New(color.FgRed, color.Bold),
	}

	for _, style := range levels {
		if noColor {
			style.DisableColor()
		} else {
			style.EnableColor()
		}
	}

	return &stderrLogger{writer: writer, levels: levels}
}

func (l *stderrLogger) Debug(msg string, fields map[string]interface{}) {
	l.log("DEBUG", msg, fields)
}

func (l *stderrLogger) Info(msg string, fields map[string]interface{}) {
	l.log("INFO", msg, fields)
}

func (l *stderrLogger) Warn(msg string, fields map[string]interface{}) {
	l.log("WARN", msg, fields)
}

func (l *stderrLogger) Error(msg string, fields map[string]interface{}) {
	l.log("ERROR", msg, fields)
}

func (l *stderrLogger) log(level, msg string, fields map[string]interface{}) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var line strings.Builder

	line.WriteString(l.levels[level].Sprint(level))
	line.WriteString(" ")
	line.WriteString(msg)

	for _, key := range keys {
		fmt.Fprintf(&line, " %s=%v", key, fields[key])
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	_, _ = fmt.Fprintln(l.writer, line.String())
}

var _ admin.Logger = (*stderrLogger)(nil)
