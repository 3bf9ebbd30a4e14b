package notify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/fivetwenty-io/gameadmin/internal/constants"
	"github.com/fivetwenty-io/gameadmin/pkg/admin"
)

// TerminalSink prints toasts as single lines, colored by kind.
type TerminalSink struct {
	writer  io.Writer
	success *color.Color
	danger  *color.Color
}

// NewTerminalSink creates a sink writing to writer.
func NewTerminalSink(writer io.Writer, noColor bool) *TerminalSink {
	success := color.New(color.FgGreen, color.Bold)
	danger := color.New(color.FgRed, color.Bold)

	if noColor {
		success.DisableColor()
		danger.DisableColor()
	} else {
		success.EnableColor()
		danger.EnableColor()
	}

	return &TerminalSink{
		writer:  writer,
		success: success,
		danger:  danger,
	}
}

// Send implements Sink.
func (s *TerminalSink) Send(_ context.Context, toast admin.Toast) error {
	marker, style := constants.CheckMarkSymbol, s.success
	if toast.Kind == admin.ToastDanger {
		marker, style = constants.CrossMarkSymbol, s.danger
	}

	var line strings.Builder

	line.WriteString(style.Sprint(marker))

	if toast.Title != "" {
		line.WriteString(" ")
		line.WriteString(style.Sprint(toast.Title))
	}

	if toast.Message != "" {
		line.WriteString(" ")
		line.WriteString(toast.Message)
	}

	if toast.ActionText != "" && toast.ActionURL != "" {
		fmt.Fprintf(&line, " [%s: %s]", toast.ActionText, toast.ActionURL)
	}

	_, err := fmt.Fprintln(s.writer, line.String())
	if err != nil {
		return fmt.Errorf("writing toast: %w", err)
	}

	return nil
}
