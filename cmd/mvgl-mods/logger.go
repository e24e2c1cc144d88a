package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("117"))

var labelStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241"))

var infoStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("252"))

var successStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("42")).
	Bold(true)

var warningStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("214")).
	Bold(true)

var errorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true)

// Dialog boxes for errors and results.
var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	Padding(0, 1)

// paneLogger is the log pane: styled lines on the terminal and, optionally,
// plain level-prefixed lines in a log file. With quiet set the terminal
// output is suppressed so progress bars can own the screen.
type paneLogger struct {
	out   io.Writer
	quiet bool
	file  *log.Logger
	f     *os.File
}

func newPaneLogger(out io.Writer, logPath string, quiet bool) (*paneLogger, error) {
	l := &paneLogger{out: out, quiet: quiet}
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.f = f
		l.file = log.New(f, "", log.LstdFlags)
	}
	return l, nil
}

func (l *paneLogger) Infof(format string, args ...any) {
	l.emit(infoStyle, "INFO", format, args...)
}

func (l *paneLogger) Successf(format string, args ...any) {
	l.emit(successStyle, "INFO", format, args...)
}

func (l *paneLogger) Errorf(format string, args ...any) {
	l.emit(errorStyle, "ERROR", format, args...)
}

func (l *paneLogger) emit(style lipgloss.Style, level, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !l.quiet && l.out != nil {
		fmt.Fprintln(l.out, style.Render(msg))
	}
	if l.file != nil {
		l.file.Printf("%s: %s", level, msg)
	}
}

func (l *paneLogger) close() {
	if l != nil && l.f != nil {
		l.f.Close()
		l.f = nil
		l.file = nil
	}
}
