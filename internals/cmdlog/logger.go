package cmdlog

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/gookit/color"
)

// Logger loggs pretty stuff to the console
type Logger struct {
	emojis    bool
	color     bool
	verbose   bool
	indention int
	out       io.Writer
}

// helper for indention
func (l *Logger) println(a string) {
	fmt.Fprintln(l.out, strings.Repeat(" ", l.indention)+a)
}

func (l *Logger) sprintEmoji(e string) string {
	if l.emojis {
		return e + " "
	}
	return ""
}

// SetVerbose enables Debug output
func (l *Logger) SetVerbose(v bool) {
	l.verbose = v
}

// Verbose returns true if Debug output is enabled
func (l *Logger) Verbose() bool {
	return l.verbose
}

// Headline prints a blue line
func (l *Logger) Headline(s string) {
	fmt.Fprintln(l.out, color.Style{color.FgCyan, color.OpBold}.Sprint(s))
}

// Info prints a "normal" line
func (l *Logger) Info(s string) {
	l.println(s)
}

// Debug prints a gray line, but only in verbose mode
func (l *Logger) Debug(s string) {
	if !l.verbose {
		return
	}
	l.println(color.Gray.Sprint(s))
}

// Warn will print a warning
func (l *Logger) Warn(s string) {
	fmt.Fprintln(l.out, l.sprintEmoji("⚠️ ")+color.Style{color.FgYellow, color.OpBold}.Sprint(s))
}

// Fail will print the given message and then exit 1
func (l *Logger) Fail(s string) {
	fmt.Fprintln(
		l.out,
		l.sprintEmoji("💣")+color.Style{color.FgRed, color.OpBold}.Sprint("Error: ")+color.Style{color.FgWhite, color.OpBold}.Sprint(s),
	)
	os.Exit(1)
}

// New returns a new Logger that writes to stdout
func New() *Logger {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter returns a new Logger that writes to out
func NewWithWriter(out io.Writer) *Logger {
	emojis := runtime.GOOS != "windows"
	colorToggle := true

	// disable color for CI
	if os.Getenv("CI") != "" {
		emojis = false
		colorToggle = false
		color.Disable()
	}
	return &Logger{emojis: emojis, color: colorToggle, out: out}
}
