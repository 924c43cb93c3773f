package logger

import (
	"io"
	"strings"
	"time"
)

// Fixed timestamp layouts. Crash file names reuse dateLayout, so changing it
// changes the on-disk naming contract.
const (
	dateLayout = "01-02-2006"
	timeLayout = "3:04PM"
)

// horizontalRule is the 80-dash separator emitted by HorizontalLine.
const horizontalRule = "--------------------------------------------------------------------------------"

// timestamp renders a full date-and-clock stamp for warning and fatal blocks.
func timestamp(t time.Time) string {
	return t.Format(dateLayout) + " " + t.Format(timeLayout)
}

// printBlock assembles the timestamped message block shared by Warning and
// Severe: a blank line, the timestamp, the level line, and a trailing blank
// line, written in one piece to the console and transcript.
func (l *Logger) printBlock(w io.Writer, level, message string) {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(timestamp(time.Now()))
	b.WriteString("\n")
	b.WriteString(level)
	b.WriteString(l.moduleTag())
	b.WriteString(": ")
	b.WriteString(message)
	b.WriteString("\n\n")
	l.print(w, b.String())
}

// printTrace writes the error description followed by one tab-indented line
// per stack frame and a trailing blank line.
func (l *Logger) printTrace(w io.Writer, err error) {
	var b strings.Builder
	b.WriteString(err.Error())
	b.WriteString("\n")
	for _, frame := range frames(err) {
		b.WriteString("\t")
		b.WriteString(frame)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	l.print(w, b.String())
}
