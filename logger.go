package logger

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Logger accumulates a plain-text transcript of everything it prints.
// Info, Warning, and the structural helpers write to the console and the
// transcript; Severe additionally persists the transcript to a crash file.
// A Logger is not safe for concurrent use.
type Logger struct {
	out    io.Writer
	errOut io.Writer

	label      string
	transcript strings.Builder

	directory     string
	fileName      string
	maxTranscript int
}

// New constructs a Logger from the provided configuration.
// Zero-value fields take their defaults; omitting the config entirely is valid.
// Console output goes to os.Stdout and os.Stderr until redirected with SetOutput.
func New(cfg ...*Config) *Logger {
	l := &Logger{
		out:    os.Stdout,
		errOut: os.Stderr,
	}
	l.apply(mergeConfig(cfg...))
	return l
}

// SetOutput redirects console output, primarily for embedding and tests.
// A nil writer keeps the current one.
func (l *Logger) SetOutput(out, errOut io.Writer) {
	if out != nil {
		l.out = out
	}
	if errOut != nil {
		l.errOut = errOut
	}
}

// SetModule sets the module label rendered after the level word in every
// subsequent message, or clears it when name is empty. The label persists
// until cleared; resetting it is the caller's obligation.
func (l *Logger) SetModule(name string) {
	l.label = name
}

// Module returns the current module label, or the empty string if none is set.
func (l *Logger) Module() string {
	return l.label
}

// WithModule runs fn with the module label set to name, restoring the
// previous label afterwards. It exists for callers that would otherwise
// forget the reset SetModule requires.
func (l *Logger) WithModule(name string, fn func()) {
	prev := l.label
	l.label = name
	fn()
	l.label = prev
}

// HorizontalLine writes a fixed 80-dash separator to the console and
// transcript. Included to encourage structure in longer transcripts.
func (l *Logger) HorizontalLine() {
	l.print(l.out, horizontalRule+"\n")
}

// NewLine writes a blank line to the console and transcript.
func (l *Logger) NewLine() {
	l.print(l.out, "\n")
}

// Info writes a low-priority message to standard output and the transcript.
// Typically used to record significant state changes.
func (l *Logger) Info(message string) {
	l.print(l.out, "INFO"+l.moduleTag()+": "+message+"\n")
}

// Warning writes a timestamped medium-priority block to standard output and
// the transcript, indicating the application may have entered an invalid
// state that has not (yet) caused a crash. If err is non-nil its description
// and stack trace follow the block; a nil err emits no trace section.
func (l *Logger) Warning(message string, err error) {
	l.printBlock(l.out, "WARNING", message)
	if err != nil {
		l.printTrace(l.out, err)
	}
}

// Severe writes a timestamped fatal block to standard error and the
// transcript, then persists the transcript to a crash file in the configured
// directory and returns its path. A nil err is replaced with a synthesized
// error so a stack trace is always present. The returned path is empty when
// the write failed; no error is surfaced either way.
//
// Severe does not terminate the process; the caller owns that decision.
// quick.Severe preserves the exit-on-fatal behavior for programs that want it.
func (l *Logger) Severe(message string, err error) string {
	l.printBlock(l.errOut, "ERROR", message)
	if err == nil {
		err = errors.New("severe condition reported without a cause")
	}
	l.printTrace(l.errOut, err)
	return l.persist()
}

// Transcript returns the accumulated text so far. The transcript only grows
// during a run; truncation to the configured cap happens at persist time.
func (l *Logger) Transcript() string {
	return l.transcript.String()
}

// moduleTag renders the label as it appears in messages, " (name)" or "".
func (l *Logger) moduleTag() string {
	if l.label == "" {
		return ""
	}
	return " (" + l.label + ")"
}

// print sends text to the console writer and mirrors it into the transcript.
// Console write errors are ignored; logging is fire-and-forget.
func (l *Logger) print(w io.Writer, text string) {
	io.WriteString(w, text)
	l.transcript.WriteString(text)
}
