package quick

import "os"

// SetModule sets or clears (empty string) the module label on the shared
// Logger. The label persists until cleared by the caller.
func SetModule(name string) {
	get().SetModule(name)
}

// Info writes a low-priority message through the shared Logger.
func Info(message string) {
	get().Info(message)
}

// Warning writes a timestamped warning block through the shared Logger,
// with err's description and stack trace when err is non-nil.
func Warning(message string, err error) {
	get().Warning(message, err)
}

// Severe writes a timestamped fatal block through the shared Logger,
// persists the transcript to a crash file, and terminates the process with
// a non-zero status. It does not return.
func Severe(message string, err error) {
	get().Severe(message, err)
	os.Exit(1)
}

// HorizontalLine writes an 80-dash separator through the shared Logger.
func HorizontalLine() {
	get().HorizontalLine()
}

// NewLine writes a blank line through the shared Logger.
func NewLine() {
	get().NewLine()
}
