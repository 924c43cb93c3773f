package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"
)

// persist writes the transcript to a uniquely named crash file and returns
// the written path, or the empty string when the write failed. Failures are
// swallowed; the in-memory transcript is left intact either way.
func (l *Logger) persist() string {
	path := crashFilePath(l.directory, l.fileName, time.Now())

	text := l.transcript.String()
	if len(text) > l.maxTranscript {
		cut := l.maxTranscript
		// Never split a multi-byte rune at the cap.
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return ""
	}
	return path
}

// crashFilePath probes for the first free name of the form
// "<base> <MM-DD-YYYY>.txt" in dir, appending " (1)", " (2)", ... until a
// name is available. Repeated fatal reports on the same day therefore
// produce distinct files rather than overwriting earlier ones.
func crashFilePath(dir, base string, now time.Time) string {
	date := now.Format(dateLayout)
	path := filepath.Join(dir, fmt.Sprintf("%s %s.txt", base, date))

	for n := 1; ; n++ {
		if _, err := os.Stat(path); err != nil {
			// The name is free, or stat cannot succeed at all (the
			// directory may not be one); either way the write attempt
			// decides the outcome.
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s %s (%d).txt", base, date, n))
	}
}
