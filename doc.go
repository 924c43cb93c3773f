// Package logger provides a lightweight application logger that mirrors its
// console output into an in-memory transcript and persists the transcript to
// a plain-text crash file when a severe condition is reported.
//
// Features:
//   - Leveled console output (INFO, WARNING, ERROR)
//   - Optional module label identifying the calling subsystem
//   - Error stack traces, captured at the call site when the error carries none
//   - Crash files with collision-free date-based names
//   - Transcript cap to bound crash file size
//   - TOML configuration with live reload
//   - Structural helpers (horizontal line, blank line)
//
// A Logger is not safe for concurrent use. It is designed to be owned by the
// application entry point and driven from a single goroutine; the quick
// subpackage offers a package-level surface over a shared instance for
// programs that want zero setup.
package logger
