// Package loop drives prompt engines against a terminal.
//
// Run reads keys from a Terminal, feeds them to an Engine and renders
// every intermediate frame until the engine reports a DoneReason. The
// cursor is hidden while a prompt is live and restored on every exit.
//
// Two drivers exist:
//
//   - Run works against any Terminal. Scripted is the in-memory one
//     used by tests and by the --keys flag of the CLI.
//   - RunProgram wraps the engine in a Bubble Tea model and drives it
//     against the real tty.
//
// Both end by calling the Extract function with the DoneReason, which
// builds the caller's return value.
package loop
