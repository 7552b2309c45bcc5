// Package logging provides structured logging for tuiprompt.
//
// This package wraps a zap logger with convenience functions. Logging is
// silent by default so that prompts never print anything the caller did
// not ask for.
//
// # Log Levels
//
//   - Debug: Every keypress delivered to a prompt
//   - Info: Prompt outcomes (confirmed, escaped, interrupted, failed)
//   - Warn: Non-fatal issues (unreadable config, ignored settings)
//   - Error: Fatal issues
//
// # Configuration
//
// Initialize logging at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// TUIPROMPT_LOG_LEVEL selects the level. Output goes to stderr, or to the
// file named by TUIPROMPT_LOG_FILE. Standard output is reserved for
// prompt results.
//
// # Secure Input
//
// LogKey masks printable keys of secure prompts:
//
//	logging.LogKey("password", "a", true, true) // key=<secure>
package logging
