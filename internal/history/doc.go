// Package history journals render runs in a small SQLite database so the
// "history" command can show what was rendered, from which folder, and how
// each run ended.
//
// Recording is best effort: callers log a failed write and carry on.
package history
