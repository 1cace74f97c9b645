// Package display formats user-facing command output: report styling and
// warning blocks. Styles only emit ANSI codes when writing to a terminal.
package display
