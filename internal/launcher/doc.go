// Package launcher checks at startup that the process was started through
// the launcher and re-executes it that way when it was not.
package launcher
