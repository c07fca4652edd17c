// Package preflight provides readiness checks for the binaries and filesystem
// paths a render run depends on.
//
// The CLI "doctor" command runs RunAll and prints each result. Output
// directories that do not exist yet pass when they can be created.
package preflight
