//go:build gridlife_debug

package life

const debugChecks = true
