//go:build stringlet_debug

package stringlet

const debugChecks = true
