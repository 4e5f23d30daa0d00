//go:build !stringlet_debug

package stringlet

// debugChecks enables contract assertions in unchecked constructors. Build
// with -tags stringlet_debug to turn them on.
const debugChecks = false
