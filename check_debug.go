//go:build debug
// +build debug

package quaternions

// debugChecks enables the unit-norm assertions in builds carrying the "debug" tag.
const debugChecks = true
