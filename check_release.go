//go:build !debug
// +build !debug

package quaternions

const debugChecks = false
