//go:build !debug

package sourcetree

const panicOnViolation = false
