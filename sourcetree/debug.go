//go:build debug

package sourcetree

const panicOnViolation = true
