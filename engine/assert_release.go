//go:build !debug

package engine

// assertConsistent is a no-op outside debug builds.
func assertConsistent(cond bool, context string) {}
