//go:build debug

package teststat

const debugBuild = true
