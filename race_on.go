//go:build race

package teststat

const raceBuild = true
