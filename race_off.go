//go:build !race

package teststat

const raceBuild = false
