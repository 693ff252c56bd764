// Package platform answers whether markfile may run on a given operating
// system. The tool replaces a Linux-only fixture script, and its exit-code
// contract is defined for Linux alone.
package platform

// Linux is the only supported platform identifier.
const Linux = "linux"

// Supported reports whether goos identifies a supported operating system.
// Callers pass runtime.GOOS in production and arbitrary values in tests.
func Supported(goos string) bool {
	return goos == Linux
}
