//go:build !linux
// +build !linux

package malloc

// Platforms without a usable brk(2) run the arena over a simulated
// heap carved out of the Go runtime.
func defaultsyscaller() Syscaller {
	return newsimos(64 * 1024 * 1024)
}
