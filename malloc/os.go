package malloc

// Syscaller is the kernel surface consumed by the arena: extending
// the process data-segment for the arena region, and mapping
// anonymous pages for over-sized blocks. Injecting it keeps the
// arena testable over a simulated heap.
type Syscaller interface {
	// Sbrk extend the data-segment by `incr` bytes and return the
	// base address of the extension. Sbrk(0) probes the current
	// break.
	Sbrk(incr uintptr) (uintptr, error)

	// Mmap reserve `n` bytes of anonymous pages.
	Mmap(n int64) (uintptr, error)

	// Munmap release `n` bytes of anonymous pages at `addr`.
	Munmap(addr uintptr, n int64) error

	// Pagesize of the underlying kernel.
	Pagesize() int64
}
