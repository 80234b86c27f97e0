//go:build linux
// +build linux

package malloc

import "os"
import "unsafe"

import "golang.org/x/sys/unix"

func defaultsyscaller() Syscaller {
	return unixos{pagesize: int64(os.Getpagesize())}
}

// unixos drives the real kernel, brk(2) for the arena region and
// anonymous private mappings for over-sized blocks.
type unixos struct {
	pagesize int64
}

func (sys unixos) Sbrk(incr uintptr) (uintptr, error) {
	brk, _, _ := unix.Syscall(unix.SYS_BRK, 0, 0, 0)
	if incr == 0 {
		return brk, nil
	}
	newbrk, _, _ := unix.Syscall(unix.SYS_BRK, brk+incr, 0, 0)
	if newbrk < brk+incr {
		return 0, ErrorOutofMemory
	}
	return brk, nil
}

func (sys unixos) Mmap(n int64) (uintptr, error) {
	data, err := unix.Mmap(
		-1, 0, int(n),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return 0, err
	}
	return uintptr(unsafe.Pointer(&data[0])), nil
}

func (sys unixos) Munmap(addr uintptr, n int64) error {
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), int(n))
	return unix.Munmap(data)
}

func (sys unixos) Pagesize() int64 {
	return sys.pagesize
}
