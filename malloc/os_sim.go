package malloc

import "os"
import "unsafe"

// simos simulates the kernel surface over memory carved from the Go
// runtime. The data-segment is a fixed slice consumed bump-wise,
// mappings are individual slices pinned in a table until unmapped.
type simos struct {
	heap []byte
	brk  uintptr
	maps map[uintptr][]byte

	pagesize int64
}

func newsimos(heapsize int64) *simos {
	sim := &simos{
		heap:     make([]byte, heapsize),
		maps:     make(map[uintptr][]byte),
		pagesize: int64(os.Getpagesize()),
	}
	sim.brk = uintptr(unsafe.Pointer(&sim.heap[0]))
	return sim
}

func (sim *simos) Sbrk(incr uintptr) (uintptr, error) {
	end := uintptr(unsafe.Pointer(&sim.heap[0])) + uintptr(len(sim.heap))
	if sim.brk+incr > end {
		return 0, ErrorOutofMemory
	}
	brk := sim.brk
	sim.brk += incr
	return brk, nil
}

func (sim *simos) Mmap(n int64) (uintptr, error) {
	data := make([]byte, n)
	addr := uintptr(unsafe.Pointer(&data[0]))
	sim.maps[addr] = data
	return addr, nil
}

func (sim *simos) Munmap(addr uintptr, n int64) error {
	if _, ok := sim.maps[addr]; !ok {
		return ErrorBadpointer
	}
	delete(sim.maps, addr)
	return nil
}

func (sim *simos) Pagesize() int64 {
	return sim.pagesize
}

func (sim *simos) mappings() int {
	return len(sim.maps)
}
