// Package malloc supplies custom memory management for programs whose
// allocation behaviour must be accounted and bounded, with a limited
// scope:
//
//  * Types and Functions exported by this package are not thread safe.
//  * Small requests are served from a single contiguous arena reserved
//    from the process data-segment, divided into power-of-2 sized
//    blocks managed with a buddy discipline. Splitting and merging
//    keeps the effective working set bounded.
//  * Requests whose footprint exceeds the largest buddy block bypass
//    the arena and are served by anonymous page mappings.
//  * Once the arena region is reserved from OS, it is not given back
//    to OS. Mapped blocks are returned on Free or Release.
//  * There is no pointer re-write, blocks never move underneath the
//    application, except when Realloc relocates a payload and returns
//    the new pointer.
//
// Arena reserves its region lazily, on the first small allocation, and
// aligns the region's base to a multiple of the region size. That
// alignment is what makes the buddy of a block computable with one
// XOR over its address.
//
// The kernel surface consumed by the arena, extending the data-segment
// and mapping anonymous pages, is injected as a Syscaller so that a
// simulated heap can stand in during tests.
package malloc

// TODO: detect long-lived full-order free slots and advise the kernel
// with madvise(MADV_DONTNEED) without giving up the reservation.
