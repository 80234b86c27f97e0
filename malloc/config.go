package malloc

import "github.com/cloudfoundry/gosigar"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Minblocksize smallest block size allocatable from the arena. Can be
// overridden with the "minblock" setting.
const Minblocksize = int64(128)

// Maxorder number of halvings between the largest and the smallest
// arena block. Can be overridden with the "maxorder" setting.
const Maxorder = int64(10)

// Arenaslots number of largest-order blocks the arena is divided into
// when reserved. Can be overridden with the "slots" setting.
const Arenaslots = int64(32)

// Maxrequest largest size, in bytes, a single allocation request can
// ask for. Can be overridden with the "maxrequest" setting.
const Maxrequest = int64(100000000)

// Defaultsettings for gomalloc arena.
//
// "minblock" (int64, default: 128)
//		Smallest block size served from the arena. Shall be a power
//		of 2, strictly larger than the block header.
//
// "maxorder" (int64, default: 10)
//		Number of size classes above minblock. The largest arena
//		block is minblock << maxorder, requests above it are served
//		by page mapping.
//
// "slots" (int64, default: 32)
//		Number of largest-order blocks in the arena region. Shall be
//		a power of 2. Region size is slots * (minblock << maxorder).
//
// "maxrequest" (int64, default: 100000000)
//		Upper bound on a single request, larger requests fail.
func Defaultsettings() s.Settings {
	return s.Settings{
		"minblock":   Minblocksize,
		"maxorder":   Maxorder,
		"slots":      Arenaslots,
		"maxrequest": Maxrequest,
	}
}

func (arena *Arena) readsettings(setts s.Settings) *Arena {
	arena.minblock = setts.Int64("minblock")
	arena.maxorder = setts.Int64("maxorder")
	arena.slots = setts.Int64("slots")
	arena.maxrequest = setts.Int64("maxrequest")
	arena.maxblock = arena.minblock << uint64(arena.maxorder)
	arena.capacity = arena.slots * arena.maxblock
	return arena.validatesettings()
}

func (arena *Arena) validatesettings() *Arena {
	if mb := arena.minblock; mb&(mb-1) != 0 {
		panicerr("minblock %v shall be a power of 2", mb)
	} else if mb <= metadatasize {
		panicerr("minblock %v shall exceed header size %v", mb, metadatasize)
	}
	if mo := arena.maxorder; mo < 1 || mo > 20 {
		panicerr("maxorder %v shall be between 1 and 20", mo)
	}
	if sl := arena.slots; sl <= 0 || sl&(sl-1) != 0 {
		panicerr("slots %v shall be a power of 2", sl)
	}
	if arena.maxrequest <= 0 {
		panicerr("maxrequest %v shall be positive", arena.maxrequest)
	}
	return arena
}

func (arena *Arena) logarenasettings() {
	infof("%v minblock:%v maxorder:%v slots:%v capacity:%v\n",
		arena.logprefix, arena.minblock, arena.maxorder, arena.slots,
		humanize.Bytes(uint64(arena.capacity)))
	mem := sigar.Mem{}
	if err := mem.Get(); err == nil && uint64(arena.capacity) > mem.ActualFree {
		warnf("%v capacity %v exceeds free ram %v\n", arena.logprefix,
			humanize.Bytes(uint64(arena.capacity)),
			humanize.Bytes(mem.ActualFree))
	}
}
