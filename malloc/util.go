package malloc

import "fmt"
import "errors"

// ErrorOutofMemory thrown by the kernel surface when the data-segment
// cannot be extended or pages cannot be mapped.
var ErrorOutofMemory = errors.New("malloc.outofmemory")

// ErrorBadpointer thrown by the kernel surface when asked to release
// a region it does not own.
var ErrorBadpointer = errors.New("malloc.badpointer")

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
