package bench

import "fmt"

// newBuffer allocates a zeroed trial buffer. The runtime signals an
// oversized or unsatisfiable length by panicking inside make; that
// panic is converted to an ordinary error here.
func newBuffer(n int) (buf []uint64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	return make([]uint64, n), nil
}
