package fill

import (
	"fmt"

	"github.com/weiihann/fillbench/device"
)

// fillDevice offloads the fill to the default compute device: the
// buffer is copied into device memory, the index kernel runs there,
// and the result is copied back before returning.
func fillDevice(buf []uint64) error {
	dev := device.Default()

	mem, err := dev.Alloc(len(buf))
	if err != nil {
		return fmt.Errorf("device %s: alloc %d elements: %w",
			dev.Name(), len(buf), err)
	}
	defer mem.Free()

	mem.CopyIn(buf)
	mem.RunIndex()
	mem.CopyOut(buf)

	return nil
}

// deviceRunnable gates the device strategy on real hardware; the
// emulated host backend does not count.
func deviceRunnable() bool {
	return !device.Default().Emulated()
}
