// Package device abstracts an optional compute device capable of
// filling a buffer with its own flat indices. Real backends register
// themselves at startup; without one, selection falls back to an
// emulated host device.
package device

import "sync"

// Device is a compute backend that can run the index-fill kernel.
type Device interface {
	// Name identifies the backend.
	Name() string
	// Emulated reports whether the device is a host-side reference
	// implementation rather than dedicated hardware.
	Emulated() bool
	// Alloc reserves device memory for n elements.
	Alloc(n int) (Buffer, error)
}

// Buffer is device-resident memory for one fill run.
type Buffer interface {
	// CopyIn transfers src from host to device memory.
	CopyIn(src []uint64)
	// RunIndex writes each element's flat index into device memory,
	// completing before it returns.
	RunIndex()
	// CopyOut transfers device memory back into dst.
	CopyOut(dst []uint64)
	// Free releases the device memory.
	Free()
}

// Opener attempts to open a backend. Openers that return an error
// are passed over during selection.
type Opener func() (Device, error)

var (
	mu      sync.Mutex
	openers []Opener
)

// Register adds a backend opener. Default tries openers in
// registration order.
func Register(open Opener) {
	mu.Lock()
	defer mu.Unlock()

	openers = append(openers, open)
}

// Default returns the first registered backend that opens, falling
// back to the emulated host device.
func Default() Device {
	mu.Lock()
	defer mu.Unlock()

	for _, open := range openers {
		dev, err := open()
		if err != nil {
			continue
		}

		return dev
	}

	return hostDevice{}
}

// Host returns the emulated host reference device.
func Host() Device {
	return hostDevice{}
}

type hostDevice struct{}

func (hostDevice) Name() string   { return "host" }
func (hostDevice) Emulated() bool { return true }

func (hostDevice) Alloc(n int) (Buffer, error) {
	return &hostBuffer{mem: make([]uint64, n)}, nil
}

// hostBuffer emulates device memory with a separate host allocation
// so copy-in and copy-out costs stay observable.
type hostBuffer struct {
	mem []uint64
}

func (b *hostBuffer) CopyIn(src []uint64) {
	copy(b.mem, src)
}

func (b *hostBuffer) RunIndex() {
	for i := range b.mem {
		b.mem[i] = uint64(i)
	}
}

func (b *hostBuffer) CopyOut(dst []uint64) {
	copy(dst, b.mem)
}

func (b *hostBuffer) Free() {
	b.mem = nil
}
