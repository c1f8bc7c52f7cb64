package fill

// fillSequential writes the sequence in a single linear pass.
func fillSequential(buf []uint64) error {
	for i := range buf {
		buf[i] = uint64(i)
	}

	return nil
}

// fillGenerator draws every value from a stateful counter closure
// rather than computing it from the loop index.
func fillGenerator(buf []uint64) error {
	next := counter()
	for i := range buf {
		buf[i] = next()
	}

	return nil
}

func counter() func() uint64 {
	var n uint64

	return func() uint64 {
		v := n
		n++

		return v
	}
}
