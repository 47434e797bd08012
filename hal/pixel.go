package hal

// widen6 expands a 6-bit channel to 8 bits by replicating the top bits,
// optionally inverting it first the way INVON does on the glass.
func widen6(v uint8, invert bool) uint8 {
	v &= 0x3F
	if invert {
		v = 0x3F - v
	}
	return v<<2 | v>>4
}

