package cpu

// Field describes one operand field of an instruction word.
type Field struct {
	Name   string // Name, for diagnostics.
	Offset uint   // Bit offset of the least significant bit.
	Width  uint   // Width in bits, 1 to 31.
	Signed bool   // Two's complement field, sign-extended on extraction.
	Scale  uint   // Left shift applied to the extracted value.
}

func (fd Field) mask() uint32 {
	return (uint32(1) << fd.Width) - 1
}

// Raw returns the unscaled, unextended field bits.
func (fd Field) Raw(word uint32) uint32 {
	return (word >> fd.Offset) & fd.mask()
}

// Extract decodes the field from an instruction word.
func (fd Field) Extract(word uint32) (value int32) {
	raw := fd.Raw(word)
	if fd.Signed {
		shift := 32 - fd.Width
		value = int32(raw<<shift) >> shift
	} else {
		value = int32(raw)
	}

	value <<= fd.Scale

	return
}

// Limits returns the smallest and largest values the field can hold.
func (fd Field) Limits() (lo, hi int64) {
	if fd.Signed {
		lo = -(int64(1) << (fd.Width - 1))
		hi = (int64(1) << (fd.Width - 1)) - 1
	} else {
		hi = (int64(1) << fd.Width) - 1
	}

	lo <<= fd.Scale
	hi <<= fd.Scale

	return
}

// Encode returns the field bits, in position, for a value.
func (fd Field) Encode(value int32) (bits uint32, err error) {
	if value&((int32(1)<<fd.Scale)-1) != 0 {
		err = ErrFieldAlign
		return
	}

	lo, hi := fd.Limits()
	if int64(value) < lo || int64(value) > hi {
		err = ErrFieldRange{Field: fd.Name, Value: int64(value)}
		return
	}

	bits = ((uint32(value) >> fd.Scale) & fd.mask()) << fd.Offset

	return
}

// Insert replaces the field in an instruction word.
func (fd Field) Insert(word uint32, value int32) (out uint32, err error) {
	bits, err := fd.Encode(value)
	if err != nil {
		return
	}

	out = (word &^ (fd.mask() << fd.Offset)) | bits

	return
}
