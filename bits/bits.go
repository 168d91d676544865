// Package bits provides the fixed-width unsigned fields packed into RISC8B
// instruction words.
//
// Fields are built one of two ways. New validates and refuses values that do not
// fit, for text coming from a user. Trunc keeps the low bits and never fails, for
// fields sliced out of a word, matching the register-width wraparound of the core.
package bits

import (
	"fmt"
)

// U2 is a 2-bit field.
type U2 uint8

// U3 is a 3-bit field.
type U3 uint8

// U7 is a 7-bit field.
type U7 uint8

// U8 is an 8-bit field.
type U8 uint8

// U9 is a 9-bit field.
type U9 uint16

// U10 is a 10-bit field.
type U10 uint16

// U12 is a 12-bit field.
type U12 uint16

func (U2) Width() uint  { return 2 }
func (U3) Width() uint  { return 3 }
func (U7) Width() uint  { return 7 }
func (U8) Width() uint  { return 8 }
func (U9) Width() uint  { return 9 }
func (U10) Width() uint { return 10 }
func (U12) Width() uint { return 12 }

// Field is any of the fixed-width field types.
type Field interface {
	U2 | U3 | U7 | U8 | U9 | U10 | U12
	Width() uint
}

// Unsigned is the set of raw integers a field can be built from.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Mask returns the value mask of a field of the given width.
func Mask(width uint) uint64 {
	return (uint64(1) << width) - 1
}

// WidthOf returns the bit width of field type F.
func WidthOf[F Field]() uint {
	var f F
	return f.Width()
}

// Fits returns true if raw can be held in width bits.
func Fits[T Unsigned](raw T, width uint) bool {
	return uint64(raw)&Mask(width) == uint64(raw)
}

// New returns raw as field F, or false if raw does not fit.
func New[F Field, T Unsigned](raw T) (f F, ok bool) {
	if !Fits(raw, WidthOf[F]()) {
		return
	}

	return F(raw), true
}

// Trunc returns the low bits of raw as field F.
func Trunc[F Field, T Unsigned](raw T) F {
	return F(uint64(raw) & Mask(WidthOf[F]()))
}

func (v U2) String() string  { return fmt.Sprintf("%d", uint8(v)) }
func (v U3) String() string  { return fmt.Sprintf("%d", uint8(v)) }
func (v U7) String() string  { return fmt.Sprintf("%d", uint8(v)) }
func (v U8) String() string  { return fmt.Sprintf("%d", uint8(v)) }
func (v U9) String() string  { return fmt.Sprintf("%d", uint16(v)) }
func (v U10) String() string { return fmt.Sprintf("%d", uint16(v)) }
func (v U12) String() string { return fmt.Sprintf("%d", uint16(v)) }

func (v U2) GoString() string  { return fmt.Sprintf("%d_u2", uint8(v)) }
func (v U3) GoString() string  { return fmt.Sprintf("%d_u3", uint8(v)) }
func (v U7) GoString() string  { return fmt.Sprintf("%d_u7", uint8(v)) }
func (v U8) GoString() string  { return fmt.Sprintf("%d_u8", uint8(v)) }
func (v U9) GoString() string  { return fmt.Sprintf("%d_u9", uint16(v)) }
func (v U10) GoString() string { return fmt.Sprintf("%d_u10", uint16(v)) }
func (v U12) GoString() string { return fmt.Sprintf("%d_u12", uint16(v)) }
