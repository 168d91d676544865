package bits

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func checkRange[F Field](t *testing.T) {
	assert := assert.New(t)

	width := WidthOf[F]()
	limit := uint64(1) << width

	for raw := uint64(0); raw < limit; raw++ {
		v, ok := New[F](raw)
		assert.True(ok, "width %d value %d", width, raw)
		assert.Equal(raw, uint64(v))
	}

	for _, raw := range []uint64{limit, limit + 1, limit << 1, 0xffff, 0xffffffff} {
		_, ok := New[F](raw)
		assert.False(ok, "width %d value %d", width, raw)
	}
}

func TestNewRange(t *testing.T) {
	checkRange[U2](t)
	checkRange[U3](t)
	checkRange[U7](t)
	checkRange[U8](t)
	checkRange[U9](t)
	checkRange[U10](t)
	checkRange[U12](t)
}

func checkTrunc[F Field](t *testing.T) {
	assert := assert.New(t)

	width := WidthOf[F]()
	for raw := uint32(0); raw <= 0xffff; raw += 7 {
		v := Trunc[F](raw)
		assert.Less(uint64(v), uint64(1)<<width)
		assert.Equal(uint64(raw)&Mask(width), uint64(v))
	}
}

func TestTrunc(t *testing.T) {
	checkTrunc[U2](t)
	checkTrunc[U3](t)
	checkTrunc[U7](t)
	checkTrunc[U8](t)
	checkTrunc[U9](t)
	checkTrunc[U10](t)
	checkTrunc[U12](t)
}

func TestTruncWraps(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(U2(3), Trunc[U2](uint8(0b1111)))
	assert.Equal(U3(5), Trunc[U3](uint8(0b0100_1101)))
	assert.Equal(U7(0x7f), Trunc[U7](uint8(0xff)))
	assert.Equal(U9(0x1ff), Trunc[U9](uint16(0xffff)))
	assert.Equal(U10(0x123), Trunc[U10](uint16(0xf123)))
	assert.Equal(U12(0xabc), Trunc[U12](uint16(0x6abc)))
}

func TestWidth(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint(2), U2(0).Width())
	assert.Equal(uint(3), U3(0).Width())
	assert.Equal(uint(7), U7(0).Width())
	assert.Equal(uint(8), U8(0).Width())
	assert.Equal(uint(9), U9(0).Width())
	assert.Equal(uint(10), U10(0).Width())
	assert.Equal(uint(12), U12(0).Width())
}

func TestFits(t *testing.T) {
	assert := assert.New(t)

	assert.True(Fits(uint16(0x3ff), 10))
	assert.False(Fits(uint16(0x400), 10))
	assert.True(Fits(uint8(0), 2))
	assert.False(Fits(uint(4), 2))
}

func TestString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("3", U2(3).String())
	assert.Equal("511", U9(511).String())
	assert.Equal("4095", fmt.Sprint(U12(4095)))
	assert.Equal("3_u2", fmt.Sprintf("%#v", U2(3)))
	assert.Equal("100_u10", U10(100).GoString())
}
