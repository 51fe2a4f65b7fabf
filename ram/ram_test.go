package ram

import (
	"errors"
	"maps"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRam(t *testing.T) {
	assert := assert.New(t)

	ram := NewRam()
	for n := range RAM_SIZE {
		val, err := ram.Read(n)
		assert.NoError(err)
		assert.Equal(uint8(0), val)
	}
}

func TestRam_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	ram := NewRam()

	table := []struct {
		address int
		value   uint8
	}{
		{0x00, 0x82},
		{0x01, 0xff},
		{0xf4, 0x2a},
		{0xff, 0x01},
	}

	for _, entry := range table {
		err := ram.Write(entry.address, entry.value)
		assert.NoError(err)
	}

	for _, entry := range table {
		val, err := ram.Read(entry.address)
		assert.NoError(err)
		assert.Equal(entry.value, val, "0x%02x", entry.address)
	}
}

func TestRam_OutOfRange(t *testing.T) {
	assert := assert.New(t)

	ram := NewRam()

	for _, address := range []int{-1, RAM_SIZE, RAM_SIZE + 1, 0x1000} {
		_, err := ram.Read(address)
		assert.True(errors.Is(err, ErrOutOfRange), "read %v", address)

		var ea *ErrAddress
		assert.True(errors.As(err, &ea))
		assert.Equal(address, ea.Address)

		err = ram.Write(address, 1)
		assert.True(errors.Is(err, ErrOutOfRange), "write %v", address)
	}
}

func TestRam_Load(t *testing.T) {
	assert := assert.New(t)

	ram := NewRam()
	ram.Data[10] = 0x55

	err := ram.Load([]uint8{0x82, 0x00, 0x08, 0x01})
	assert.NoError(err)
	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x01}, ram.Data[:4])
	assert.Equal(uint8(0x55), ram.Data[10])

	err = ram.Load(make([]uint8, RAM_SIZE+1))
	assert.ErrorIs(err, ErrImageTooLarge)

	err = ram.Load(make([]uint8, RAM_SIZE))
	assert.NoError(err)
}

func TestRam_Reset(t *testing.T) {
	assert := assert.New(t)

	ram := NewRam()
	ram.Data[0] = 1
	ram.Data[RAM_SIZE-1] = 2
	ram.Reset()
	assert.Equal([RAM_SIZE]uint8{}, ram.Data)
}

func TestRam_Defines(t *testing.T) {
	assert := assert.New(t)

	defines := maps.Collect(Defines())
	assert.Equal("256", defines["RAM_SIZE"])
}
