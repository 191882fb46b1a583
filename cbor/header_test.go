// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cbor_test

import (
	"testing"

	"github.com/blinklabs-io/cborevent/cbor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderFields(t *testing.T) {
	h := cbor.NewHeader(0x15, []byte{})
	assert.Equal(t, uint8(0x00), h.MajorType())
	assert.Equal(t, uint8(0x15), h.AdditionalInformation())
	assert.True(t, h.IsSound())
	assert.Equal(t, 1, h.Len())

	h = cbor.NewHeader(0x58, []byte{0xfb})
	assert.Equal(t, uint8(0x40), h.MajorType())
	assert.Equal(t, uint8(0x18), h.AdditionalInformation())
	assert.True(t, h.IsSound())
	assert.Equal(t, 2, h.Len())
}

func TestHeaderArgument(t *testing.T) {
	testDefs := []struct {
		name      string
		header    cbor.Header
		expected  uint64
		expectArg bool
	}{
		{"inline", cbor.NewHeader(0x31, nil), 0x11, true},
		{"1 byte", cbor.NewHeader(0x58, []byte{0xab}), 0xab, true},
		{"2 bytes", cbor.NewHeader(0x79, []byte{0xa5, 0xe6}), 0xa5e6, true},
		{"4 bytes", cbor.NewHeader(0x9a, []byte{0x98, 0x36, 0x96, 0x0d}), 0x9836960d, true},
		{
			"8 bytes",
			cbor.NewHeader(0xbb, []byte{0x53, 0x84, 0xc4, 0x60, 0xfd, 0xb0, 0x04, 0xc4}),
			0x5384c460fdb004c4,
			true,
		},
		{"break", cbor.NewHeader(0xff, nil), 0, false},
		{"indefinite array", cbor.NewHeader(0x9f, nil), 0, false},
		{"missing following byte", cbor.NewHeader(0x18, nil), 0, false},
		{"extra following byte", cbor.NewHeader(0x05, []byte{0x01}), 0, false},
		{"short following bytes", cbor.NewHeader(0x1a, []byte{0x01, 0x02}), 0, false},
		{"reserved 28", cbor.NewHeader(0x1c, nil), 0, false},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			arg, ok := testDef.header.Argument()
			assert.Equal(t, testDef.expectArg, ok)
			assert.Equal(t, testDef.expected, arg)
		})
	}
}

func TestHeaderIsSoundIndefinite(t *testing.T) {
	// Indefinite length is only valid for strings, arrays, maps and major type 7
	expected := map[uint8]bool{
		0x00: false,
		0x20: false,
		0x40: true,
		0x60: true,
		0x80: true,
		0xa0: true,
		0xc0: false,
		0xe0: true,
	}
	for majorType, sound := range expected {
		h := cbor.NewHeader(majorType|31, nil)
		assert.Equal(t, sound, h.IsSound(), "major type 0x%02x", majorType)
		assert.True(t, h.IsIndefinite())
	}
}

func TestHeaderIsSoundReserved(t *testing.T) {
	for ai := byte(28); ai <= 30; ai++ {
		for majorType := 0; majorType < 8; majorType++ {
			ib := byte(majorType)<<5 | ai
			for _, following := range [][]byte{nil, {0}, {0, 0}, {0, 0, 0, 0}, make([]byte, 8)} {
				assert.False(t, cbor.NewHeader(ib, following).IsSound(), "initial byte 0x%02x", ib)
			}
		}
	}
}

func TestParseHeader(t *testing.T) {
	testDefs := []struct {
		data          []byte
		initialByte   byte
		following     []byte
		bytesConsumed int
	}{
		{[]byte{0x0c, 0x6b}, 0x0c, []byte{}, 1},
		{[]byte{0xf8, 0xdb, 0x02, 0x35}, 0xf8, []byte{0xdb}, 2},
		{[]byte{0x99, 0x78, 0x14, 0xf4, 0xc6, 0xbe}, 0x99, []byte{0x78, 0x14}, 3},
		{[]byte{0x3a, 0x14, 0xe3, 0x17, 0x19, 0x49}, 0x3a, []byte{0x14, 0xe3, 0x17, 0x19}, 5},
		{
			[]byte{0xbb, 0x9e, 0x1e, 0x5f, 0xd7, 0xe3, 0xa4, 0x07, 0xe1},
			0xbb,
			[]byte{0x9e, 0x1e, 0x5f, 0xd7, 0xe3, 0xa4, 0x07, 0xe1},
			9,
		},
		{[]byte{0x5f, 0x41, 0x00}, 0x5f, []byte{}, 1},
	}
	for _, testDef := range testDefs {
		h, n, err := cbor.ParseHeader(testDef.data)
		require.NoError(t, err)
		assert.Equal(t, testDef.initialByte, h.InitialByte)
		assert.Equal(t, testDef.following, h.FollowingBytes)
		assert.Equal(t, testDef.bytesConsumed, n)
	}
}

func TestParseHeaderErrors(t *testing.T) {
	testDefs := []struct {
		name     string
		data     []byte
		expected error
	}{
		{"empty", []byte{}, cbor.ErrTruncatedInput},
		{"reserved 28", []byte{0x1c}, cbor.ErrReservedAdditionalInformation},
		{"reserved 29", []byte{0x3d, 0x00}, cbor.ErrReservedAdditionalInformation},
		{"reserved 30", []byte{0xfe}, cbor.ErrReservedAdditionalInformation},
		{"short 4 byte argument", []byte{0x5a, 0x00, 0x00, 0x00}, cbor.ErrTruncatedInput},
		{"short 1 byte argument", []byte{0x18}, cbor.ErrTruncatedInput},
		{"short 8 byte argument", []byte{0x1b, 0, 0, 0, 0, 0, 0, 0}, cbor.ErrTruncatedInput},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			_, _, err := cbor.ParseHeader(testDef.data)
			assert.ErrorIs(t, err, testDef.expected)
		})
	}
}

func TestHeaderSize(t *testing.T) {
	testDefs := []struct {
		arg      uint64
		expected int
	}{
		{0, 1},
		{23, 1},
		{24, 2},
		{255, 2},
		{256, 3},
		{65535, 3},
		{65536, 5},
		{0xffffffff, 5},
		{0x1_00000000, 9},
		{0xffffffffffffffff, 9},
	}
	for _, testDef := range testDefs {
		assert.Equal(t, testDef.expected, cbor.HeaderSize(testDef.arg), "argument %d", testDef.arg)
	}
}
