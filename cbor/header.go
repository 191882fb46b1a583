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

package cbor

import "fmt"

// Header is the prefix of a CBOR data item: the initial byte plus the 0, 1, 2, 4
// or 8 big-endian bytes that follow it. FollowingBytes is a view into the buffer
// the header was read from.
type Header struct {
	InitialByte    byte
	FollowingBytes []byte
}

// NewHeader returns a Header for the given initial byte and following bytes
func NewHeader(initialByte byte, followingBytes []byte) Header {
	return Header{
		InitialByte:    initialByte,
		FollowingBytes: followingBytes,
	}
}

// MajorType returns the top 3 bits of the initial byte, unshifted (0x00, 0x20, ... 0xe0)
func (h Header) MajorType() uint8 {
	return h.InitialByte & CborTypeMask
}

// AdditionalInformation returns the bottom 5 bits of the initial byte
func (h Header) AdditionalInformation() uint8 {
	return h.InitialByte & CborAdditionalInfoMask
}

// IsIndefinite reports whether the header carries the indefinite-length marker
func (h Header) IsIndefinite() bool {
	return h.AdditionalInformation() == CborAdditionalInfoIndefLen
}

// IsSound reports whether the number of following bytes matches what the
// additional information prescribes, and whether the indefinite-length marker
// is used with a major type that allows it.
func (h Header) IsSound() bool {
	ai := h.AdditionalInformation()
	switch {
	case ai >= cborAdditionalInfoReserved0 && ai <= cborAdditionalInfoReserved2:
		return false
	case ai == CborAdditionalInfoIndefLen:
		if len(h.FollowingBytes) != 0 {
			return false
		}
		switch h.MajorType() {
		case CborTypeUnsignedInteger, CborTypeNegativeInteger, CborTypeTag:
			return false
		default:
			return true
		}
	}
	count, _ := followingByteCount(ai)
	return len(h.FollowingBytes) == count
}

// Argument returns the numeric argument of the header. The second return value
// is false when the header is not sound or carries the indefinite-length marker.
func (h Header) Argument() (uint64, bool) {
	if !h.IsSound() || h.IsIndefinite() {
		return 0, false
	}
	ai := h.AdditionalInformation()
	if ai <= CborMaxUintSimple {
		return uint64(ai), true
	}
	var arg uint64
	for _, b := range h.FollowingBytes {
		arg = arg<<8 | uint64(b)
	}
	return arg, true
}

// Len returns the number of bytes the header occupies on the wire
func (h Header) Len() int {
	return 1 + len(h.FollowingBytes)
}

func (h Header) String() string {
	return fmt.Sprintf(
		"Header(major=0x%02x, ai=%d, following=%x)",
		h.MajorType(),
		h.AdditionalInformation(),
		h.FollowingBytes,
	)
}

// followingByteCount returns the number of bytes that follow the initial byte
// for the given additional information. It returns false for the reserved
// values 28-30.
func followingByteCount(ai uint8) (int, bool) {
	switch {
	case ai <= CborMaxUintSimple:
		return 0, true
	case ai == CborAdditionalInfo1Byte:
		return 1, true
	case ai == CborAdditionalInfo2Bytes:
		return 2, true
	case ai == CborAdditionalInfo4Bytes:
		return 4, true
	case ai == CborAdditionalInfo8Bytes:
		return 8, true
	case ai == CborAdditionalInfoIndefLen:
		return 0, true
	default:
		return 0, false
	}
}

// ParseHeader reads one item header from the start of data. It returns the
// header and the number of bytes it occupies. The header's FollowingBytes
// reference data.
//
// ParseHeader only checks framing: it rejects the reserved additional
// information values 28-30 and headers whose following bytes are cut short.
// Use IsSound to also check the indefinite-length marker against the major type.
func ParseHeader(data []byte) (Header, int, error) {
	if len(data) == 0 {
		return Header{}, 0, fmt.Errorf("%w: no initial byte", ErrTruncatedInput)
	}
	initialByte := data[0]
	ai := initialByte & CborAdditionalInfoMask
	count, ok := followingByteCount(ai)
	if !ok {
		return Header{}, 0, fmt.Errorf(
			"%w: %d in initial byte 0x%02x",
			ErrReservedAdditionalInformation,
			ai,
			initialByte,
		)
	}
	if len(data)-1 < count {
		return Header{}, 0, fmt.Errorf(
			"%w: header needs %d following bytes, %d available",
			ErrTruncatedInput,
			count,
			len(data)-1,
		)
	}
	h := NewHeader(initialByte, data[1:1+count:1+count])
	return h, 1 + count, nil
}

// HeaderSize returns the size in bytes of the shortest header able to carry arg
func HeaderSize(arg uint64) int {
	switch {
	case arg <= uint64(CborMaxUintSimple):
		return 1 // type and argument in a single byte
	case arg <= 0xff:
		return 2 // type + 1-byte argument
	case arg <= 0xffff:
		return 3 // type + 2-byte argument
	case arg <= 0xffffffff:
		return 5 // type + 4-byte argument
	default:
		return 9 // type + 8-byte argument
	}
}
