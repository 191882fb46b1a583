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

import (
	"fmt"
	"math"
)

// Two-byte simple values (0xf8 xx) must be at least 32
const simpleTwoByteMin = 32

// Decoder reads a CBOR buffer one Event at a time.
//
// A Decoder is poisoned by its first failure: every later call to DecodeEvent
// fails without looking at the buffer again, since alignment with item
// boundaries cannot be recovered after a malformed item.
type Decoder struct {
	data   []byte
	offset int
	err    error
}

// NewDecoder returns a Decoder over data. Payloads of decoded events reference
// data, so it must not be modified while those events are in use.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{
		data: data,
	}
}

// Position returns the offset of the next unread byte
func (d *Decoder) Position() int {
	return d.offset
}

// Remaining returns the number of unread bytes
func (d *Decoder) Remaining() int {
	return len(d.data) - d.offset
}

// Failed reports whether the decoder has been poisoned by a previous failure
func (d *Decoder) Failed() bool {
	return d.err != nil
}

// DecodeEvent returns the next event. It returns End once the buffer is
// exhausted, and keeps returning End on further calls.
func (d *Decoder) DecodeEvent() (Event, error) {
	if d.err != nil {
		return Event{}, fmt.Errorf("%w: %w", ErrAlreadyFailed, d.err)
	}
	if d.offset >= len(d.data) {
		return End(), nil
	}
	event, n, err := decodeEvent(d.data[d.offset:])
	if err != nil {
		d.err = &DecodeError{Offset: d.offset, Err: err}
		return Event{}, d.err
	}
	d.offset += n
	return event, nil
}

// decodeEvent decodes the event at the start of data, which must not be empty.
// It returns the event and the number of bytes it occupies.
func decodeEvent(data []byte) (Event, int, error) {
	h, off, err := ParseHeader(data)
	if err != nil {
		return Event{}, 0, err
	}
	if !h.IsSound() {
		return Event{}, 0, fmt.Errorf(
			"%w: initial byte 0x%02x",
			ErrInvalidIndefiniteLength,
			h.InitialByte,
		)
	}
	indefinite := h.IsIndefinite()
	// Argument is defined for every sound header without the indefinite marker
	arg, _ := h.Argument()

	switch h.MajorType() {
	case CborTypeUnsignedInteger:
		return UnsignedInteger(arg), off, nil
	case CborTypeNegativeInteger:
		return NegativeInteger(arg), off, nil
	case CborTypeByteString, CborTypeTextString:
		isText := h.MajorType() == CborTypeTextString
		if indefinite {
			if isText {
				return IndefiniteTextString(), off, nil
			}
			return IndefiniteByteString(), off, nil
		}
		content, err := decodeBytes(data[off:], arg)
		if err != nil {
			return Event{}, 0, err
		}
		if isText {
			return TextString(content), off + len(content), nil
		}
		return ByteString(content), off + len(content), nil
	case CborTypeArray:
		if indefinite {
			return IndefiniteArray(), off, nil
		}
		return Array(arg), off, nil
	case CborTypeMap:
		if indefinite {
			return IndefiniteMap(), off, nil
		}
		return Map(arg), off, nil
	case CborTypeTag:
		return Tag(arg), off, nil
	default:
		return decodeSimpleOrFloat(h, arg, off)
	}
}

func decodeSimpleOrFloat(h Header, arg uint64, off int) (Event, int, error) {
	switch ai := h.AdditionalInformation(); {
	case ai <= CborMaxUintSimple:
		return Simple(ai), off, nil
	case ai == CborAdditionalInfo1Byte:
		if arg < simpleTwoByteMin {
			return Event{}, 0, fmt.Errorf(
				"%w: %d in two-byte form",
				ErrReservedSimpleValue,
				arg,
			)
		}
		// #nosec G115 -- a one-byte argument is at most 0xff
		return Simple(uint8(arg)), off, nil
	case ai == CborAdditionalInfoIndefLen:
		return Break(), off, nil
	default:
		// 25, 26, 27: half, single and double precision
		return Float(h.FollowingBytes), off, nil
	}
}

// decodeBytes returns the first length bytes of data
func decodeBytes(data []byte, length uint64) ([]byte, error) {
	if length > uint64(math.MaxInt) {
		return nil, fmt.Errorf("%w: string length %d", ErrLengthOverflow, length)
	}
	if uint64(len(data)) < length {
		return nil, fmt.Errorf(
			"%w: string length %d greater than remaining %d bytes",
			ErrTruncatedInput,
			length,
			len(data),
		)
	}
	// Capacity is capped so appending to the payload cannot clobber the buffer
	return data[:length:length], nil
}
