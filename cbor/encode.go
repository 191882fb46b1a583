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
	"encoding/binary"
	"fmt"
	"io"
)

// Encoder writes events to an io.Writer.
//
// The Encoder keeps no state between calls. A failed call may leave a partial
// item in the writer; callers needing atomic writes should encode into a buffer
// and commit it themselves.
type Encoder struct {
	w       io.Writer
	scratch [9]byte
}

// NewEncoder returns an Encoder that writes to w
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w: w,
	}
}

// EncodeEvent writes the wire bytes for one event. Arguments are always written
// in their shortest form. End writes nothing.
func (e *Encoder) EncodeEvent(event Event) error {
	if err := validateEvent(event); err != nil {
		return err
	}
	head := appendHead(e.scratch[:0], event)
	if len(head) > 0 {
		if _, err := e.w.Write(head); err != nil {
			return fmt.Errorf("write %s header: %w", event.Kind, err)
		}
	}
	if event.Kind.HasPayload() && len(event.Payload) > 0 {
		if _, err := e.w.Write(event.Payload); err != nil {
			return fmt.Errorf("write %s payload: %w", event.Kind, err)
		}
	}
	return nil
}

// AppendEvent appends the wire bytes for one event to dst and returns the
// extended slice. On failure dst is returned unchanged.
func AppendEvent(dst []byte, event Event) ([]byte, error) {
	if err := validateEvent(event); err != nil {
		return dst, err
	}
	dst = appendHead(dst, event)
	if event.Kind.HasPayload() {
		dst = append(dst, event.Payload...)
	}
	return dst, nil
}

// EncodedLen returns the number of bytes EncodeEvent would write for the event
func EncodedLen(event Event) (int, error) {
	if err := validateEvent(event); err != nil {
		return 0, err
	}
	switch event.Kind {
	case EventEnd:
		return 0, nil
	case EventIndefiniteByteString, EventIndefiniteTextString, EventIndefiniteArray, EventIndefiniteMap, EventBreak:
		return 1, nil
	case EventByteString, EventTextString:
		return HeaderSize(uint64(len(event.Payload))) + len(event.Payload), nil
	case EventFloat:
		return 1 + len(event.Payload), nil
	default:
		return HeaderSize(event.Arg), nil
	}
}

// validateEvent checks the value-level rules an event must satisfy to be encodable
func validateEvent(event Event) error {
	switch event.Kind {
	case EventSimple:
		if event.Arg > 0xff {
			return fmt.Errorf("encode simple value %d: out of range", event.Arg)
		}
		if isReservedSimple(event.SimpleValue()) {
			return fmt.Errorf("encode simple value %d: %w", event.Arg, ErrReservedSimpleValue)
		}
	case EventFloat:
		if _, ok := floatAdditionalInfo(len(event.Payload)); !ok {
			return fmt.Errorf(
				"encode float of %d bytes: %w",
				len(event.Payload),
				ErrInvalidFloatWidth,
			)
		}
	case EventEnd,
		EventUnsignedInteger,
		EventNegativeInteger,
		EventByteString,
		EventTextString,
		EventArray,
		EventMap,
		EventIndefiniteByteString,
		EventIndefiniteTextString,
		EventIndefiniteArray,
		EventIndefiniteMap,
		EventTag,
		EventBreak:
	default:
		return fmt.Errorf("encode unknown event kind %d", uint8(event.Kind))
	}
	return nil
}

// appendHead appends the header of a validated event
func appendHead(dst []byte, event Event) []byte {
	switch event.Kind {
	case EventUnsignedInteger:
		return appendHeadWithArgument(dst, CborTypeUnsignedInteger, event.Arg)
	case EventNegativeInteger:
		return appendHeadWithArgument(dst, CborTypeNegativeInteger, event.Arg)
	case EventByteString:
		return appendHeadWithArgument(dst, CborTypeByteString, uint64(len(event.Payload)))
	case EventTextString:
		return appendHeadWithArgument(dst, CborTypeTextString, uint64(len(event.Payload)))
	case EventArray:
		return appendHeadWithArgument(dst, CborTypeArray, event.Arg)
	case EventMap:
		return appendHeadWithArgument(dst, CborTypeMap, event.Arg)
	case EventIndefiniteByteString:
		return append(dst, CborIndefByteString)
	case EventIndefiniteTextString:
		return append(dst, CborIndefTextString)
	case EventIndefiniteArray:
		return append(dst, CborIndefArray)
	case EventIndefiniteMap:
		return append(dst, CborIndefMap)
	case EventTag:
		return appendHeadWithArgument(dst, CborTypeTag, event.Arg)
	case EventSimple:
		return appendHeadWithArgument(dst, CborTypeSimple, event.Arg)
	case EventFloat:
		ai, _ := floatAdditionalInfo(len(event.Payload))
		return append(dst, CborTypeSimple|ai)
	case EventBreak:
		return append(dst, CborBreak)
	default:
		// End has no wire representation
		return dst
	}
}

// appendHeadWithArgument appends the shortest header for the major type and argument
func appendHeadWithArgument(dst []byte, majorType uint8, arg uint64) []byte {
	switch HeaderSize(arg) {
	case 1:
		return append(dst, majorType|uint8(arg))
	case 2:
		return append(dst, majorType|CborAdditionalInfo1Byte, uint8(arg))
	case 3:
		dst = append(dst, majorType|CborAdditionalInfo2Bytes)
		return binary.BigEndian.AppendUint16(dst, uint16(arg))
	case 5:
		dst = append(dst, majorType|CborAdditionalInfo4Bytes)
		return binary.BigEndian.AppendUint32(dst, uint32(arg))
	default:
		dst = append(dst, majorType|CborAdditionalInfo8Bytes)
		return binary.BigEndian.AppendUint64(dst, arg)
	}
}

func floatAdditionalInfo(width int) (uint8, bool) {
	switch width {
	case 2:
		return CborAdditionalInfo2Bytes, true
	case 4:
		return CborAdditionalInfo4Bytes, true
	case 8:
		return CborAdditionalInfo8Bytes, true
	default:
		return 0, false
	}
}
