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
	"bytes"
	"fmt"

	"github.com/jinzhu/copier"
)

// EventKind identifies the kind of an Event
type EventKind uint8

const (
	EventEnd EventKind = iota
	EventUnsignedInteger
	EventNegativeInteger
	EventByteString
	EventTextString
	EventArray
	EventMap
	EventIndefiniteByteString
	EventIndefiniteTextString
	EventIndefiniteArray
	EventIndefiniteMap
	EventTag
	EventSimple
	EventFloat
	EventBreak
)

var eventKindNames = map[EventKind]string{
	EventEnd:                  "end",
	EventUnsignedInteger:      "unsigned-integer",
	EventNegativeInteger:      "negative-integer",
	EventByteString:           "byte-string",
	EventTextString:           "text-string",
	EventArray:                "array",
	EventMap:                  "map",
	EventIndefiniteByteString: "indefinite-byte-string",
	EventIndefiniteTextString: "indefinite-text-string",
	EventIndefiniteArray:      "indefinite-array",
	EventIndefiniteMap:        "indefinite-map",
	EventTag:                  "tag",
	EventSimple:               "simple",
	EventFloat:                "float",
	EventBreak:                "break",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("EventKind(%d)", uint8(k))
}

// HasArg reports whether events of this kind carry a numeric argument
func (k EventKind) HasArg() bool {
	switch k {
	case EventUnsignedInteger, EventNegativeInteger, EventArray, EventMap, EventTag, EventSimple:
		return true
	default:
		return false
	}
}

// HasPayload reports whether events of this kind carry payload bytes
func (k EventKind) HasPayload() bool {
	switch k {
	case EventByteString, EventTextString, EventFloat:
		return true
	default:
		return false
	}
}

// Event is a single structural item of a CBOR stream: one item header plus,
// for strings and floats, its payload.
//
// Arg holds the integer value (for a negative integer, the encoded magnitude n
// of the value -1-n), the element or pair count of an array or map, the tag
// number, or the simple value. Payload holds string content or the raw bytes of
// a float. Payload is borrowed: on decode it references the input buffer, on
// encode it is whatever the caller supplied. Use Detach to get an event that
// owns its payload.
//
// The zero Event is End.
type Event struct {
	Kind    EventKind
	Arg     uint64
	Payload []byte
}

func UnsignedInteger(v uint64) Event {
	return Event{Kind: EventUnsignedInteger, Arg: v}
}

// NegativeInteger returns the event for the integer -1-n
func NegativeInteger(n uint64) Event {
	return Event{Kind: EventNegativeInteger, Arg: n}
}

func ByteString(content []byte) Event {
	return Event{Kind: EventByteString, Payload: content}
}

// TextString returns a text string event. The content is not checked for valid UTF-8.
func TextString(content []byte) Event {
	return Event{Kind: EventTextString, Payload: content}
}

func Array(length uint64) Event {
	return Event{Kind: EventArray, Arg: length}
}

// Map returns a map event with the given number of key/value pairs
func Map(pairs uint64) Event {
	return Event{Kind: EventMap, Arg: pairs}
}

func IndefiniteByteString() Event {
	return Event{Kind: EventIndefiniteByteString}
}

func IndefiniteTextString() Event {
	return Event{Kind: EventIndefiniteTextString}
}

func IndefiniteArray() Event {
	return Event{Kind: EventIndefiniteArray}
}

func IndefiniteMap() Event {
	return Event{Kind: EventIndefiniteMap}
}

func Tag(number uint64) Event {
	return Event{Kind: EventTag, Arg: number}
}

func Simple(v uint8) Event {
	return Event{Kind: EventSimple, Arg: uint64(v)}
}

// Float returns a float event for the raw big-endian bytes of a half, single or
// double precision value. The bytes are never interpreted.
func Float(raw []byte) Event {
	return Event{Kind: EventFloat, Payload: raw}
}

func Break() Event {
	return Event{Kind: EventBreak}
}

func End() Event {
	return Event{Kind: EventEnd}
}

// SimpleValue returns Arg as a simple value
func (e Event) SimpleValue() uint8 {
	// #nosec G115 -- simple values are 8 bits wide by construction
	return uint8(e.Arg)
}

// Equal reports whether two events have the same kind and the same argument or payload
func (e Event) Equal(o Event) bool {
	if e.Kind != o.Kind {
		return false
	}
	if e.Kind.HasArg() && e.Arg != o.Arg {
		return false
	}
	if e.Kind.HasPayload() && !bytes.Equal(e.Payload, o.Payload) {
		return false
	}
	return true
}

// Detach returns a copy of the event whose payload no longer references the
// buffer it was decoded from
func (e Event) Detach() (Event, error) {
	var ret Event
	if err := copier.CopyWithOption(&ret, &e, copier.Option{DeepCopy: true}); err != nil {
		return Event{}, fmt.Errorf("detach %s event: %w", e.Kind, err)
	}
	if e.Payload == nil {
		ret.Payload = nil
	}
	return ret, nil
}

func (e Event) String() string {
	switch e.Kind {
	case EventUnsignedInteger:
		return fmt.Sprintf("UnsignedInteger(%d)", e.Arg)
	case EventNegativeInteger:
		return fmt.Sprintf("NegativeInteger(%d)", e.Arg)
	case EventByteString:
		return fmt.Sprintf("ByteString(h'%x')", e.Payload)
	case EventTextString:
		return fmt.Sprintf("TextString(%q)", e.Payload)
	case EventArray:
		return fmt.Sprintf("Array(%d)", e.Arg)
	case EventMap:
		return fmt.Sprintf("Map(%d)", e.Arg)
	case EventIndefiniteByteString:
		return "IndefiniteByteString"
	case EventIndefiniteTextString:
		return "IndefiniteTextString"
	case EventIndefiniteArray:
		return "IndefiniteArray"
	case EventIndefiniteMap:
		return "IndefiniteMap"
	case EventTag:
		return fmt.Sprintf("Tag(%d)", e.Arg)
	case EventSimple:
		return fmt.Sprintf("Simple(%d)", e.Arg)
	case EventFloat:
		return fmt.Sprintf("Float(h'%x')", e.Payload)
	case EventBreak:
		return "Break"
	case EventEnd:
		return "End"
	default:
		return fmt.Sprintf("Event(kind=%d)", uint8(e.Kind))
	}
}
