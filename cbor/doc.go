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

// Package cbor implements an event-level codec for CBOR (RFC 8949).
//
// The codec translates between a byte buffer and a flat sequence of events, one
// per data item header plus its payload. It never builds a tree of values:
// arrays, maps and tags are reported as a header event and the caller counts the
// events that follow.
//
// # Key Types
//
//   - Header: the initial byte and following bytes of one item, with IsSound
//     and Argument
//   - Event: one decoded item (kind, numeric argument, borrowed payload)
//   - Decoder: reads events from a buffer; poisoned by its first failure
//   - Encoder: writes events to an io.Writer in shortest form
//
// # Example
//
//	dec := cbor.NewDecoder(data)
//	for {
//	    event, err := dec.DecodeEvent()
//	    if err != nil {
//	        return err
//	    }
//	    if event.Kind == cbor.EventEnd {
//	        break
//	    }
//	    if err := enc.EncodeEvent(event); err != nil {
//	        return err
//	    }
//	}
//
// # Gotchas
//
//  1. Payloads are borrowed: decoded string and float events reference the
//     input buffer. Use Event.Detach before reusing the buffer.
//  2. Decoding is liberal and encoding is shortest-form: a non-minimal header
//     decodes fine but re-encodes to fewer bytes.
//  3. NegativeInteger carries the encoded magnitude n, standing for -1-n.
//  4. Float payloads are raw big-endian bytes and are never interpreted.
//  5. Text strings are not checked for valid UTF-8.
//  6. Simple values 24-31 cannot be encoded, and 0xf8 followed by a value below
//     32 is rejected on decode.
package cbor
