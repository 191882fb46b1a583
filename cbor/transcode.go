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
	"io"
)

// Transcode decodes every event in data and encodes it to w, stopping at End.
// It returns the number of events written, not counting End.
//
// Arguments are rewritten in their shortest form, so the output matches the
// input byte for byte only when the input already uses shortest-form headers.
func Transcode(w io.Writer, data []byte) (int, error) {
	dec := NewDecoder(data)
	enc := NewEncoder(w)
	count := 0
	for {
		event, err := dec.DecodeEvent()
		if err != nil {
			return count, err
		}
		if event.Kind == EventEnd {
			return count, nil
		}
		if err := enc.EncodeEvent(event); err != nil {
			return count, fmt.Errorf("encode event %d: %w", count, err)
		}
		count++
	}
}

// DecodeAll returns every event in data, not including the final End
func DecodeAll(data []byte) ([]Event, error) {
	dec := NewDecoder(data)
	var ret []Event
	for {
		event, err := dec.DecodeEvent()
		if err != nil {
			return ret, err
		}
		if event.Kind == EventEnd {
			return ret, nil
		}
		ret = append(ret, event)
	}
}

// EncodeAll returns the wire bytes for a sequence of events
func EncodeAll(events []Event) ([]byte, error) {
	var ret []byte
	for i, event := range events {
		var err error
		ret, err = AppendEvent(ret, event)
		if err != nil {
			return nil, fmt.Errorf("encode event %d: %w", i, err)
		}
	}
	return ret, nil
}
