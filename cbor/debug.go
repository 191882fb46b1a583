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
	"math"
)

type dumpLevel struct {
	remaining  uint64
	indefinite bool
}

// DumpEvents generates an indented listing of the events in data for debugging
// purposes. Items nested in containers and tags are indented by two spaces per
// level. On a decode failure, the listing up to the failure is returned along
// with the error.
func DumpEvents(data []byte, prefix string) (string, error) {
	var ret bytes.Buffer
	var stack []dumpLevel
	// Marks the completion of one item, which may complete its parents in turn
	completeItem := func() {
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.indefinite {
				return
			}
			top.remaining--
			if top.remaining > 0 {
				return
			}
			stack = stack[:len(stack)-1]
		}
	}
	dec := NewDecoder(data)
	for {
		event, err := dec.DecodeEvent()
		if err != nil {
			return ret.String(), err
		}
		if event.Kind == EventEnd {
			return ret.String(), nil
		}
		if event.Kind == EventBreak && len(stack) > 0 && stack[len(stack)-1].indefinite {
			stack = stack[:len(stack)-1]
		}
		ret.WriteString(prefix)
		for range stack {
			ret.WriteString("  ")
		}
		ret.WriteString(event.String())
		ret.WriteString("\n")
		switch event.Kind {
		case EventArray:
			if event.Arg > 0 {
				stack = append(stack, dumpLevel{remaining: event.Arg})
				continue
			}
		case EventTag:
			stack = append(stack, dumpLevel{remaining: 1})
			continue
		case EventMap:
			if event.Arg > 0 {
				remaining := uint64(math.MaxUint64)
				if event.Arg <= math.MaxUint64/2 {
					remaining = event.Arg * 2
				}
				stack = append(stack, dumpLevel{remaining: remaining})
				continue
			}
		case EventIndefiniteByteString, EventIndefiniteTextString, EventIndefiniteArray, EventIndefiniteMap:
			stack = append(stack, dumpLevel{indefinite: true})
			continue
		}
		completeItem()
	}
}
