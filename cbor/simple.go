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

// Well-known simple values (major type 7)
const (
	SimpleFalse     uint8 = 20
	SimpleTrue      uint8 = 21
	SimpleNull      uint8 = 22
	SimpleUndefined uint8 = 23
)

// Simple values 24-31 have no valid encoding
const (
	simpleReservedMin uint8 = 24
	simpleReservedMax uint8 = 31
)

func isReservedSimple(v uint8) bool {
	return v >= simpleReservedMin && v <= simpleReservedMax
}
