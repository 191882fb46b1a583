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
	"errors"
	"fmt"
	"math"
)

// ArrayInfo extracts array item count and header size from CBOR array data.
// Returns (count, headerSize, isIndefinite). Count is -1 for invalid headers.
func ArrayInfo(data []byte) (int, uint32, bool) {
	return containerInfo(data, CborTypeArray)
}

// MapInfo extracts map pair count and header size from CBOR map data.
// Returns (count, headerSize, isIndefinite). Count is -1 for invalid headers.
func MapInfo(data []byte) (int, uint32, bool) {
	return containerInfo(data, CborTypeMap)
}

func containerInfo(data []byte, majorType uint8) (int, uint32, bool) {
	h, n, err := ParseHeader(data)
	if err != nil || h.MajorType() != majorType {
		return -1, 0, false
	}
	if h.IsIndefinite() {
		return 0, 1, true
	}
	count, _ := h.Argument()
	// Counts are used for offset arithmetic, so keep them within int32
	if count > math.MaxInt32 {
		return -1, 0, false
	}
	// #nosec G115 -- bounded by the check above and by the 9-byte header size
	return int(count), uint32(n), false
}

// ListLength returns the number of items in the definite-length CBOR array at
// the start of cborData
func ListLength(cborData []byte) (int, error) {
	h, _, err := ParseHeader(cborData)
	if err != nil {
		return 0, err
	}
	if h.MajorType() != CborTypeArray {
		return 0, fmt.Errorf(
			"expected array (0x%x), got 0x%x",
			CborTypeArray,
			h.MajorType(),
		)
	}
	if h.IsIndefinite() {
		return 0, errors.New("indefinite length arrays not supported")
	}
	count, _ := h.Argument()
	if count > math.MaxInt32 {
		return 0, errors.New("array length exceeds maximum int32 value")
	}
	// #nosec G115 -- bounded by the check above
	return int(count), nil
}
