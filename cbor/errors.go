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
)

var (
	// ErrTruncatedInput is returned when fewer bytes remain than a header or payload requires
	ErrTruncatedInput = errors.New("truncated input")
	// ErrReservedAdditionalInformation is returned for additional information 28, 29 and 30
	ErrReservedAdditionalInformation = errors.New("reserved additional information")
	// ErrInvalidIndefiniteLength is returned for the indefinite-length marker on an integer or tag
	ErrInvalidIndefiniteLength = errors.New("indefinite length not allowed for major type")
	// ErrLengthOverflow is returned when a length does not fit the addressable range
	ErrLengthOverflow = errors.New("length overflow")
	// ErrAlreadyFailed is returned by every decode call after the first failure
	ErrAlreadyFailed = errors.New("decoder already failed")
	// ErrReservedSimpleValue is returned for simple values 24 through 31
	ErrReservedSimpleValue = errors.New("reserved simple value")
	// ErrInvalidFloatWidth is returned for float payloads that are not 2, 4 or 8 bytes long
	ErrInvalidFloatWidth = errors.New("invalid float width")
)

// DecodeError describes a failure to decode the item starting at Offset
type DecodeError struct {
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode item at offset %d: %s", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
