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

const (
	CborTypeUnsignedInteger uint8 = 0x00
	CborTypeNegativeInteger uint8 = 0x20
	CborTypeByteString      uint8 = 0x40
	CborTypeTextString      uint8 = 0x60
	CborTypeArray           uint8 = 0x80
	CborTypeMap             uint8 = 0xa0
	CborTypeTag             uint8 = 0xc0
	CborTypeSimple          uint8 = 0xe0

	// Only the top 3 bits are used to specify the type
	CborTypeMask uint8 = 0xe0
	// The bottom 5 bits carry the additional information
	CborAdditionalInfoMask uint8 = 0x1f

	// Max value able to be stored in a single byte without type prefix
	CborMaxUintSimple uint8 = 0x17
)

// Additional information values with a special meaning
const (
	CborAdditionalInfo1Byte     uint8 = 24
	CborAdditionalInfo2Bytes    uint8 = 25
	CborAdditionalInfo4Bytes    uint8 = 26
	CborAdditionalInfo8Bytes    uint8 = 27
	CborAdditionalInfoIndefLen  uint8 = 31
	cborAdditionalInfoReserved0 uint8 = 28
	cborAdditionalInfoReserved2 uint8 = 30
)

// Fixed single-byte items
const (
	CborIndefByteString uint8 = CborTypeByteString | CborAdditionalInfoIndefLen // 0x5f
	CborIndefTextString uint8 = CborTypeTextString | CborAdditionalInfoIndefLen // 0x7f
	CborIndefArray      uint8 = CborTypeArray | CborAdditionalInfoIndefLen      // 0x9f
	CborIndefMap        uint8 = CborTypeMap | CborAdditionalInfoIndefLen        // 0xbf
	CborBreak           uint8 = CborTypeSimple | CborAdditionalInfoIndefLen     // 0xff
)
