package test

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/blinklabs-io/cborevent/cbor"
)

// DecodeHexString is a helper function for tests that decodes hex strings. It doesn't return
// an error value, which makes it usable inline. Whitespace between hex digits is ignored, so
// fixtures can be split per item ("83 01 02 03").
func DecodeHexString(hexData string) []byte {
	hexData = strings.Join(strings.Fields(hexData), "")
	decoded, err := hex.DecodeString(hexData)
	if err != nil {
		panic(fmt.Sprintf("error decoding hex: %s", err))
	}
	return decoded
}

// EncodeEvents returns the wire bytes for the given events, panicking if any of them
// cannot be encoded
func EncodeEvents(events ...cbor.Event) []byte {
	ret, err := cbor.EncodeAll(events)
	if err != nil {
		panic(fmt.Sprintf("error encoding events: %s", err))
	}
	return ret
}
