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

package main

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/blinklabs-io/cborevent/cbor"
	_cbor "github.com/fxamacker/cbor/v2"
	"github.com/x448/float16"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// eventRecord is the JSON/YAML form of one event
type eventRecord struct {
	Offset int     `json:"offset"          yaml:"offset"`
	Kind   string  `json:"kind"            yaml:"kind"`
	Value  *uint64 `json:"value,omitempty" yaml:"value,omitempty"`
	Hex    string  `json:"hex,omitempty"   yaml:"hex,omitempty"`
	Text   string  `json:"text,omitempty"  yaml:"text,omitempty"`
	Float  string  `json:"float,omitempty" yaml:"float,omitempty"`
}

func newEventRecord(offset int, event cbor.Event) eventRecord {
	ret := eventRecord{
		Offset: offset,
		Kind:   event.Kind.String(),
	}
	if event.Kind.HasArg() {
		value := event.Arg
		ret.Value = &value
	}
	switch event.Kind {
	case cbor.EventByteString:
		ret.Hex = hex.EncodeToString(event.Payload)
	case cbor.EventTextString:
		if utf8.Valid(event.Payload) {
			ret.Text = string(event.Payload)
		} else {
			ret.Hex = hex.EncodeToString(event.Payload)
		}
	case cbor.EventFloat:
		ret.Hex = hex.EncodeToString(event.Payload)
		ret.Float = floatString(event.Payload)
	}
	return ret
}

// floatString renders the raw bytes of a half, single or double precision float
func floatString(raw []byte) string {
	var v float64
	switch len(raw) {
	case 2:
		v = float64(float16.Frombits(binary.BigEndian.Uint16(raw)).Float32())
	case 4:
		v = float64(math.Float32frombits(binary.BigEndian.Uint32(raw)))
	case 8:
		v = math.Float64frombits(binary.BigEndian.Uint64(raw))
	default:
		return ""
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// decodeRecords decodes every event in data. On failure, the records decoded so
// far are returned along with the error.
func decodeRecords(data []byte) ([]eventRecord, error) {
	dec := cbor.NewDecoder(data)
	var ret []eventRecord
	for {
		offset := dec.Position()
		event, err := dec.DecodeEvent()
		if err != nil {
			return ret, err
		}
		if event.Kind == cbor.EventEnd {
			return ret, nil
		}
		ret = append(ret, newEventRecord(offset, event))
	}
}

func writeEvents(data []byte, w io.Writer, format string, logger *slog.Logger) error {
	switch format {
	case formatText:
		dump, err := cbor.DumpEvents(data, "")
		if _, writeErr := io.WriteString(w, dump); writeErr != nil {
			return writeErr
		}
		return err
	case formatJSON:
		records, err := decodeRecords(data)
		logger.Debug("decoded events", "count", len(records))
		enc := json.NewEncoder(w)
		for _, record := range records {
			if encErr := enc.Encode(record); encErr != nil {
				return encErr
			}
		}
		return err
	case formatYAML:
		records, err := decodeRecords(data)
		logger.Debug("decoded events", "count", len(records))
		if len(records) > 0 {
			out, yamlErr := yaml.Marshal(records)
			if yamlErr != nil {
				return fmt.Errorf("marshal yaml: %w", yamlErr)
			}
			if _, writeErr := w.Write(out); writeErr != nil {
				return writeErr
			}
		}
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// diagCBOR writes diagnostic notation for each top-level item in data, one per line
func diagCBOR(data []byte, w io.Writer) error {
	if len(data) == 0 {
		return errors.New("empty input: expected CBOR data")
	}
	remaining := data
	for len(remaining) > 0 {
		notation, rest, err := _cbor.DiagnoseFirst(remaining)
		if err != nil {
			offset := len(data) - len(remaining)
			return fmt.Errorf("diagnose CBOR at byte %d: %w", offset, err)
		}
		if _, err := fmt.Fprintln(w, notation); err != nil {
			return err
		}
		remaining = rest
	}
	return nil
}

// reencodeCBOR transcodes data into shortest form and writes its hex and/or its digest
func reencodeCBOR(
	data []byte,
	w io.Writer,
	printHex bool,
	printDigest bool,
	logger *slog.Logger,
) error {
	var buf bytes.Buffer
	count, err := cbor.Transcode(&buf, data)
	if err != nil {
		return fmt.Errorf("transcode: %w", err)
	}
	logger.Debug(
		"transcoded events",
		"count", count,
		"input_bytes", len(data),
		"output_bytes", buf.Len(),
	)
	if printHex {
		if _, err := fmt.Fprintln(w, hex.EncodeToString(buf.Bytes())); err != nil {
			return err
		}
	}
	if printDigest {
		sum := blake2b.Sum256(buf.Bytes())
		if _, err := fmt.Fprintf(w, "blake2b-256: %x\n", sum); err != nil {
			return err
		}
	}
	return nil
}
