// Package codec encodes the persisted board sequences. JSON mirrors the browser storage
// format the board was first written for; CBOR is a compact deterministic alternative.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// ErrUnknownCodec is returned by ByName for an unsupported codec name
var ErrUnknownCodec = errors.New("unknown codec")

// Codec converts values to and from bytes
type Codec interface {
	Name() string
	// Ext is the file extension used by file-backed stores, without the dot
	Ext() string
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// ByName returns the codec registered under name ("json" or "cbor")
func ByName(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSON{}, nil
	case "cbor":
		return CBOR{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
}

// JSON is the default codec
type JSON struct{}

func (JSON) Name() string { return "json" }
func (JSON) Ext() string  { return "json" }

func (JSON) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (JSON) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2) so the same board always
// produces identical bytes.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}
}

// CBOR encodes with deterministic CBOR
type CBOR struct{}

func (CBOR) Name() string { return "cbor" }
func (CBOR) Ext() string  { return "cbor" }

func (CBOR) Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

func (CBOR) Unmarshal(data []byte, v any) error {
	return cbor.Unmarshal(data, v)
}
