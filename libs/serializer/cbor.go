package serializer

import (
	"github.com/hyp3rd/ewrap"
	"github.com/ugorji/go/codec"
)

// CborSerializer serializes snapshots with the CBOR wire format.
type CborSerializer struct{}

// Marshal serializes the given value into a byte slice.
func (*CborSerializer) Marshal(v any) ([]byte, error) {
	var data []byte

	err := codec.NewEncoderBytes(&data, &codec.CborHandle{}).Encode(v)
	if err != nil {
		return nil, ewrap.Wrap(err, "failed to marshal cbor")
	}

	return data, nil
}

// Unmarshal deserializes the given byte slice into the given value.
func (*CborSerializer) Unmarshal(data []byte, v any) error {
	err := codec.NewDecoderBytes(data, &codec.CborHandle{}).Decode(v)
	if err != nil {
		return ewrap.Wrap(err, "failed to unmarshal cbor")
	}

	return nil
}
