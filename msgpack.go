package hxattrs

import (
	"maps"
	"slices"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ msgpack.CustomEncoder = Attrs{}
	_ msgpack.CustomDecoder = (*Attrs)(nil)
)

// EncodeMsgpack encodes the bag as a two element array: the bindings map
// with names in ascending order, then the omission set. Equal bags always
// encode to identical bytes.
func (a Attrs) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeArrayLen(2); err != nil {
		return err
	}
	if err := enc.EncodeMapLen(len(a.values)); err != nil {
		return err
	}
	for _, k := range slices.Sorted(maps.Keys(a.values)) {
		if err := enc.EncodeString(k); err != nil {
			return err
		}
		if err := enc.EncodeString(a.values[k]); err != nil {
			return err
		}
	}
	omit := slices.Clone(a.omit)
	slices.Sort(omit)
	if err := enc.EncodeArrayLen(len(omit)); err != nil {
		return err
	}
	for _, n := range omit {
		if err := enc.EncodeString(n); err != nil {
			return err
		}
	}
	return nil
}

// DecodeMsgpack decodes a bag written by EncodeMsgpack.
func (a *Attrs) DecodeMsgpack(dec *msgpack.Decoder) error {
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	if n != 2 {
		return ErrInvalidFormat
	}

	size, err := dec.DecodeMapLen()
	if err != nil {
		return err
	}
	var values map[string]string
	if size > 0 {
		values = make(map[string]string, size)
	}
	for i := 0; i < size; i++ {
		k, err := dec.DecodeString()
		if err != nil {
			return err
		}
		v, err := dec.DecodeString()
		if err != nil {
			return err
		}
		values[k] = v
	}

	count, err := dec.DecodeArrayLen()
	if err != nil {
		return err
	}
	var omit []string
	for i := 0; i < count; i++ {
		name, err := dec.DecodeString()
		if err != nil {
			return err
		}
		omit = append(omit, name)
	}

	*a = Attrs{values: values, omit: omit}
	return nil
}
