// Package codec provides the binary codec used for every value the
// core writes to a host store, plus a type-agnostic envelope for
// opaque, client-type-specific payloads (client states, consensus
// states, headers and misbehaviour evidence).
package codec

import (
	"reflect"

	errorsmod "cosmossdk.io/errors"
	"github.com/fxamacker/cbor/v2"
)

const codespace = "codec"

var (
	// ErrPackAny is returned when a value cannot be packed into an Any.
	ErrPackAny = errorsmod.Register(codespace, 2, "failed packing value into Any")

	// ErrUnpackAny is returned when an Any cannot be unpacked into a
	// registered concrete type.
	ErrUnpackAny = errorsmod.Register(codespace, 3, "failed unpacking value from Any")
)

// Any wraps an opaque payload together with the type URL under which
// its concrete type was registered. The core never interprets Value;
// only the registered implementation decodes it.
type Any struct {
	TypeUrl string `cbor:"1,keyasint"`
	Value   []byte `cbor:"2,keyasint"`
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	// Core canonical encoding keeps store values and commitments
	// deterministic across hosts.
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Codec marshals concrete types with deterministic cbor and resolves
// Any envelopes through a type-URL registry.
type Codec struct {
	typeURLs map[string]reflect.Type
	types    map[reflect.Type]string
}

// NewCodec returns a codec with an empty registry.
func NewCodec() *Codec {
	return &Codec{
		typeURLs: make(map[string]reflect.Type),
		types:    make(map[reflect.Type]string),
	}
}

// RegisterImplementation registers the concrete type of the provided
// prototype under the given type URL. The prototype is typically a
// pointer to the zero value, e.g. &ClientState{}.
func (c *Codec) RegisterImplementation(typeURL string, prototype interface{}) {
	ty := reflect.TypeOf(prototype)
	c.typeURLs[typeURL] = ty
	c.types[ty] = typeURL
}

// Marshal encodes a concrete value.
func (*Codec) Marshal(v interface{}) ([]byte, error) {
	return encMode.Marshal(v)
}

// MustMarshal encodes a concrete value, panicking on failure. Failures
// indicate a host-integration defect, not a user error.
func (c *Codec) MustMarshal(v interface{}) []byte {
	bz, err := c.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}

// Unmarshal decodes bytes into the provided concrete value.
func (*Codec) Unmarshal(bz []byte, v interface{}) error {
	return decMode.Unmarshal(bz, v)
}

// MustUnmarshal decodes bytes into the provided concrete value,
// panicking on failure.
func (c *Codec) MustUnmarshal(bz []byte, v interface{}) {
	if err := c.Unmarshal(bz, v); err != nil {
		panic(err)
	}
}

// MarshalInterface packs a registered concrete value into an Any
// envelope and encodes the envelope.
func (c *Codec) MarshalInterface(v interface{}) ([]byte, error) {
	any, err := c.PackAny(v)
	if err != nil {
		return nil, err
	}
	return c.Marshal(any)
}

// UnmarshalInterface decodes an Any envelope and unpacks it into its
// registered concrete type.
func (c *Codec) UnmarshalInterface(bz []byte) (interface{}, error) {
	var any Any
	if err := c.Unmarshal(bz, &any); err != nil {
		return nil, errorsmod.Wrap(ErrUnpackAny, err.Error())
	}
	return c.UnpackAny(any)
}

// PackAny wraps a registered concrete value in an Any envelope.
func (c *Codec) PackAny(v interface{}) (Any, error) {
	typeURL, ok := c.types[reflect.TypeOf(v)]
	if !ok {
		return Any{}, errorsmod.Wrapf(ErrPackAny, "type %T is not registered", v)
	}
	bz, err := c.Marshal(v)
	if err != nil {
		return Any{}, errorsmod.Wrap(ErrPackAny, err.Error())
	}
	return Any{TypeUrl: typeURL, Value: bz}, nil
}

// UnpackAny resolves an Any envelope into a new instance of its
// registered concrete type.
func (c *Codec) UnpackAny(any Any) (interface{}, error) {
	ty, ok := c.typeURLs[any.TypeUrl]
	if !ok {
		return nil, errorsmod.Wrapf(ErrUnpackAny, "type URL %s is not registered", any.TypeUrl)
	}
	v := reflect.New(ty.Elem()).Interface()
	if err := c.Unmarshal(any.Value, v); err != nil {
		return nil, errorsmod.Wrap(ErrUnpackAny, err.Error())
	}
	return v, nil
}
