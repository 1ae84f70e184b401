package types

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	ibcerrors "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/errors"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// MustMarshalClientState attempts to encode a ClientState wrapped in
// its Any envelope. It panics on error.
func MustMarshalClientState(cdc *codec.Codec, clientState exported.ClientState) []byte {
	bz, err := cdc.MarshalInterface(clientState)
	if err != nil {
		panic(err)
	}
	return bz
}

// MustUnmarshalClientState attempts to decode and return a ClientState
// from an Any envelope. It panics on error.
func MustUnmarshalClientState(cdc *codec.Codec, bz []byte) exported.ClientState {
	clientState, err := UnmarshalClientState(cdc, bz)
	if err != nil {
		panic(err)
	}
	return clientState
}

// UnmarshalClientState returns a ClientState decoded from its Any envelope.
func UnmarshalClientState(cdc *codec.Codec, bz []byte) (exported.ClientState, error) {
	v, err := cdc.UnmarshalInterface(bz)
	if err != nil {
		return nil, err
	}
	clientState, ok := v.(exported.ClientState)
	if !ok {
		return nil, errorsmod.Wrapf(ibcerrors.ErrInvalidType, "cannot unpack %T into ClientState", v)
	}
	return clientState, nil
}

// MustMarshalConsensusState attempts to encode a ConsensusState wrapped
// in its Any envelope. It panics on error.
func MustMarshalConsensusState(cdc *codec.Codec, consensusState exported.ConsensusState) []byte {
	bz, err := cdc.MarshalInterface(consensusState)
	if err != nil {
		panic(err)
	}
	return bz
}

// MustUnmarshalConsensusState attempts to decode and return a
// ConsensusState from an Any envelope. It panics on error.
func MustUnmarshalConsensusState(cdc *codec.Codec, bz []byte) exported.ConsensusState {
	consensusState, err := UnmarshalConsensusState(cdc, bz)
	if err != nil {
		panic(err)
	}
	return consensusState
}

// UnmarshalConsensusState returns a ConsensusState decoded from its Any
// envelope.
func UnmarshalConsensusState(cdc *codec.Codec, bz []byte) (exported.ConsensusState, error) {
	v, err := cdc.UnmarshalInterface(bz)
	if err != nil {
		return nil, err
	}
	consensusState, ok := v.(exported.ConsensusState)
	if !ok {
		return nil, errorsmod.Wrapf(ibcerrors.ErrInvalidType, "cannot unpack %T into ConsensusState", v)
	}
	return consensusState, nil
}

// MarshalClientMessage encodes a ClientMessage wrapped in its Any envelope.
func MarshalClientMessage(cdc *codec.Codec, clientMessage exported.ClientMessage) ([]byte, error) {
	return cdc.MarshalInterface(clientMessage)
}

// MustMarshalClientMessage encodes a ClientMessage wrapped in its Any
// envelope. It panics on error.
func MustMarshalClientMessage(cdc *codec.Codec, clientMessage exported.ClientMessage) []byte {
	bz, err := MarshalClientMessage(cdc, clientMessage)
	if err != nil {
		panic(err)
	}
	return bz
}

// UnmarshalClientMessage returns a ClientMessage decoded from its Any
// envelope.
func UnmarshalClientMessage(cdc *codec.Codec, bz []byte) (exported.ClientMessage, error) {
	v, err := cdc.UnmarshalInterface(bz)
	if err != nil {
		return nil, err
	}
	clientMessage, ok := v.(exported.ClientMessage)
	if !ok {
		return nil, errorsmod.Wrapf(ibcerrors.ErrInvalidType, "cannot unpack %T into ClientMessage", v)
	}
	return clientMessage, nil
}
