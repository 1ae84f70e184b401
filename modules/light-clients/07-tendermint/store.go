package tendermint

import (
	"encoding/binary"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

/*
This file contains the logic for storage and iteration over `IterationKey` metadata that is stored
for each consensus state. The consensus state key specified in ICS-24 and expected by counterparty chains
stores the consensus state under the key: `consensusStates/{revision_number}-{revision_height}`.
The processed time and processed height are stored alongside it so packet delay periods can be enforced.
*/

const (
	// KeyProcessedTime is the key suffix under which the host timestamp at
	// consensus state storage time is recorded.
	KeyProcessedTime = "/processedTime"
	// KeyProcessedHeight is the key suffix under which the host height at
	// consensus state storage time is recorded.
	KeyProcessedHeight = "/processedHeight"
)

// setClientState stores the client state
func setClientState(clientStore host.KVStore, cdc *codec.Codec, clientState *ClientState) {
	key := ibchost.ClientStateKey()
	val := clienttypes.MustMarshalClientState(cdc, clientState)
	if err := clientStore.Set(key, val); err != nil {
		panic(err)
	}
}

// setConsensusState stores the consensus state at the given height.
func setConsensusState(clientStore host.KVStore, cdc *codec.Codec, consensusState *ConsensusState, height exported.Height) {
	key := ibchost.ConsensusStateKey(height)
	val := clienttypes.MustMarshalConsensusState(cdc, consensusState)
	if err := clientStore.Set(key, val); err != nil {
		panic(err)
	}
}

// GetConsensusState retrieves the consensus state from the client prefixed store.
// If the consensus state does not exist for the given height, found is false.
func GetConsensusState(store host.KVStore, cdc *codec.Codec, height exported.Height) (*ConsensusState, bool) {
	bz, err := store.Get(ibchost.ConsensusStateKey(height))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return nil, false
	}

	consensusState := clienttypes.MustUnmarshalConsensusState(cdc, bz)
	tmConsensusState, ok := consensusState.(*ConsensusState)
	if !ok {
		return nil, false
	}

	return tmConsensusState, true
}

// deleteConsensusState deletes the consensus state at the given height
func deleteConsensusState(clientStore host.KVStore, height exported.Height) {
	key := ibchost.ConsensusStateKey(height)
	if err := clientStore.Delete(key); err != nil {
		panic(err)
	}
}

// ProcessedTimeKey returns the key under which the processed time will be stored in the client store.
func ProcessedTimeKey(height exported.Height) []byte {
	return append([]byte(ibchost.ConsensusStatePath(height)), []byte(KeyProcessedTime)...)
}

// SetProcessedTime stores the time at which a header was processed and the corresponding consensus state was created.
// This is useful when validating whether a packet has reached the time specified delay period in the tendermint client's
// verification functions
func SetProcessedTime(clientStore host.KVStore, height exported.Height, timeNs uint64) {
	key := ProcessedTimeKey(height)
	val := make([]byte, 8)
	binary.BigEndian.PutUint64(val, timeNs)
	if err := clientStore.Set(key, val); err != nil {
		panic(err)
	}
}

// GetProcessedTime gets the time (in nanoseconds) at which this chain received and processed a tendermint header.
// This is used to validate that a received packet has passed the time delay period.
func GetProcessedTime(clientStore host.KVStore, height exported.Height) (uint64, bool) {
	bz, err := clientStore.Get(ProcessedTimeKey(height))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return 0, false
	}
	return binary.BigEndian.Uint64(bz), true
}

// ProcessedHeightKey returns the key under which the processed height will be stored in the client store.
func ProcessedHeightKey(height exported.Height) []byte {
	return append([]byte(ibchost.ConsensusStatePath(height)), []byte(KeyProcessedHeight)...)
}

// SetProcessedHeight stores the height at which a header was processed and the corresponding consensus state was created.
// This is useful when validating whether a packet has reached the specified block delay period in the tendermint client's
// verification functions
func SetProcessedHeight(clientStore host.KVStore, consHeight, processedHeight exported.Height) {
	key := ProcessedHeightKey(consHeight)
	val := []byte(processedHeight.String())
	if err := clientStore.Set(key, val); err != nil {
		panic(err)
	}
}

// GetProcessedHeight gets the height at which this chain received and processed a tendermint header.
// This is used to validate that a received packet has passed the block delay period.
func GetProcessedHeight(clientStore host.KVStore, height exported.Height) (exported.Height, bool) {
	bz, err := clientStore.Get(ProcessedHeightKey(height))
	if err != nil {
		panic(err)
	}
	if len(bz) == 0 {
		return nil, false
	}
	processedHeight, err := clienttypes.ParseHeight(string(bz))
	if err != nil {
		return nil, false
	}
	return processedHeight, true
}

// deleteConsensusMetadata deletes the metadata stored for a particular consensus state.
func deleteConsensusMetadata(clientStore host.KVStore, height exported.Height) {
	if err := clientStore.Delete(ProcessedTimeKey(height)); err != nil {
		panic(err)
	}
	if err := clientStore.Delete(ProcessedHeightKey(height)); err != nil {
		panic(err)
	}
}

// setConsensusMetadata sets the processed height and processed time for a given consensus state height.
func setConsensusMetadata(ctx host.Context, clientStore host.KVStore, height exported.Height) {
	setConsensusMetadataWithValues(clientStore, height,
		clienttypes.GetSelfHeight(ctx.ChainID(), ctx.BlockHeight()),
		uint64(ctx.BlockTime().UnixNano()),
	)
}

// setConsensusMetadataWithValues sets the consensus metadata with the provided values
func setConsensusMetadataWithValues(
	clientStore host.KVStore, height,
	processedHeight exported.Height,
	processedTime uint64,
) {
	SetProcessedTime(clientStore, height, processedTime)
	SetProcessedHeight(clientStore, height, processedHeight)
}
