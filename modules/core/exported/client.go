package exported

import (
	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
)

// Status represents the status of a client
type Status string

const (
	// TypeClientMisbehaviour is the shared evidence misbehaviour type
	TypeClientMisbehaviour string = "client_misbehaviour"

	// Tendermint is used to indicate that the client uses the Tendermint Consensus Algorithm.
	Tendermint string = "07-tendermint"

	// Mock is the client type of the test-double light client.
	Mock string = "00-mock"

	// Active is a status type of a client. An active client is allowed to be used.
	Active Status = "Active"

	// Frozen is a status type of a client. A frozen client is not allowed to be used.
	Frozen Status = "Frozen"

	// Expired is a status type of a client. An expired client is not allowed to be used.
	Expired Status = "Expired"

	// Unknown indicates there was an error in determining the status of a client.
	Unknown Status = "Unknown"
)

// ClientState defines the required common functions for light clients.
type ClientState interface {
	ClientType() string
	GetLatestHeight() Height
	Validate() error

	// Status must return the status of the client. Only Active clients are allowed to process packets.
	Status(ctx host.Context, clientStore host.KVStore, cdc *codec.Codec) Status

	// GetTimestampAtHeight must return the timestamp for the consensus state associated with the provided height.
	GetTimestampAtHeight(clientStore host.KVStore, cdc *codec.Codec, height Height) (uint64, error)

	// Initialize is called upon client creation. Clients must validate
	// the initial consensus state and set their initial state in the
	// provided client store.
	Initialize(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, consensusState ConsensusState) error

	// VerifyMembership is a generic proof verification method which verifies
	// a proof of the existence of a value at a given path at the specified height.
	// The caller is expected to construct the full path from a commitment
	// prefix and a standardized path.
	VerifyMembership(
		ctx host.Context,
		clientStore host.KVStore,
		cdc *codec.Codec,
		height Height,
		delayTimePeriod uint64,
		delayBlockPeriod uint64,
		proof []byte,
		path Path,
		value []byte,
	) error

	// VerifyNonMembership is a generic proof verification method which
	// verifies the absence of a given path at a specified height.
	VerifyNonMembership(
		ctx host.Context,
		clientStore host.KVStore,
		cdc *codec.Codec,
		height Height,
		delayTimePeriod uint64,
		delayBlockPeriod uint64,
		proof []byte,
		path Path,
	) error

	// VerifyClientMessage must verify a ClientMessage, either a header or
	// misbehaviour evidence. Calls to CheckForMisbehaviour, UpdateState and
	// UpdateStateOnMisbehaviour assume the message has already been verified.
	VerifyClientMessage(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, clientMsg ClientMessage) error

	// CheckForMisbehaviour checks for evidence of a misbehaviour in a Header
	// or Misbehaviour type. It assumes the ClientMessage has already been verified.
	CheckForMisbehaviour(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, clientMsg ClientMessage) bool

	// UpdateStateOnMisbehaviour should perform appropriate state changes on a
	// client state given that misbehaviour has been detected and verified.
	UpdateStateOnMisbehaviour(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, clientMsg ClientMessage)

	// UpdateState updates and stores as necessary any associated information
	// for a client, such as the ClientState and corresponding ConsensusState.
	// Upon successful update, a list of consensus heights is returned.
	// It assumes the ClientMessage has already been verified.
	UpdateState(ctx host.Context, cdc *codec.Codec, clientStore host.KVStore, clientMsg ClientMessage) []Height

	// VerifyUpgradeAndUpdateState verifies that the counterparty committed
	// to the upgraded client and consensus states at the pre-agreed plan
	// height and, on success, replaces the stored states. Proof heights are
	// not included as an upgrade is expected to pass only on the last
	// height committed by the current revision.
	VerifyUpgradeAndUpdateState(
		ctx host.Context,
		cdc *codec.Codec,
		clientStore host.KVStore,
		newClient ClientState,
		newConsState ConsensusState,
		upgradeClientProof,
		upgradeConsStateProof []byte,
	) error
}

// ConsensusState is the per-height snapshot of a counterparty recorded
// at client update time.
type ConsensusState interface {
	ClientType() string

	// GetRoot returns the commitment root of the consensus state,
	// which is used for key-value pair verification.
	GetRoot() Root

	// GetTimestamp returns the timestamp (in nanoseconds) of the consensus state
	GetTimestamp() uint64

	ValidateBasic() error
}

// ClientMessage is an interface used to update a client. It can be a
// Header or Misbehaviour evidence.
type ClientMessage interface {
	ClientType() string
	ValidateBasic() error
}

// Height is a wrapper interface over clienttypes.Height;
// all clients must use the concrete implementation in types.
type Height interface {
	IsZero() bool
	LT(Height) bool
	LTE(Height) bool
	EQ(Height) bool
	GT(Height) bool
	GTE(Height) bool
	GetRevisionNumber() uint64
	GetRevisionHeight() uint64
	Increment() Height
	Decrement() (Height, bool)
	String() string
}

// String returns the string representation of a client status.
func (s Status) String() string {
	return string(s)
}
