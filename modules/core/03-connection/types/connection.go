package types

import (
	errorsmod "cosmossdk.io/errors"

	host "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// State defines if a connection is in one of the following states:
// INIT, TRYOPEN, OPEN or UNINITIALIZED.
type State int32

const (
	// Default State
	UNINITIALIZED State = iota
	// A connection end has just started the opening handshake.
	INIT
	// A connection end has acknowledged the handshake step on the counterparty chain.
	TRYOPEN
	// A connection end has completed the handshake.
	OPEN
)

// String implements the Stringer interface
func (s State) String() string {
	switch s {
	case INIT:
		return "INIT"
	case TRYOPEN:
		return "TRYOPEN"
	case OPEN:
		return "OPEN"
	default:
		return "UNINITIALIZED"
	}
}

var _ exported.ConnectionI = (*ConnectionEnd)(nil)

// ConnectionEnd defines a stateful object on a chain connected to
// another separate one. The state is monotonic: it only ever advances
// INIT -> TRYOPEN -> OPEN.
type ConnectionEnd struct {
	// client associated with this connection.
	ClientId string `cbor:"1,keyasint"`
	// versions is the list of IBC versions that can be used or has been
	// used to establish the connection. On INIT it holds the proposed
	// versions, after TRYOPEN exactly the negotiated one.
	Versions []*Version `cbor:"2,keyasint"`
	// current state of the connection end.
	State State `cbor:"3,keyasint"`
	// counterparty chain associated with this connection.
	Counterparty Counterparty `cbor:"4,keyasint"`
	// delay period that must pass before a consensus state can be used
	// for packet-verification. NOTE: delay period is in nanoseconds.
	DelayPeriod uint64 `cbor:"5,keyasint"`
}

// NewConnectionEnd creates a new ConnectionEnd instance.
func NewConnectionEnd(state State, clientID string, counterparty Counterparty, versions []*Version, delayPeriod uint64) ConnectionEnd {
	return ConnectionEnd{
		ClientId:     clientID,
		Versions:     versions,
		State:        state,
		Counterparty: counterparty,
		DelayPeriod:  delayPeriod,
	}
}

// GetState implements the Connection interface
func (c ConnectionEnd) GetState() int32 {
	return int32(c.State)
}

// GetClientID implements the Connection interface
func (c ConnectionEnd) GetClientID() string {
	return c.ClientId
}

// GetCounterparty implements the Connection interface
func (c ConnectionEnd) GetCounterparty() exported.CounterpartyConnectionI {
	return c.Counterparty
}

// GetVersions implements the Connection interface
func (c ConnectionEnd) GetVersions() []exported.Version {
	return VersionsToExported(c.Versions)
}

// GetDelayPeriod implements the Connection interface
func (c ConnectionEnd) GetDelayPeriod() uint64 {
	return c.DelayPeriod
}

// ValidateBasic implements the Connection interface.
// NOTE: the protocol supports that the connection and client IDs match the
// counterparty's.
func (c ConnectionEnd) ValidateBasic() error {
	if err := host.ClientIdentifierValidator(c.ClientId); err != nil {
		return errorsmod.Wrap(err, "invalid client ID")
	}
	if len(c.Versions) == 0 {
		return errorsmod.Wrap(ErrInvalidVersion, "empty connection versions")
	}
	for _, version := range c.Versions {
		if err := ValidateVersion(version); err != nil {
			return err
		}
	}
	return c.Counterparty.ValidateBasic()
}

var _ exported.CounterpartyConnectionI = (*Counterparty)(nil)

// Counterparty defines the counterparty chain's view of a connection:
// its client identifier, its connection identifier and the commitment
// prefix under which it commits protocol records.
type Counterparty struct {
	ClientId     string                        `cbor:"1,keyasint"`
	ConnectionId string                        `cbor:"2,keyasint"`
	Prefix       commitmenttypes.MerklePrefix `cbor:"3,keyasint"`
}

// NewCounterparty creates a new Counterparty instance.
func NewCounterparty(clientID, connectionID string, prefix commitmenttypes.MerklePrefix) Counterparty {
	return Counterparty{
		ClientId:     clientID,
		ConnectionId: connectionID,
		Prefix:       prefix,
	}
}

// GetClientID implements the CounterpartyConnectionI interface
func (c Counterparty) GetClientID() string {
	return c.ClientId
}

// GetConnectionID implements the CounterpartyConnectionI interface
func (c Counterparty) GetConnectionID() string {
	return c.ConnectionId
}

// GetPrefix implements the CounterpartyConnectionI interface
func (c Counterparty) GetPrefix() exported.Prefix {
	return &c.Prefix
}

// ValidateBasic performs a basic validation check of the identifiers and prefix
func (c Counterparty) ValidateBasic() error {
	if c.ConnectionId != "" {
		if err := host.ConnectionIdentifierValidator(c.ConnectionId); err != nil {
			return errorsmod.Wrap(err, "invalid counterparty connection ID")
		}
	}
	if err := host.ClientIdentifierValidator(c.ClientId); err != nil {
		return errorsmod.Wrap(err, "invalid counterparty client ID")
	}
	if c.Prefix.Empty() {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty prefix cannot be empty")
	}
	return nil
}

// IdentifiedConnection pairs a connection end with its identifier, used
// in iteration and query results.
type IdentifiedConnection struct {
	Id           string       `cbor:"1,keyasint"`
	ClientId     string       `cbor:"2,keyasint"`
	Versions     []*Version   `cbor:"3,keyasint"`
	State        State        `cbor:"4,keyasint"`
	Counterparty Counterparty `cbor:"5,keyasint"`
	DelayPeriod  uint64       `cbor:"6,keyasint"`
}

// NewIdentifiedConnection creates a new IdentifiedConnection instance
func NewIdentifiedConnection(connectionID string, conn ConnectionEnd) IdentifiedConnection {
	return IdentifiedConnection{
		Id:           connectionID,
		ClientId:     conn.ClientId,
		Versions:     conn.Versions,
		State:        conn.State,
		Counterparty: conn.Counterparty,
		DelayPeriod:  conn.DelayPeriod,
	}
}

// ValidateBasic performs a basic validation of the connection identifier and connection fields.
func (ic IdentifiedConnection) ValidateBasic() error {
	if err := host.ConnectionIdentifierValidator(ic.Id); err != nil {
		return errorsmod.Wrap(err, "invalid connection ID")
	}
	connection := NewConnectionEnd(ic.State, ic.ClientId, ic.Counterparty, ic.Versions, ic.DelayPeriod)
	return connection.ValidateBasic()
}

// ClientPaths define all the connection paths for a client state.
type ClientPaths struct {
	Paths []string `cbor:"1,keyasint"`
}

// ConnectionPaths define all the connection paths for a given client state.
type ConnectionPaths struct {
	ClientId string   `cbor:"1,keyasint"`
	Paths    []string `cbor:"2,keyasint"`
}

// NewConnectionPaths creates a new ConnectionPaths instance.
func NewConnectionPaths(id string, paths []string) ConnectionPaths {
	return ConnectionPaths{
		ClientId: id,
		Paths:    paths,
	}
}
