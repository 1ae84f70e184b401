package types

import (
	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	channeltypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// IBCModule defines an interface that implements all the callbacks
// that modules must define as specified in ICS-26
type IBCModule interface {
	// OnChanOpenInit will verify that the relayer-chosen parameters
	// are valid and perform any custom INIT logic.
	// It may return an error if the chosen parameters are invalid
	// in which case the handshake is aborted.
	// If the provided version string is non-empty, OnChanOpenInit should return
	// the version string if valid or an error if the provided version is invalid.
	// If the version string is empty, OnChanOpenInit is expected to
	// return a default version string representing the version(s) it supports.
	// If there is no default version string for the application,
	// it should return an error if the provided version is an empty string.
	OnChanOpenInit(
		ctx host.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID string,
		channelID string,
		counterparty channeltypes.Counterparty,
		version string,
	) (string, error)

	// OnChanOpenTry will verify the relayer-chosen parameters along with the
	// counterparty-chosen version string and perform custom TRY logic.
	// If the relayer-chosen parameters are invalid, the callback must return
	// an error to abort the handshake. If the counterparty-chosen version is not
	// compatible with this module's supported versions, the callback must return
	// an error to abort the handshake. If the versions are compatible, the try
	// callback must select the final version string and return it to core IBC.
	OnChanOpenTry(
		ctx host.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID,
		channelID string,
		counterparty channeltypes.Counterparty,
		counterpartyVersion string,
	) (version string, err error)

	// OnChanOpenAck will error if the counterparty selected version string
	// is invalid to abort the handshake. It may also perform custom ACK logic.
	OnChanOpenAck(
		ctx host.Context,
		portID,
		channelID string,
		counterpartyChannelID string,
		counterpartyVersion string,
	) error

	// OnChanOpenConfirm will perform custom CONFIRM logic and may error to abort the handshake.
	OnChanOpenConfirm(
		ctx host.Context,
		portID,
		channelID string,
	) error

	OnChanCloseInit(
		ctx host.Context,
		portID,
		channelID string,
	) error

	OnChanCloseConfirm(
		ctx host.Context,
		portID,
		channelID string,
	) error

	// OnRecvPacket must return an acknowledgement that implements the
	// Acknowledgement interface. In the case of an asynchronous acknowledgement,
	// nil should be returned.
	// If the acknowledgement returned is successful, the state changes on
	// callback are written, otherwise the application state changes are discarded.
	// In either case the packet is received and the acknowledgement is written
	// (in synchronous cases).
	OnRecvPacket(
		ctx host.Context,
		packet channeltypes.Packet,
		relayer string,
	) exported.Acknowledgement

	OnAcknowledgementPacket(
		ctx host.Context,
		packet channeltypes.Packet,
		acknowledgement []byte,
		relayer string,
	) error

	OnTimeoutPacket(
		ctx host.Context,
		packet channeltypes.Packet,
		relayer string,
	) error
}
