package mock

import (
	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	channeltypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

// IBCApp contains IBC application module callbacks as defined in 05-port.
// Each field may be set to override the mock module's default behaviour
// for a single test.
type IBCApp struct {
	PortID string

	OnChanOpenInit func(
		ctx host.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID string,
		channelID string,
		counterparty channeltypes.Counterparty,
		version string,
	) (string, error)

	OnChanOpenTry func(
		ctx host.Context,
		order channeltypes.Order,
		connectionHops []string,
		portID,
		channelID string,
		counterparty channeltypes.Counterparty,
		counterpartyVersion string,
	) (version string, err error)

	OnChanOpenAck func(
		ctx host.Context,
		portID,
		channelID string,
		counterpartyChannelID string,
		counterpartyVersion string,
	) error

	OnChanOpenConfirm func(
		ctx host.Context,
		portID,
		channelID string,
	) error

	OnChanCloseInit func(
		ctx host.Context,
		portID,
		channelID string,
	) error

	OnChanCloseConfirm func(
		ctx host.Context,
		portID,
		channelID string,
	) error

	// OnRecvPacket must return an acknowledgement that implements the
	// Acknowledgement interface, or nil for an asynchronous acknowledgement.
	OnRecvPacket func(
		ctx host.Context,
		packet channeltypes.Packet,
		relayer string,
	) exported.Acknowledgement

	OnAcknowledgementPacket func(
		ctx host.Context,
		packet channeltypes.Packet,
		acknowledgement []byte,
		relayer string,
	) error

	OnTimeoutPacket func(
		ctx host.Context,
		packet channeltypes.Packet,
		relayer string,
	) error
}

// NewIBCApp returns an IBCApp with no callbacks overridden.
func NewIBCApp(portID string) *IBCApp {
	return &IBCApp{PortID: portID}
}
