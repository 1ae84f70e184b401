package ibctesting

import (
	"bytes"
	"fmt"

	channeltypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
)

// Path contains two endpoints representing two chains connected over IBC.
type Path struct {
	EndpointA *Endpoint
	EndpointB *Endpoint
}

// NewPath constructs an endpoint for each chain using the default values
// for the endpoints. Each endpoint is updated to have a pointer to the
// counterparty endpoint.
func NewPath(chainA, chainB *TestChain) *Path {
	endpointA := NewDefaultEndpoint(chainA)
	endpointB := NewDefaultEndpoint(chainB)

	endpointA.Counterparty = endpointB
	endpointB.Counterparty = endpointA

	return &Path{
		EndpointA: endpointA,
		EndpointB: endpointB,
	}
}

// SetChannelOrdered sets the channel order for both endpoints to ORDERED.
func (path *Path) SetChannelOrdered() {
	path.EndpointA.Order = channeltypes.ORDERED
	path.EndpointB.Order = channeltypes.ORDERED
}

// RelayPacket attempts to relay the packet first on EndpointA and then on
// EndpointB, receiving it on the counterparty and relaying the written
// acknowledgement back. An error is returned if a relay step fails or the
// packet commitment does not exist on either endpoint.
func (path *Path) RelayPacket(packet channeltypes.Packet) error {
	pc := path.EndpointA.Chain.App.ChannelKeeper.GetPacketCommitment(
		path.EndpointA.Chain.GetContext(), packet.GetSourcePort(), packet.GetSourceChannel(), packet.GetSequence(),
	)
	if bytes.Equal(pc, channeltypes.CommitPacket(packet)) {
		// packet found, relay from A to B
		if err := path.EndpointB.RecvPacket(packet); err != nil {
			return err
		}

		ack, err := ParseAckFromEvents(path.EndpointB.Chain.LastEvents)
		if err != nil {
			return err
		}
		return path.EndpointA.AcknowledgePacket(packet, ack)
	}

	pc = path.EndpointB.Chain.App.ChannelKeeper.GetPacketCommitment(
		path.EndpointB.Chain.GetContext(), packet.GetSourcePort(), packet.GetSourceChannel(), packet.GetSequence(),
	)
	if bytes.Equal(pc, channeltypes.CommitPacket(packet)) {
		// packet found, relay from B to A
		if err := path.EndpointA.RecvPacket(packet); err != nil {
			return err
		}

		ack, err := ParseAckFromEvents(path.EndpointA.Chain.LastEvents)
		if err != nil {
			return err
		}
		return path.EndpointB.AcknowledgePacket(packet, ack)
	}

	return fmt.Errorf("packet commitment does not exist on either endpoint for provided packet")
}
