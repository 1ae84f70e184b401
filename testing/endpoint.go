package ibctesting

import (
	"fmt"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	connectiontypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
	channeltypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
	"github.com/Salpiglossis/cosmos-ibc-rs/testing/mock"
)

// Endpoint represents one end of a path: a channel end on a connection on
// a client, living on a single test chain. Identifiers are filled in as
// the respective handshake steps execute.
type Endpoint struct {
	Chain        *TestChain
	Counterparty *Endpoint

	ClientID     string
	ConnectionID string
	ChannelID    string

	PortID  string
	Version string
	Order   channeltypes.Order
}

// NewDefaultEndpoint constructs an endpoint for the mock application with
// an unordered channel.
func NewDefaultEndpoint(chain *TestChain) *Endpoint {
	return &Endpoint{
		Chain:   chain,
		PortID:  mock.PortID,
		Version: mock.Version,
		Order:   channeltypes.UNORDERED,
	}
}

// CreateClient creates a mock client on the endpoint's chain tracking the
// counterparty chain at its current height.
func (endpoint *Endpoint) CreateClient() error {
	counterparty := endpoint.Counterparty.Chain

	clientState := mock.NewClientState(counterparty.LatestHeight())
	consensusState := mock.NewConsensusState(uint64(counterparty.CurrentTime.UnixNano()))

	msg := clienttypes.NewMsgCreateClient(clientState, consensusState, endpoint.Chain.SenderAccount)

	ctx := endpoint.Chain.GetContext()
	res, err := endpoint.Chain.App.CreateClient(ctx, msg)
	if err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)

	endpoint.ClientID = res.ClientId
	return nil
}

// UpdateClient updates the endpoint's client to the counterparty chain's
// current height and time.
func (endpoint *Endpoint) UpdateClient() error {
	counterparty := endpoint.Counterparty.Chain

	header := mock.NewHeader(counterparty.LatestHeight(), uint64(counterparty.CurrentTime.UnixNano()))
	msg := clienttypes.NewMsgUpdateClient(endpoint.ClientID, header, endpoint.Chain.SenderAccount)

	ctx := endpoint.Chain.GetContext()
	if _, err := endpoint.Chain.App.UpdateClient(ctx, msg); err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)
	return nil
}

// ConnOpenInit initializes a connection on the endpoint's chain.
func (endpoint *Endpoint) ConnOpenInit() error {
	msg := connectiontypes.NewMsgConnectionOpenInit(
		endpoint.ClientID, endpoint.Counterparty.ClientID,
		DefaultPrefix, ConnectionVersion, DefaultDelayPeriod,
		endpoint.Chain.SenderAccount,
	)

	ctx := endpoint.Chain.GetContext()
	res, err := endpoint.Chain.App.ConnectionOpenInit(ctx, msg)
	if err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)

	endpoint.ConnectionID = res.ConnectionId
	return nil
}

// ConnOpenTry relays the counterparty's INIT connection end to the
// endpoint's chain.
func (endpoint *Endpoint) ConnOpenTry() error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	counterpartyClient, proofClient, proofInit, proofHeight := endpoint.Counterparty.connectionHandshakeProof()

	msg := connectiontypes.NewMsgConnectionOpenTry(
		endpoint.ClientID, endpoint.Counterparty.ConnectionID, endpoint.Counterparty.ClientID,
		counterpartyClient, DefaultPrefix,
		[]*connectiontypes.Version{ConnectionVersion}, DefaultDelayPeriod,
		proofInit, proofClient, proofHeight,
		endpoint.Chain.SenderAccount,
	)

	ctx := endpoint.Chain.GetContext()
	res, err := endpoint.Chain.App.ConnectionOpenTry(ctx, msg)
	if err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)

	endpoint.ConnectionID = res.ConnectionId
	return nil
}

// ConnOpenAck relays the counterparty's TRYOPEN connection end back to the
// initiating chain.
func (endpoint *Endpoint) ConnOpenAck() error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	counterpartyClient, proofClient, proofTry, proofHeight := endpoint.Counterparty.connectionHandshakeProof()

	msg := connectiontypes.NewMsgConnectionOpenAck(
		endpoint.ConnectionID, endpoint.Counterparty.ConnectionID, counterpartyClient,
		proofTry, proofClient, proofHeight,
		ConnectionVersion,
		endpoint.Chain.SenderAccount,
	)

	ctx := endpoint.Chain.GetContext()
	if _, err := endpoint.Chain.App.ConnectionOpenAck(ctx, msg); err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)
	return nil
}

// ConnOpenConfirm confirms the counterparty's OPEN connection end,
// completing the handshake.
func (endpoint *Endpoint) ConnOpenConfirm() error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	proofAck, proofHeight := endpoint.Counterparty.Chain.QueryProof(ibchost.ConnectionPath(endpoint.Counterparty.ConnectionID))

	msg := connectiontypes.NewMsgConnectionOpenConfirm(
		endpoint.ConnectionID, proofAck, proofHeight,
		endpoint.Chain.SenderAccount,
	)

	ctx := endpoint.Chain.GetContext()
	if _, err := endpoint.Chain.App.ConnectionOpenConfirm(ctx, msg); err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)
	return nil
}

// connectionHandshakeProof returns the client state this endpoint's chain
// stores for the counterparty together with proofs of that client state
// and of this endpoint's connection end.
func (endpoint *Endpoint) connectionHandshakeProof() (exported.ClientState, []byte, []byte, clienttypes.Height) {
	clientState := endpoint.GetClientState()

	proofClient, _ := endpoint.Chain.QueryProof(ibchost.FullClientStatePath(endpoint.ClientID))
	proofConnection, proofHeight := endpoint.Chain.QueryProof(ibchost.ConnectionPath(endpoint.ConnectionID))

	return clientState, proofClient, proofConnection, proofHeight
}

// ChanOpenInit initializes a channel on the endpoint's chain.
func (endpoint *Endpoint) ChanOpenInit() error {
	msg := channeltypes.NewMsgChannelOpenInit(
		endpoint.PortID, endpoint.Version, endpoint.Order, []string{endpoint.ConnectionID},
		endpoint.Counterparty.PortID,
		endpoint.Chain.SenderAccount,
	)

	ctx := endpoint.Chain.GetContext()
	res, err := endpoint.Chain.App.ChannelOpenInit(ctx, msg)
	if err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)

	endpoint.ChannelID = res.ChannelId
	endpoint.Version = res.Version
	return nil
}

// ChanOpenTry relays the counterparty's INIT channel end to the endpoint's
// chain.
func (endpoint *Endpoint) ChanOpenTry() error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	proofInit, proofHeight := endpoint.Counterparty.Chain.QueryProof(
		ibchost.ChannelPath(endpoint.Counterparty.PortID, endpoint.Counterparty.ChannelID),
	)

	msg := channeltypes.NewMsgChannelOpenTry(
		endpoint.PortID, "", endpoint.Order, []string{endpoint.ConnectionID},
		endpoint.Counterparty.PortID, endpoint.Counterparty.ChannelID, endpoint.Counterparty.Version,
		proofInit, proofHeight,
		endpoint.Chain.SenderAccount,
	)

	ctx := endpoint.Chain.GetContext()
	res, err := endpoint.Chain.App.ChannelOpenTry(ctx, msg)
	if err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)

	endpoint.ChannelID = res.ChannelId
	endpoint.Version = res.Version
	return nil
}

// ChanOpenAck relays the counterparty's TRYOPEN channel end back to the
// initiating chain.
func (endpoint *Endpoint) ChanOpenAck() error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	proofTry, proofHeight := endpoint.Counterparty.Chain.QueryProof(
		ibchost.ChannelPath(endpoint.Counterparty.PortID, endpoint.Counterparty.ChannelID),
	)

	msg := channeltypes.NewMsgChannelOpenAck(
		endpoint.PortID, endpoint.ChannelID,
		endpoint.Counterparty.ChannelID, endpoint.Counterparty.Version,
		proofTry, proofHeight,
		endpoint.Chain.SenderAccount,
	)

	ctx := endpoint.Chain.GetContext()
	if _, err := endpoint.Chain.App.ChannelOpenAck(ctx, msg); err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)
	return nil
}

// ChanOpenConfirm confirms the counterparty's OPEN channel end, completing
// the handshake.
func (endpoint *Endpoint) ChanOpenConfirm() error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	proofAck, proofHeight := endpoint.Counterparty.Chain.QueryProof(
		ibchost.ChannelPath(endpoint.Counterparty.PortID, endpoint.Counterparty.ChannelID),
	)

	msg := channeltypes.NewMsgChannelOpenConfirm(
		endpoint.PortID, endpoint.ChannelID,
		proofAck, proofHeight,
		endpoint.Chain.SenderAccount,
	)

	ctx := endpoint.Chain.GetContext()
	if _, err := endpoint.Chain.App.ChannelOpenConfirm(ctx, msg); err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)
	return nil
}

// ChanCloseInit closes the endpoint's channel end.
func (endpoint *Endpoint) ChanCloseInit() error {
	msg := channeltypes.NewMsgChannelCloseInit(
		endpoint.PortID, endpoint.ChannelID,
		endpoint.Chain.SenderAccount,
	)

	ctx := endpoint.Chain.GetContext()
	if _, err := endpoint.Chain.App.ChannelCloseInit(ctx, msg); err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)
	return nil
}

// ChanCloseConfirm closes the endpoint's channel end after the counterparty
// end has closed.
func (endpoint *Endpoint) ChanCloseConfirm() error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	proofInit, proofHeight := endpoint.Counterparty.Chain.QueryProof(
		ibchost.ChannelPath(endpoint.Counterparty.PortID, endpoint.Counterparty.ChannelID),
	)

	msg := channeltypes.NewMsgChannelCloseConfirm(
		endpoint.PortID, endpoint.ChannelID,
		proofInit, proofHeight,
		endpoint.Chain.SenderAccount,
	)

	ctx := endpoint.Chain.GetContext()
	if _, err := endpoint.Chain.App.ChannelCloseConfirm(ctx, msg); err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)
	return nil
}

// SendPacket commits a packet on the endpoint's channel end and returns
// the packet a relayer would construct from the send event.
func (endpoint *Endpoint) SendPacket(
	timeoutHeight clienttypes.Height,
	timeoutTimestamp uint64,
	data []byte,
) (channeltypes.Packet, error) {
	ctx := endpoint.Chain.GetContext()
	sequence, err := endpoint.Chain.App.ChannelKeeper.SendPacket(ctx, endpoint.PortID, endpoint.ChannelID, timeoutHeight, timeoutTimestamp, data)
	if err != nil {
		return channeltypes.Packet{}, err
	}
	endpoint.Chain.commitMsgResult(ctx)

	packet := channeltypes.NewPacket(
		data, sequence,
		endpoint.PortID, endpoint.ChannelID,
		endpoint.Counterparty.PortID, endpoint.Counterparty.ChannelID,
		timeoutHeight, timeoutTimestamp,
	)
	return packet, nil
}

// RecvPacket receives a packet sent by the counterparty on the endpoint's
// chain.
func (endpoint *Endpoint) RecvPacket(packet channeltypes.Packet) error {
	_, err := endpoint.RecvPacketWithResult(packet)
	return err
}

// RecvPacketWithResult receives a packet on the endpoint's chain and
// returns the message response.
func (endpoint *Endpoint) RecvPacketWithResult(packet channeltypes.Packet) (*channeltypes.MsgRecvPacketResponse, error) {
	if err := endpoint.UpdateClient(); err != nil {
		return nil, err
	}

	proof, proofHeight := endpoint.Counterparty.Chain.QueryProof(
		ibchost.PacketCommitmentPath(packet.SourcePort, packet.SourceChannel, packet.Sequence),
	)

	msg := channeltypes.NewMsgRecvPacket(packet, proof, proofHeight, endpoint.Chain.SenderAccount)

	ctx := endpoint.Chain.GetContext()
	res, err := endpoint.Chain.App.RecvPacket(ctx, msg)
	if err != nil {
		return nil, err
	}
	endpoint.Chain.commitMsgResult(ctx)
	return res, nil
}

// AcknowledgePacket processes on the endpoint's chain the acknowledgement
// the counterparty wrote for a packet this chain sent.
func (endpoint *Endpoint) AcknowledgePacket(packet channeltypes.Packet, ack []byte) error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	proof, proofHeight := endpoint.Counterparty.Chain.QueryProof(
		ibchost.PacketAcknowledgementPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence),
	)

	msg := channeltypes.NewMsgAcknowledgement(packet, ack, proof, proofHeight, endpoint.Chain.SenderAccount)

	ctx := endpoint.Chain.GetContext()
	if _, err := endpoint.Chain.App.Acknowledgement(ctx, msg); err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)
	return nil
}

// TimeoutPacket times out a packet this chain sent which was never
// received by the counterparty.
func (endpoint *Endpoint) TimeoutPacket(packet channeltypes.Packet) error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	counterparty := endpoint.Counterparty

	nextSeqRecv, found := counterparty.Chain.App.ChannelKeeper.GetNextSequenceRecv(
		counterparty.Chain.GetContext(), packet.DestinationPort, packet.DestinationChannel,
	)
	if !found {
		return fmt.Errorf("next sequence receive not found for channel %s", packet.DestinationChannel)
	}

	var proof []byte
	var proofHeight clienttypes.Height
	if endpoint.GetChannel().Ordering == channeltypes.ORDERED {
		proof, proofHeight = counterparty.Chain.QueryProof(
			ibchost.NextSequenceRecvPath(packet.DestinationPort, packet.DestinationChannel),
		)
	} else {
		proof, proofHeight = counterparty.Chain.QueryProof(
			ibchost.PacketReceiptPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence),
		)
	}

	msg := channeltypes.NewMsgTimeout(packet, nextSeqRecv, proof, proofHeight, endpoint.Chain.SenderAccount)

	ctx := endpoint.Chain.GetContext()
	if _, err := endpoint.Chain.App.Timeout(ctx, msg); err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)
	return nil
}

// TimeoutOnClose times out a packet this chain sent after the counterparty
// channel end closed without receiving it.
func (endpoint *Endpoint) TimeoutOnClose(packet channeltypes.Packet) error {
	if err := endpoint.UpdateClient(); err != nil {
		return err
	}

	counterparty := endpoint.Counterparty

	nextSeqRecv, found := counterparty.Chain.App.ChannelKeeper.GetNextSequenceRecv(
		counterparty.Chain.GetContext(), packet.DestinationPort, packet.DestinationChannel,
	)
	if !found {
		return fmt.Errorf("next sequence receive not found for channel %s", packet.DestinationChannel)
	}

	var proof []byte
	var proofHeight clienttypes.Height
	if endpoint.GetChannel().Ordering == channeltypes.ORDERED {
		proof, proofHeight = counterparty.Chain.QueryProof(
			ibchost.NextSequenceRecvPath(packet.DestinationPort, packet.DestinationChannel),
		)
	} else {
		proof, proofHeight = counterparty.Chain.QueryProof(
			ibchost.PacketReceiptPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence),
		)
	}

	proofClose, _ := counterparty.Chain.QueryProof(
		ibchost.ChannelPath(packet.DestinationPort, packet.DestinationChannel),
	)

	msg := channeltypes.NewMsgTimeoutOnClose(packet, nextSeqRecv, proof, proofClose, proofHeight, endpoint.Chain.SenderAccount)

	ctx := endpoint.Chain.GetContext()
	if _, err := endpoint.Chain.App.TimeoutOnClose(ctx, msg); err != nil {
		return err
	}
	endpoint.Chain.commitMsgResult(ctx)
	return nil
}

// GetClientState returns the client state stored for this endpoint's
// client. The client state must exist.
func (endpoint *Endpoint) GetClientState() exported.ClientState {
	clientState, found := endpoint.Chain.App.ClientKeeper.GetClientState(endpoint.Chain.GetContext(), endpoint.ClientID)
	if !found {
		endpoint.Chain.t.Fatalf("client state for %s not found", endpoint.ClientID)
	}
	return clientState
}

// SetClientState overwrites the stored client state for this endpoint's
// client.
func (endpoint *Endpoint) SetClientState(clientState exported.ClientState) {
	endpoint.Chain.App.ClientKeeper.SetClientState(endpoint.Chain.GetContext(), endpoint.ClientID, clientState)
}

// GetConnection returns this endpoint's connection end. The connection
// must exist.
func (endpoint *Endpoint) GetConnection() connectiontypes.ConnectionEnd {
	connection, found := endpoint.Chain.App.ConnectionKeeper.GetConnection(endpoint.Chain.GetContext(), endpoint.ConnectionID)
	if !found {
		endpoint.Chain.t.Fatalf("connection %s not found", endpoint.ConnectionID)
	}
	return connection
}

// SetConnection overwrites this endpoint's stored connection end.
func (endpoint *Endpoint) SetConnection(connection connectiontypes.ConnectionEnd) {
	endpoint.Chain.App.ConnectionKeeper.SetConnection(endpoint.Chain.GetContext(), endpoint.ConnectionID, connection)
}

// GetChannel returns this endpoint's channel end. The channel must exist.
func (endpoint *Endpoint) GetChannel() channeltypes.Channel {
	channel, found := endpoint.Chain.App.ChannelKeeper.GetChannel(endpoint.Chain.GetContext(), endpoint.PortID, endpoint.ChannelID)
	if !found {
		endpoint.Chain.t.Fatalf("channel %s/%s not found", endpoint.PortID, endpoint.ChannelID)
	}
	return channel
}

// SetChannel overwrites this endpoint's stored channel end.
func (endpoint *Endpoint) SetChannel(channel channeltypes.Channel) {
	endpoint.Chain.App.ChannelKeeper.SetChannel(endpoint.Chain.GetContext(), endpoint.PortID, endpoint.ChannelID, channel)
}

// SetChannelState overwrites the state of this endpoint's stored channel
// end, leaving the remaining fields untouched.
func (endpoint *Endpoint) SetChannelState(state channeltypes.State) {
	channel := endpoint.GetChannel()
	channel.State = state
	endpoint.SetChannel(channel)
}
