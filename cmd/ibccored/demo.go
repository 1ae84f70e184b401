package main

import (
	"fmt"
	"strings"
	"time"

	"cosmossdk.io/log"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	dbm "github.com/tendermint/tm-db"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	connectiontypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
	channeltypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	porttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/05-port/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	ibchost "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
	ibckeeper "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/keeper"
	tendermint "github.com/Salpiglossis/cosmos-ibc-rs/modules/light-clients/07-tendermint"
	"github.com/Salpiglossis/cosmos-ibc-rs/testing/mock"
)

const (
	demoSigner    = "demo-relayer"
	demoBlockTime = 5 * time.Second
)

var demoPrefix = commitmenttypes.NewMerklePrefix([]byte("ibc"))

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run two in-memory hosts through a full packet round trip",
		Long: `demo spins up two in-memory hosts, creates a mock client on each,
opens a connection and a channel between them and relays one packet
from the first host to the second, acknowledging it back. Every event
emitted along the way is logged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd)
		},
	}
}

func runDemo(cmd *cobra.Command) error {
	filter, err := log.ParseLogLevel(cast.ToString(viper.Get(flagLogLevel)))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	logger := log.NewLogger(cmd.OutOrStdout(), log.FilterOption(filter))

	backend := dbm.BackendType(cast.ToString(viper.Get(flagStoreBackend)))

	hostA, err := newDemoHost("hosta-1", backend, logger)
	if err != nil {
		return err
	}
	hostB, err := newDemoHost("hostb-1", backend, logger)
	if err != nil {
		return err
	}

	endA := &demoEndpoint{chain: hostA}
	endB := &demoEndpoint{chain: hostB}
	endA.counterparty, endB.counterparty = endB, endA

	// client lifecycle
	if err := endA.createClient(); err != nil {
		return err
	}
	if err := endB.createClient(); err != nil {
		return err
	}

	// connection handshake
	if err := endA.connOpenInit(); err != nil {
		return err
	}
	if err := endB.connOpenTry(); err != nil {
		return err
	}
	if err := endA.connOpenAck(); err != nil {
		return err
	}
	if err := endB.connOpenConfirm(); err != nil {
		return err
	}

	// channel handshake
	if err := endA.chanOpenInit(); err != nil {
		return err
	}
	if err := endB.chanOpenTry(); err != nil {
		return err
	}
	if err := endA.chanOpenAck(); err != nil {
		return err
	}
	if err := endB.chanOpenConfirm(); err != nil {
		return err
	}

	// packet round trip
	packet, err := endA.sendPacket(mock.MockPacketData)
	if err != nil {
		return err
	}
	ack, err := endB.recvPacket(packet)
	if err != nil {
		return err
	}
	if err := endA.acknowledgePacket(packet, ack); err != nil {
		return err
	}

	logger.Info("demo finished",
		"client_a", endA.clientID, "client_b", endB.clientID,
		"connection_a", endA.connectionID, "connection_b", endB.connectionID,
		"channel_a", endA.channelID, "channel_b", endB.channelID,
	)
	return nil
}

// demoHost is one in-memory host: a store, the core keeper and a block
// clock advanced after every executed message.
type demoHost struct {
	chainID string
	store   host.KVStore
	cdc     *codec.Codec
	app     *ibckeeper.Keeper
	height  uint64
	now     time.Time
	logger  log.Logger
}

func newDemoHost(chainID string, backend dbm.BackendType, logger log.Logger) (*demoHost, error) {
	db, err := dbm.NewDB(chainID, backend, "")
	if err != nil {
		return nil, fmt.Errorf("opening %s store for %s: %w", backend, chainID, err)
	}
	store := host.NewStore(db)

	cdc := codec.NewCodec()
	tendermint.RegisterInterfaces(cdc)
	mock.RegisterInterfaces(cdc)

	app := ibckeeper.NewKeeper(cdc)

	h := &demoHost{
		chainID: chainID,
		store:   store,
		cdc:     cdc,
		app:     app,
		height:  1,
		now:     time.Now().UTC(),
		logger:  logger.With("chain", chainID),
	}

	router := porttypes.NewRouter()
	router.AddRoute(mock.ModuleName, mock.NewIBCModule(mock.NewIBCApp(mock.PortID)))
	app.SetRouter(router)

	app.PortKeeper.BindPort(h.ctx(), mock.PortID, mock.ModuleName)

	return h, nil
}

func (h *demoHost) ctx() host.Context {
	ctx := host.NewContext(h.store, h.chainID, h.height, h.now, h.logger)
	return ctx.WithProofProvider(mock.NewProofProvider(h.store, demoPrefix))
}

func (h *demoHost) nextBlock() {
	h.height++
	h.now = h.now.Add(demoBlockTime)
}

func (h *demoHost) selfHeight() clienttypes.Height {
	return clienttypes.GetSelfHeight(h.chainID, h.height)
}

func (h *demoHost) queryProof(path string) ([]byte, clienttypes.Height, error) {
	proof, err := mock.NewProofProvider(h.store, demoPrefix).GetProof(h.height, path)
	if err != nil {
		return nil, clienttypes.Height{}, err
	}
	return proof, h.selfHeight(), nil
}

// commit logs the events of an executed message and commits a block.
func (h *demoHost) commit(ctx host.Context, step string) {
	for _, ev := range ctx.EventManager().Events() {
		attrs := make([]string, 0, len(ev.Attributes))
		for _, attr := range ev.Attributes {
			attrs = append(attrs, attr.Key+"="+attr.Value)
		}
		h.logger.Info("event emitted", "step", step, "type", ev.Type, "attributes", strings.Join(attrs, " "))
	}
	h.nextBlock()
}

// demoEndpoint is one end of the demo path.
type demoEndpoint struct {
	chain        *demoHost
	counterparty *demoEndpoint

	clientID     string
	connectionID string
	channelID    string
	version      string
}

func (end *demoEndpoint) createClient() error {
	cp := end.counterparty.chain

	msg := clienttypes.NewMsgCreateClient(
		mock.NewClientState(cp.selfHeight()),
		mock.NewConsensusState(uint64(cp.now.UnixNano())),
		demoSigner,
	)

	ctx := end.chain.ctx()
	res, err := end.chain.app.CreateClient(ctx, msg)
	if err != nil {
		return err
	}
	end.chain.commit(ctx, "create client")

	end.clientID = res.ClientId
	return nil
}

func (end *demoEndpoint) updateClient() error {
	cp := end.counterparty.chain

	header := mock.NewHeader(cp.selfHeight(), uint64(cp.now.UnixNano()))
	msg := clienttypes.NewMsgUpdateClient(end.clientID, header, demoSigner)

	ctx := end.chain.ctx()
	if _, err := end.chain.app.UpdateClient(ctx, msg); err != nil {
		return err
	}
	end.chain.commit(ctx, "update client")
	return nil
}

func (end *demoEndpoint) connOpenInit() error {
	msg := connectiontypes.NewMsgConnectionOpenInit(
		end.clientID, end.counterparty.clientID, demoPrefix,
		connectiontypes.GetCompatibleVersions()[0], 0, demoSigner,
	)

	ctx := end.chain.ctx()
	res, err := end.chain.app.ConnectionOpenInit(ctx, msg)
	if err != nil {
		return err
	}
	end.chain.commit(ctx, "connection open init")

	end.connectionID = res.ConnectionId
	return nil
}

func (end *demoEndpoint) connOpenTry() error {
	if err := end.updateClient(); err != nil {
		return err
	}

	cp := end.counterparty
	counterpartyClient, found := cp.chain.app.ClientKeeper.GetClientState(cp.chain.ctx(), cp.clientID)
	if !found {
		return fmt.Errorf("client %s not found on %s", cp.clientID, cp.chain.chainID)
	}
	proofClient, _, err := cp.chain.queryProof(ibchost.FullClientStatePath(cp.clientID))
	if err != nil {
		return err
	}
	proofInit, proofHeight, err := cp.chain.queryProof(ibchost.ConnectionPath(cp.connectionID))
	if err != nil {
		return err
	}

	msg := connectiontypes.NewMsgConnectionOpenTry(
		end.clientID, cp.connectionID, cp.clientID,
		counterpartyClient, demoPrefix,
		connectiontypes.GetCompatibleVersions(), 0,
		proofInit, proofClient, proofHeight, demoSigner,
	)

	ctx := end.chain.ctx()
	res, err := end.chain.app.ConnectionOpenTry(ctx, msg)
	if err != nil {
		return err
	}
	end.chain.commit(ctx, "connection open try")

	end.connectionID = res.ConnectionId
	return nil
}

func (end *demoEndpoint) connOpenAck() error {
	if err := end.updateClient(); err != nil {
		return err
	}

	cp := end.counterparty
	counterpartyClient, found := cp.chain.app.ClientKeeper.GetClientState(cp.chain.ctx(), cp.clientID)
	if !found {
		return fmt.Errorf("client %s not found on %s", cp.clientID, cp.chain.chainID)
	}
	proofClient, _, err := cp.chain.queryProof(ibchost.FullClientStatePath(cp.clientID))
	if err != nil {
		return err
	}
	proofTry, proofHeight, err := cp.chain.queryProof(ibchost.ConnectionPath(cp.connectionID))
	if err != nil {
		return err
	}

	msg := connectiontypes.NewMsgConnectionOpenAck(
		end.connectionID, cp.connectionID, counterpartyClient,
		proofTry, proofClient, proofHeight,
		connectiontypes.GetCompatibleVersions()[0], demoSigner,
	)

	ctx := end.chain.ctx()
	if _, err := end.chain.app.ConnectionOpenAck(ctx, msg); err != nil {
		return err
	}
	end.chain.commit(ctx, "connection open ack")
	return nil
}

func (end *demoEndpoint) connOpenConfirm() error {
	if err := end.updateClient(); err != nil {
		return err
	}

	proofAck, proofHeight, err := end.counterparty.chain.queryProof(ibchost.ConnectionPath(end.counterparty.connectionID))
	if err != nil {
		return err
	}

	msg := connectiontypes.NewMsgConnectionOpenConfirm(end.connectionID, proofAck, proofHeight, demoSigner)

	ctx := end.chain.ctx()
	if _, err := end.chain.app.ConnectionOpenConfirm(ctx, msg); err != nil {
		return err
	}
	end.chain.commit(ctx, "connection open confirm")
	return nil
}

func (end *demoEndpoint) chanOpenInit() error {
	msg := channeltypes.NewMsgChannelOpenInit(
		mock.PortID, mock.Version, channeltypes.UNORDERED, []string{end.connectionID},
		mock.PortID, demoSigner,
	)

	ctx := end.chain.ctx()
	res, err := end.chain.app.ChannelOpenInit(ctx, msg)
	if err != nil {
		return err
	}
	end.chain.commit(ctx, "channel open init")

	end.channelID = res.ChannelId
	end.version = res.Version
	return nil
}

func (end *demoEndpoint) chanOpenTry() error {
	if err := end.updateClient(); err != nil {
		return err
	}

	cp := end.counterparty
	proofInit, proofHeight, err := cp.chain.queryProof(ibchost.ChannelPath(mock.PortID, cp.channelID))
	if err != nil {
		return err
	}

	msg := channeltypes.NewMsgChannelOpenTry(
		mock.PortID, "", channeltypes.UNORDERED, []string{end.connectionID},
		mock.PortID, cp.channelID, cp.version,
		proofInit, proofHeight, demoSigner,
	)

	ctx := end.chain.ctx()
	res, err := end.chain.app.ChannelOpenTry(ctx, msg)
	if err != nil {
		return err
	}
	end.chain.commit(ctx, "channel open try")

	end.channelID = res.ChannelId
	end.version = res.Version
	return nil
}

func (end *demoEndpoint) chanOpenAck() error {
	if err := end.updateClient(); err != nil {
		return err
	}

	cp := end.counterparty
	proofTry, proofHeight, err := cp.chain.queryProof(ibchost.ChannelPath(mock.PortID, cp.channelID))
	if err != nil {
		return err
	}

	msg := channeltypes.NewMsgChannelOpenAck(
		mock.PortID, end.channelID, cp.channelID, cp.version,
		proofTry, proofHeight, demoSigner,
	)

	ctx := end.chain.ctx()
	if _, err := end.chain.app.ChannelOpenAck(ctx, msg); err != nil {
		return err
	}
	end.chain.commit(ctx, "channel open ack")
	return nil
}

func (end *demoEndpoint) chanOpenConfirm() error {
	if err := end.updateClient(); err != nil {
		return err
	}

	proofAck, proofHeight, err := end.counterparty.chain.queryProof(ibchost.ChannelPath(mock.PortID, end.counterparty.channelID))
	if err != nil {
		return err
	}

	msg := channeltypes.NewMsgChannelOpenConfirm(mock.PortID, end.channelID, proofAck, proofHeight, demoSigner)

	ctx := end.chain.ctx()
	if _, err := end.chain.app.ChannelOpenConfirm(ctx, msg); err != nil {
		return err
	}
	end.chain.commit(ctx, "channel open confirm")
	return nil
}

func (end *demoEndpoint) sendPacket(data []byte) (channeltypes.Packet, error) {
	timeoutHeight := clienttypes.NewHeight(1, end.counterparty.chain.height+1000)

	ctx := end.chain.ctx()
	sequence, err := end.chain.app.ChannelKeeper.SendPacket(ctx, mock.PortID, end.channelID, timeoutHeight, 0, data)
	if err != nil {
		return channeltypes.Packet{}, err
	}
	end.chain.commit(ctx, "send packet")

	return channeltypes.NewPacket(
		data, sequence,
		mock.PortID, end.channelID,
		mock.PortID, end.counterparty.channelID,
		timeoutHeight, 0,
	), nil
}

func (end *demoEndpoint) recvPacket(packet channeltypes.Packet) ([]byte, error) {
	if err := end.updateClient(); err != nil {
		return nil, err
	}

	proof, proofHeight, err := end.counterparty.chain.queryProof(
		ibchost.PacketCommitmentPath(packet.SourcePort, packet.SourceChannel, packet.Sequence),
	)
	if err != nil {
		return nil, err
	}

	msg := channeltypes.NewMsgRecvPacket(packet, proof, proofHeight, demoSigner)

	ctx := end.chain.ctx()
	if _, err := end.chain.app.RecvPacket(ctx, msg); err != nil {
		return nil, err
	}
	end.chain.commit(ctx, "receive packet")

	return mock.MockAcknowledgement.Acknowledgement(), nil
}

func (end *demoEndpoint) acknowledgePacket(packet channeltypes.Packet, ack []byte) error {
	if err := end.updateClient(); err != nil {
		return err
	}

	proof, proofHeight, err := end.counterparty.chain.queryProof(
		ibchost.PacketAcknowledgementPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence),
	)
	if err != nil {
		return err
	}

	msg := channeltypes.NewMsgAcknowledgement(packet, ack, proof, proofHeight, demoSigner)

	ctx := end.chain.ctx()
	if _, err := end.chain.app.Acknowledgement(ctx, msg); err != nil {
		return err
	}
	end.chain.commit(ctx, "acknowledge packet")
	return nil
}
