package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
)

var (
	validPacketData = []byte("testdata")
	timeoutHeight   = clienttypes.NewHeight(0, 100)
	timeoutTS       = uint64(100)
)

func TestPacketValidateBasic(t *testing.T) {
	testCases := []struct {
		name    string
		packet  types.Packet
		expPass bool
	}{
		{"valid packet", types.NewPacket(validPacketData, 1, "validport", "channel-0", "validport", "channel-1", timeoutHeight, timeoutTS), true},
		{"valid packet with timeout height only", types.NewPacket(validPacketData, 1, "validport", "channel-0", "validport", "channel-1", timeoutHeight, 0), true},
		{"valid packet with timeout timestamp only", types.NewPacket(validPacketData, 1, "validport", "channel-0", "validport", "channel-1", clienttypes.ZeroHeight(), timeoutTS), true},
		{"invalid source port", types.NewPacket(validPacketData, 1, "(invalidport)", "channel-0", "validport", "channel-1", timeoutHeight, timeoutTS), false},
		{"invalid source channel", types.NewPacket(validPacketData, 1, "validport", "(invalidchannel)", "validport", "channel-1", timeoutHeight, timeoutTS), false},
		{"invalid destination port", types.NewPacket(validPacketData, 1, "validport", "channel-0", "(invalidport)", "channel-1", timeoutHeight, timeoutTS), false},
		{"invalid destination channel", types.NewPacket(validPacketData, 1, "validport", "channel-0", "validport", "(invalidchannel)", timeoutHeight, timeoutTS), false},
		{"zero sequence", types.NewPacket(validPacketData, 0, "validport", "channel-0", "validport", "channel-1", timeoutHeight, timeoutTS), false},
		{"disabled timeout", types.NewPacket(validPacketData, 1, "validport", "channel-0", "validport", "channel-1", clienttypes.ZeroHeight(), 0), false},
		{"empty data", types.NewPacket([]byte{}, 1, "validport", "channel-0", "validport", "channel-1", timeoutHeight, timeoutTS), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.packet.ValidateBasic()
			if tc.expPass {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestCommitPacket(t *testing.T) {
	packet := types.NewPacket(validPacketData, 1, "validport", "channel-0", "validport", "channel-1", timeoutHeight, timeoutTS)

	commitment := types.CommitPacket(packet)
	require.Len(t, commitment, 32)

	// the commitment is deterministic over the packet fields
	require.Equal(t, commitment, types.CommitPacket(packet))

	malleated := packet
	malleated.Data = []byte("otherdata")
	require.NotEqual(t, commitment, types.CommitPacket(malleated))

	malleated = packet
	malleated.TimeoutTimestamp = timeoutTS + 1
	require.NotEqual(t, commitment, types.CommitPacket(malleated))

	malleated = packet
	malleated.TimeoutHeight = clienttypes.NewHeight(1, 100)
	require.NotEqual(t, commitment, types.CommitPacket(malleated))
}

func TestCommitAcknowledgement(t *testing.T) {
	ack := types.CommitAcknowledgement([]byte("some acknowledgement"))
	require.Len(t, ack, 32)
	require.Equal(t, ack, types.CommitAcknowledgement([]byte("some acknowledgement")))
}
