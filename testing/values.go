package ibctesting

import (
	"fmt"
	"time"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	connectiontypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
	commitmenttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/23-commitment/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/testing/mock"
)

const (
	// FirstClientID is the identifier generated for the first mock client
	// created on a test chain.
	FirstClientID = "00-mock-0"

	// FirstConnectionID is the connection identifier generated by the first
	// ConnOpenInit on a test chain.
	FirstConnectionID = "connection-0"

	// FirstChannelID is the channel identifier generated by the first
	// ChanOpenInit on a test chain.
	FirstChannelID = "channel-0"

	// InvalidID is an identifier guaranteed to not exist.
	InvalidID = "IDisInvalid"

	// TestAccAddress is the signer used for all relayed messages.
	TestAccAddress = "testrelayer"

	DefaultDelayPeriod uint64 = 0

	// TimeIncrement is how much a chain's block time advances on every
	// committed block.
	TimeIncrement = 5 * time.Second

	MockPort = mock.PortID
)

var (
	// DefaultTime is the starting block time of every test chain.
	DefaultTime = time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	// DefaultPrefix is the commitment prefix every test chain commits its
	// protocol records under.
	DefaultPrefix = commitmenttypes.NewMerklePrefix([]byte("ibc"))

	ConnectionVersion = connectiontypes.GetCompatibleVersions()[0]

	// DisabledTimeoutTimestamp and DisabledTimeoutHeight disable the
	// respective timeout when constructing a test packet.
	DisabledTimeoutTimestamp = uint64(0)
	DisabledTimeoutHeight    = clienttypes.ZeroHeight()

	// DefaultTimeoutHeight is a timeout high enough to never trigger during
	// a test flow against a chain in revision 1.
	DefaultTimeoutHeight = clienttypes.NewHeight(1, 100000)
)

// GetChainID returns the chain ID used by the test chain at the given index,
// placing every test chain in revision 1.
func GetChainID(index int) string {
	return fmt.Sprintf("testchain%d-1", index)
}
