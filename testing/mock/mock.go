package mock

import (
	"errors"

	channeltypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
	porttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/05-port/types"
)

const (
	ModuleName = "mock"

	PortID = ModuleName

	Version = "mock-version"
)

var (
	MockAcknowledgement     = channeltypes.NewResultAcknowledgement([]byte("mock acknowledgement"))
	MockFailAcknowledgement = channeltypes.NewErrorAcknowledgement(errors.New("mock failed acknowledgement"))
	MockPacketData          = []byte("mock packet data")
	MockFailPacketData      = []byte("mock failed packet data")
	MockAsyncPacketData     = []byte("mock async packet data")

	// MockApplicationCallbackError should be returned when an application
	// callback should fail. It is possible to test that this error was
	// returned using errors.Is.
	MockApplicationCallbackError error = &applicationCallbackError{}
)

var _ porttypes.IBCModule = (*IBCModule)(nil)

// applicationCallbackError is a custom error type that will be unique for testing purposes.
type applicationCallbackError struct{}

func (applicationCallbackError) Error() string {
	return "mock application callback failed"
}
