package mock

import (
	"github.com/Salpiglossis/cosmos-ibc-rs/host"
)

const (
	MockEventTypeRecvPacket    = "mock-recv-packet"
	MockEventTypeAckPacket     = "mock-ack-packet"
	MockEventTypeTimeoutPacket = "mock-timeout-packet"

	MockAttributeKey1 = "mock-attribute-key-1"
	MockAttributeKey2 = "mock-attribute-key-2"

	MockAttributeValue1 = "mock-attribute-value-1"
	MockAttributeValue2 = "mock-attribute-value-2"
)

// NewMockRecvPacketEvent returns a mock receive packet event.
func NewMockRecvPacketEvent() host.Event {
	return newMockEvent(MockEventTypeRecvPacket)
}

// NewMockAckPacketEvent returns a mock acknowledgement packet event.
func NewMockAckPacketEvent() host.Event {
	return newMockEvent(MockEventTypeAckPacket)
}

// NewMockTimeoutPacketEvent returns a mock timeout packet event.
func NewMockTimeoutPacketEvent() host.Event {
	return newMockEvent(MockEventTypeTimeoutPacket)
}

// newMockEvent returns a mock event with the given event type.
func newMockEvent(eventType string) host.Event {
	return host.NewEvent(
		eventType,
		host.NewAttribute(MockAttributeKey1, MockAttributeValue1),
		host.NewAttribute(MockAttributeKey2, MockAttributeValue2),
	)
}
