package ibctesting

import (
	"encoding/hex"
	"fmt"

	"github.com/Salpiglossis/cosmos-ibc-rs/host"
	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	connectiontypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/03-connection/types"
	channeltypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
)

// ParseClientIDFromEvents parses events emitted from a MsgCreateClient and
// returns the client identifier.
func ParseClientIDFromEvents(events []host.Event) (string, error) {
	return parseAttributeFromEvents(events, clienttypes.EventTypeCreateClient, clienttypes.AttributeKeyClientID)
}

// ParseConnectionIDFromEvents parses events emitted from a connection
// handshake message and returns the connection identifier.
func ParseConnectionIDFromEvents(events []host.Event) (string, error) {
	connID, err := parseAttributeFromEvents(events, connectiontypes.EventTypeConnectionOpenInit, connectiontypes.AttributeKeyConnectionID)
	if err == nil {
		return connID, nil
	}
	return parseAttributeFromEvents(events, connectiontypes.EventTypeConnectionOpenTry, connectiontypes.AttributeKeyConnectionID)
}

// ParseChannelIDFromEvents parses events emitted from a channel handshake
// message and returns the channel identifier.
func ParseChannelIDFromEvents(events []host.Event) (string, error) {
	channelID, err := parseAttributeFromEvents(events, channeltypes.EventTypeChannelOpenInit, channeltypes.AttributeKeyChannelID)
	if err == nil {
		return channelID, nil
	}
	return parseAttributeFromEvents(events, channeltypes.EventTypeChannelOpenTry, channeltypes.AttributeKeyChannelID)
}

// ParseAckFromEvents parses events emitted from a MsgRecvPacket and returns
// the raw acknowledgement bytes.
func ParseAckFromEvents(events []host.Event) ([]byte, error) {
	ackHex, err := parseAttributeFromEvents(events, channeltypes.EventTypeWriteAck, channeltypes.AttributeKeyAckHex)
	if err != nil {
		return nil, err
	}
	return hex.DecodeString(ackHex)
}

func parseAttributeFromEvents(events []host.Event, eventType, attributeKey string) (string, error) {
	for _, ev := range events {
		if ev.Type != eventType {
			continue
		}
		for _, attr := range ev.Attributes {
			if attr.Key == attributeKey {
				return attr.Value, nil
			}
		}
	}
	return "", fmt.Errorf("event of type %s with attribute %s not found", eventType, attributeKey)
}
