package host

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName defines the ICS 24 host
const SubModuleName = "host"

var (
	// ErrInvalidID is returned when an identifier string is malformed.
	ErrInvalidID = errorsmod.Register(SubModuleName, 2, "invalid identifier")

	// ErrInvalidPath is returned when a store path string is malformed.
	ErrInvalidPath = errorsmod.Register(SubModuleName, 3, "invalid path")

	// ErrInvalidPacket is returned when a packet field fails validation.
	ErrInvalidPacket = errorsmod.Register(SubModuleName, 4, "invalid packet")
)
