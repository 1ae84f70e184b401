package tendermint

import (
	errorsmod "cosmossdk.io/errors"
)

// IBC tendermint client sentinel errors
var (
	ErrInvalidChainID          = errorsmod.Register(ModuleName, 2, "invalid chain-id")
	ErrInvalidTrustingPeriod   = errorsmod.Register(ModuleName, 3, "invalid trusting period")
	ErrInvalidHeaderHeight     = errorsmod.Register(ModuleName, 4, "invalid header height")
	ErrInvalidHeader           = errorsmod.Register(ModuleName, 5, "invalid header")
	ErrInvalidMaxClockDrift    = errorsmod.Register(ModuleName, 6, "invalid max clock drift")
	ErrProcessedTimeNotFound   = errorsmod.Register(ModuleName, 7, "processed time not found")
	ErrProcessedHeightNotFound = errorsmod.Register(ModuleName, 8, "processed height not found")
	ErrDelayPeriodNotPassed    = errorsmod.Register(ModuleName, 9, "packet-specified delay period has not been reached")
	ErrTrustingPeriodExpired   = errorsmod.Register(ModuleName, 10, "time since latest trusted state has passed the trusting period")
	ErrInvalidProofSpecs       = errorsmod.Register(ModuleName, 11, "invalid proof specs")
	ErrInvalidUpgrade          = errorsmod.Register(ModuleName, 12, "invalid upgrade")
)
