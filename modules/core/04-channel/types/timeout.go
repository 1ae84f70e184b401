package types

import (
	"fmt"

	clienttypes "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
)

// Timeout defines an execution deadline structure for a packet: a
// height and/or a timestamp (in nanoseconds) after which the packet may
// no longer be received and must instead be timed out.
type Timeout struct {
	// block height after which the packet or upgrade times out
	Height clienttypes.Height `cbor:"1,keyasint"`
	// block timestamp (in nanoseconds) after which the packet or upgrade times out
	Timestamp uint64 `cbor:"2,keyasint"`
}

// NewTimeout returns a new Timeout instance.
func NewTimeout(height clienttypes.Height, timestamp uint64) Timeout {
	return Timeout{
		Height:    height,
		Timestamp: timestamp,
	}
}

// IsValid returns true if either the height or timestamp is non-zero.
func (t Timeout) IsValid() bool {
	return !t.Height.IsZero() || t.Timestamp != 0
}

// Elapsed returns true if either the provided block height or timestamp is
// past the respective absolute timeout value.
func (t Timeout) Elapsed(height clienttypes.Height, timestamp uint64) bool {
	return t.heightElapsed(height) || t.timestampElapsed(timestamp)
}

// ErrTimeoutElapsed returns a timeout elapsed error indicating which timeout
// value has elapsed.
func (t Timeout) ErrTimeoutElapsed(height clienttypes.Height, timestamp uint64) error {
	if t.heightElapsed(height) {
		return fmt.Errorf("%w: current height: %s, timeout height %s", ErrTimeoutElapsed, height, t.Height)
	}

	return fmt.Errorf("%w: current timestamp: %d, timeout timestamp %d", ErrTimeoutElapsed, timestamp, t.Timestamp)
}

// ErrTimeoutNotReached returns a timeout not reached error indicating which
// timeout value has not been reached.
func (t Timeout) ErrTimeoutNotReached(height clienttypes.Height, timestamp uint64) error {
	// only return height information if the height is set
	// otherwise return timestamp information
	if !t.Height.IsZero() && !t.heightElapsed(height) {
		return fmt.Errorf("%w: current height: %s, timeout height %s", ErrTimeoutNotReached, height, t.Height)
	}

	return fmt.Errorf("%w: current timestamp: %d, timeout timestamp %d", ErrTimeoutNotReached, timestamp, t.Timestamp)
}

// heightElapsed returns true if the timeout height is non-empty and the
// provided height is greater than or equal to it.
func (t Timeout) heightElapsed(height clienttypes.Height) bool {
	return !t.Height.IsZero() && height.GTE(t.Height)
}

// timestampElapsed returns true if the timeout timestamp is non-empty and the
// provided timestamp is greater than or equal to it.
func (t Timeout) timestampElapsed(timestamp uint64) bool {
	return t.Timestamp != 0 && timestamp >= t.Timestamp
}
