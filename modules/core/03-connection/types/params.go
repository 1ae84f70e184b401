package types

import (
	"fmt"
	"time"
)

// DefaultTimePerBlock is the default value for maximum expected time per block (in nanoseconds).
const DefaultTimePerBlock = 30 * time.Second

// Params defines the set of connection parameters.
type Params struct {
	// maximum expected time per block (in nanoseconds), used to enforce
	// block delay. This parameter should reflect the largest amount of
	// time that the chain might reasonably take to produce the next block
	// under normal operating conditions. A safe choice is 3-5x the
	// expected time per block.
	MaxExpectedTimePerBlock uint64 `cbor:"1,keyasint"`
}

// NewParams creates a new parameter configuration for the connection submodule.
func NewParams(timePerBlock uint64) Params {
	return Params{
		MaxExpectedTimePerBlock: timePerBlock,
	}
}

// DefaultParams is the default parameter configuration for the connection submodule.
func DefaultParams() Params {
	return NewParams(uint64(DefaultTimePerBlock))
}

// Validate ensures MaxExpectedTimePerBlock is non-zero.
func (p Params) Validate() error {
	if p.MaxExpectedTimePerBlock == 0 {
		return fmt.Errorf("MaxExpectedTimePerBlock cannot be zero")
	}
	return nil
}
