package tendermint

// DefaultTrustLevel is the tendermint light client default trust level
var DefaultTrustLevel = NewFraction(1, 3)

// Fraction defines the protocol fraction type used for the trust level. It
// stays a pair of integers so the value round-trips without loss.
type Fraction struct {
	Numerator   uint64 `cbor:"1,keyasint"`
	Denominator uint64 `cbor:"2,keyasint"`
}

// NewFraction returns a new Fraction instance
func NewFraction(numerator, denominator uint64) Fraction {
	return Fraction{
		Numerator:   numerator,
		Denominator: denominator,
	}
}

// IsValid reports whether the fraction is well formed and within (0, 1].
func (f Fraction) IsValid() bool {
	return f.Denominator != 0 && f.Numerator != 0 && f.Numerator <= f.Denominator
}
