// Package tendermint implements a pluggable light client that tracks a
// Tendermint-consensus counterparty: per-height consensus snapshots,
// trusting-period expiry, equivocation freezing and ics23 merkle proof
// verification. Header signature verification against the validator set
// is performed by the consensus layer before headers reach the client.
package tendermint

// ModuleName is the light client module name. It doubles as the error
// codespace and as the client type under which clients are created.
const ModuleName = "07-tendermint"
