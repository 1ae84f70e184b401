package exported

// Root implements spec:023-vector-commitments. A root is constructed
// from a set of key-value pairs and is used to prove membership or
// non-membership of elements against it.
type Root interface {
	GetHash() []byte

	// Empty returns true if the root is empty.
	Empty() bool
}

// Prefix implements spec:023-vector-commitments. A prefix is the
// store-prefix component under which a counterparty commits its
// protocol records.
type Prefix interface {
	Bytes() []byte
	Empty() bool
}

// Path is the standardized key under which a value was committed. It
// is rendered against a Prefix before proof verification.
type Path interface {
	String() string
	Empty() bool
}
