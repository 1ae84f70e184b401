package exported

const (
	// ModuleName is the name of the core protocol engine.
	ModuleName = "ibc"

	// StoreKey is the store key shared by every core submodule.
	StoreKey = ModuleName
)
