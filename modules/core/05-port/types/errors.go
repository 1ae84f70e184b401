package types

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName defines the port submodule name. It doubles as the error
// codespace for the submodule's sentinel errors.
const SubModuleName = "port"

// IBC port sentinel errors
var (
	ErrPortExists   = errorsmod.Register(SubModuleName, 2, "port is already bound")
	ErrPortNotFound = errorsmod.Register(SubModuleName, 3, "port not found")
	ErrInvalidPort  = errorsmod.Register(SubModuleName, 4, "invalid port")
	ErrInvalidRoute = errorsmod.Register(SubModuleName, 5, "route not found")
)
