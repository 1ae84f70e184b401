package types

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName defines the client submodule name. It doubles as the
// error codespace for the submodule's sentinel errors.
const SubModuleName = "client"

// core client sentinel errors
var (
	ErrClientExists                           = errorsmod.Register(SubModuleName, 2, "light client already exists")
	ErrInvalidClient                          = errorsmod.Register(SubModuleName, 3, "light client is invalid")
	ErrClientNotFound                         = errorsmod.Register(SubModuleName, 4, "light client not found")
	ErrClientFrozen                           = errorsmod.Register(SubModuleName, 5, "light client is frozen due to misbehaviour")
	ErrClientNotActive                        = errorsmod.Register(SubModuleName, 6, "client state is not active")
	ErrConsensusStateNotFound                 = errorsmod.Register(SubModuleName, 7, "consensus state not found")
	ErrInvalidConsensus                       = errorsmod.Register(SubModuleName, 8, "invalid consensus state")
	ErrClientTypeNotFound                     = errorsmod.Register(SubModuleName, 9, "client type not found")
	ErrInvalidClientType                      = errorsmod.Register(SubModuleName, 10, "invalid client type")
	ErrRootNotFound                           = errorsmod.Register(SubModuleName, 11, "commitment root not found")
	ErrInvalidHeader                          = errorsmod.Register(SubModuleName, 12, "invalid client header")
	ErrInvalidMisbehaviour                    = errorsmod.Register(SubModuleName, 13, "invalid light client misbehaviour")
	ErrFailedClientStateVerification          = errorsmod.Register(SubModuleName, 14, "client state verification failed")
	ErrFailedClientConsensusStateVerification = errorsmod.Register(SubModuleName, 15, "client consensus state verification failed")
	ErrFailedMembershipVerification           = errorsmod.Register(SubModuleName, 16, "membership verification failed")
	ErrFailedNonMembershipVerification        = errorsmod.Register(SubModuleName, 17, "non-membership verification failed")
	ErrInvalidUpgradeClient                   = errorsmod.Register(SubModuleName, 18, "invalid client upgrade")
	ErrInvalidHeight                          = errorsmod.Register(SubModuleName, 19, "invalid height")
	ErrClientNotAllowed                       = errorsmod.Register(SubModuleName, 20, "client type not allowed")
)
