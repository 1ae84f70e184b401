package types

// client event attribute keys
const (
	AttributeKeyClientID         = "client_id"
	AttributeKeyClientType       = "client_type"
	AttributeKeyConsensusHeight  = "consensus_height"
	AttributeKeyConsensusHeights = "consensus_heights"
	AttributeKeyHeader           = "header"
)

// client event kinds
const (
	EventTypeCreateClient       = "create_client"
	EventTypeUpdateClient       = "update_client"
	EventTypeUpgradeClient      = "upgrade_client"
	EventTypeSubmitMisbehaviour = "client_misbehaviour"
)

// telemetry labels
const (
	LabelClientType = "client-type"
	LabelClientID   = "client-id"
	LabelUpdateType = "update-type"
	LabelMsgType    = "msg-type"
)
