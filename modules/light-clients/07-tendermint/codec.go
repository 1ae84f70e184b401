package tendermint

import (
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
)

// RegisterInterfaces registers the tendermint concrete client-related
// implementations and interfaces.
func RegisterInterfaces(cdc *codec.Codec) {
	cdc.RegisterImplementation("/ibc.lightclients.tendermint.v1.ClientState", &ClientState{})
	cdc.RegisterImplementation("/ibc.lightclients.tendermint.v1.ConsensusState", &ConsensusState{})
	cdc.RegisterImplementation("/ibc.lightclients.tendermint.v1.Header", &Header{})
	cdc.RegisterImplementation("/ibc.lightclients.tendermint.v1.Misbehaviour", &Misbehaviour{})
}
