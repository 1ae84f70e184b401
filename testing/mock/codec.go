package mock

import (
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/codec"
)

// RegisterInterfaces registers the mock client concrete types with the codec.
func RegisterInterfaces(cdc *codec.Codec) {
	cdc.RegisterImplementation("/ibc.mock.ClientState", &ClientState{})
	cdc.RegisterImplementation("/ibc.mock.ConsensusState", &ConsensusState{})
	cdc.RegisterImplementation("/ibc.mock.Header", &Header{})
	cdc.RegisterImplementation("/ibc.mock.Misbehaviour", &Misbehaviour{})
}
