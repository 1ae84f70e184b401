package types_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/04-channel/types"
)

func TestAcknowledgementValidateBasic(t *testing.T) {
	testCases := []struct {
		name    string
		ack     types.Acknowledgement
		expPass bool
	}{
		{"result acknowledgement", types.NewResultAcknowledgement([]byte("success")), true},
		{"error acknowledgement", types.NewErrorAcknowledgement(errors.New("boom")), true},
		{"empty acknowledgement", types.Acknowledgement{}, false},
		{"both result and error", types.Acknowledgement{Result: []byte("success"), Error: "boom"}, false},
		{"blank error string", types.Acknowledgement{Error: "  "}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.ack.ValidateBasic()
			if tc.expPass {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}

func TestAcknowledgementSuccess(t *testing.T) {
	require.True(t, types.NewResultAcknowledgement([]byte("success")).Success())
	require.False(t, types.NewErrorAcknowledgement(errors.New("boom")).Success())
}

// The error acknowledgement must commit to the same bytes on every machine
// processing the packet, so only the outermost error message is retained.
func TestErrorAcknowledgementDeterminism(t *testing.T) {
	base := errors.New("sentinel error")

	ack := types.NewErrorAcknowledgement(base)
	ackSameBase := types.NewErrorAcknowledgement(fmt.Errorf("sentinel error: machine specific detail %p", t))

	require.Equal(t, "packet processing failed: sentinel error", ack.Error)
	require.Equal(t, ack.Acknowledgement(), ackSameBase.Acknowledgement())
}

func TestAcknowledgementCommitment(t *testing.T) {
	ack := types.NewResultAcknowledgement([]byte("success"))

	// the stored commitment is the hash of the JSON-encoded acknowledgement
	require.Equal(t, types.CommitAcknowledgement(ack.Acknowledgement()), types.CommitAcknowledgement(ack.Acknowledgement()))
	require.NotEqual(
		t,
		types.CommitAcknowledgement(ack.Acknowledgement()),
		types.CommitAcknowledgement(types.NewResultAcknowledgement([]byte("other")).Acknowledgement()),
	)
	require.Len(t, types.CommitAcknowledgement(ack.Acknowledgement()), 32)
}
