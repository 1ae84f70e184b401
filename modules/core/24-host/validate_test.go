package host_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	host "github.com/Salpiglossis/cosmos-ibc-rs/modules/core/24-host"
)

func TestDefaultIdentifierValidators(t *testing.T) {
	testCases := []struct {
		name    string
		id      string
		expPass bool
	}{
		{"valid lowercase", "transferchannel", true},
		{"valid id special chars", "._+-#[]<>._+-#[]<>", true},
		{"valid id lower and special chars", "lower._+-#[]<>", true},
		{"numeric id", "1234567890", true},
		{"uppercase id", "NOTLOWERCASE", true},
		{"blank id", "               ", false},
		{"id length out of range", "1", false},
		{"id is too long", strings.Repeat("a", host.DefaultMaxCharacterLength+1), false},
		{"path-like id", "lower/case/id", false},
		{"invalid id", "(clientid)", false},
		{"empty string", "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := host.ClientIdentifierValidator(tc.id)
			if tc.expPass && len(tc.id) >= 9 {
				require.NoError(t, err)
			}
			err = host.ConnectionIdentifierValidator(tc.id)
			if tc.expPass && len(tc.id) >= 10 {
				require.NoError(t, err)
			}
			err = host.ChannelIdentifierValidator(tc.id)
			if tc.expPass && len(tc.id) >= 8 {
				require.NoError(t, err)
			}
			err = host.PortIdentifierValidator(tc.id)
			if tc.expPass {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.ErrorIs(t, err, host.ErrInvalidID)
			}
		})
	}
}

func TestValidatorMinimumLengths(t *testing.T) {
	// each validator enforces its own lower bound
	require.Error(t, host.ClientIdentifierValidator(strings.Repeat("a", 8)))
	require.NoError(t, host.ClientIdentifierValidator(strings.Repeat("a", 9)))

	require.Error(t, host.ConnectionIdentifierValidator(strings.Repeat("a", 9)))
	require.NoError(t, host.ConnectionIdentifierValidator(strings.Repeat("a", 10)))

	require.Error(t, host.ChannelIdentifierValidator(strings.Repeat("a", 7)))
	require.NoError(t, host.ChannelIdentifierValidator(strings.Repeat("a", 8)))

	require.Error(t, host.PortIdentifierValidator("a"))
	require.NoError(t, host.PortIdentifierValidator("aa"))
	require.NoError(t, host.PortIdentifierValidator(strings.Repeat("a", host.DefaultMaxPortCharacterLength)))
	require.Error(t, host.PortIdentifierValidator(strings.Repeat("a", host.DefaultMaxPortCharacterLength+1)))
}

func TestPathValidator(t *testing.T) {
	validateFn := host.NewPathValidator(host.PortIdentifierValidator)

	testCases := []struct {
		name    string
		path    string
		expPass bool
	}{
		{"valid path", "p1/p2/p3", true},
		{"path with valid special chars", "p_1/p-2/p.3", true},
		{"path without separator", "path", false},
		{"path with leading separator", "/p1/p2", false},
		{"path with trailing separator", "p1/p2/", false},
		{"path with blank element", "p1//p2", false},
		{"path with invalid identifier", "p1/(p2)", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateFn(tc.path)
			if tc.expPass {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
			}
		})
	}
}
