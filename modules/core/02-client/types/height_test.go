package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/02-client/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/exported"
)

func TestHeightCompare(t *testing.T) {
	testCases := []struct {
		name   string
		h1     types.Height
		h2     types.Height
		expCmp int64
	}{
		{"revision number dominates", types.NewHeight(2, 1), types.NewHeight(1, 100), 1},
		{"revision height breaks ties", types.NewHeight(1, 10), types.NewHeight(1, 11), -1},
		{"equal heights", types.NewHeight(1, 10), types.NewHeight(1, 10), 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expCmp, tc.h1.Compare(tc.h2))
			require.Equal(t, tc.expCmp == -1, tc.h1.LT(tc.h2))
			require.Equal(t, tc.expCmp == 1, tc.h1.GT(tc.h2))
			require.Equal(t, tc.expCmp == 0, tc.h1.EQ(tc.h2))
			require.Equal(t, tc.expCmp <= 0, tc.h1.LTE(tc.h2))
			require.Equal(t, tc.expCmp >= 0, tc.h1.GTE(tc.h2))
		})
	}
}

func TestHeightIncrementDecrement(t *testing.T) {
	height := types.NewHeight(1, 10)

	require.Equal(t, types.NewHeight(1, 11), height.Increment())

	decremented, ok := height.Decrement()
	require.True(t, ok)
	require.Equal(t, types.NewHeight(1, 9), decremented)

	_, ok = types.NewHeight(1, 0).Decrement()
	require.False(t, ok)
}

func TestParseHeight(t *testing.T) {
	height, err := types.ParseHeight("1-10")
	require.NoError(t, err)
	require.Equal(t, types.NewHeight(1, 10), height)
	require.Equal(t, "1-10", height.String())

	testCases := []string{"1", "1-10-5", "a-10", "1-b", ""}
	for _, heightStr := range testCases {
		_, err := types.ParseHeight(heightStr)
		require.Error(t, err, "parsed invalid height string %q", heightStr)
	}

	require.Panics(t, func() { types.MustParseHeight("not-a-height") })
}

func TestParseChainID(t *testing.T) {
	testCases := []struct {
		chainID     string
		expRevision uint64
	}{
		{"testchain-1", 1},
		{"gaia-mainnet-40", 40},
		{"testchain", 0},
		{"testchain-0", 0}, // revisions start at 1, so -0 is not revision format
		{"-1", 0},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expRevision, types.ParseChainID(tc.chainID), "chainID: %s", tc.chainID)
	}
}

func TestFormatHeightList(t *testing.T) {
	testCases := []struct {
		name    string
		heights []exported.Height
		exp     string
	}{
		{"empty list", nil, ""},
		{"single height", []exported.Height{types.NewHeight(0, 5)}, "0-5"},
		{"multiple heights", []exported.Height{types.NewHeight(0, 5), types.NewHeight(0, 7)}, "0-5,0-7"},
		{"mixed revisions", []exported.Height{types.NewHeight(1, 3), types.NewHeight(2, 1)}, "1-3,2-1"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.exp, types.FormatHeightList(tc.heights))
		})
	}
}

func TestSetRevisionNumber(t *testing.T) {
	chainID, err := types.SetRevisionNumber("testchain-1", 2)
	require.NoError(t, err)
	require.Equal(t, "testchain-2", chainID)

	_, err = types.SetRevisionNumber("testchain", 2)
	require.Error(t, err)
}

func TestGetSelfHeight(t *testing.T) {
	require.Equal(t, types.NewHeight(1, 5), types.GetSelfHeight("testchain-1", 5))
	require.Equal(t, types.NewHeight(0, 5), types.GetSelfHeight("testchain", 5))
}
