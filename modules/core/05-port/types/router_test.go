package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Salpiglossis/cosmos-ibc-rs/modules/core/05-port/types"
	"github.com/Salpiglossis/cosmos-ibc-rs/testing/mock"
)

func TestAddRoute(t *testing.T) {
	router := types.NewRouter()
	module := mock.NewIBCModule(mock.NewIBCApp(mock.PortID))

	router.AddRoute(mock.ModuleName, module)
	require.True(t, router.HasRoute(mock.ModuleName))

	route, found := router.GetRoute(mock.ModuleName)
	require.True(t, found)
	require.Equal(t, module, route)

	_, found = router.GetRoute("unregistered")
	require.False(t, found)
}

func TestAddRouteDuplicate(t *testing.T) {
	router := types.NewRouter()
	module := mock.NewIBCModule(mock.NewIBCApp(mock.PortID))

	router.AddRoute(mock.ModuleName, module)
	require.Panics(t, func() {
		router.AddRoute(mock.ModuleName, module)
	})
}

func TestAddRouteInvalidModuleName(t *testing.T) {
	router := types.NewRouter()
	module := mock.NewIBCModule(mock.NewIBCApp(mock.PortID))

	require.Panics(t, func() {
		router.AddRoute("(invalidmodule)", module)
	})
}

func TestSeal(t *testing.T) {
	router := types.NewRouter()
	module := mock.NewIBCModule(mock.NewIBCApp(mock.PortID))
	router.AddRoute(mock.ModuleName, module)

	require.False(t, router.Sealed())
	router.Seal()
	require.True(t, router.Sealed())

	// registration after sealing and double sealing both panic
	require.Panics(t, func() {
		router.AddRoute("othermodule", module)
	})
	require.Panics(t, func() {
		router.Seal()
	})
}
