package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagLogLevel     = "log-level"
	flagStoreBackend = "store-backend"
)

// NewRootCmd creates the root command for ibccored.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ibccored",
		Short: "Inter-chain protocol engine playground",
		Long: `ibccored drives in-memory hosts through the inter-chain protocol:
client lifecycle, connection and channel handshakes and the packet flow.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String(flagLogLevel, "info", "logging level (debug|info|warn|error)")
	rootCmd.PersistentFlags().String(flagStoreBackend, "memdb", "tm-db backend used for the demo hosts")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("IBCCORED")
	viper.AutomaticEnv()

	rootCmd.AddCommand(newDemoCmd())

	return rootCmd
}
