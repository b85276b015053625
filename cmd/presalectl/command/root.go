package command

import (
	"os"

	"github.com/spf13/cobra"

	"presalecontract/internal/config"
	"presalecontract/internal/network"
	"presalecontract/program"
)

const (
	flagNetworksFile   = "networks-file"
	flagDeploymentsDir = "deployments-dir"
	flagNetwork        = "network"
)

func RootCmd() *cobra.Command {
	cfg := config.Load()

	cmd := &cobra.Command{
		Use:           "presalectl",
		Short:         "Operator tooling for the presale contract",
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			program.SetLogger(config.NewLogger(cfg, os.Stderr))
		},
	}
	cmd.PersistentFlags().String(flagNetworksFile, cfg.NetworksFile, "YAML file adding networks to the built-in catalogue")
	cmd.PersistentFlags().String(flagDeploymentsDir, cfg.DeploymentsDir, "directory holding deployment records")
	return cmd
}

func catalog(cmd *cobra.Command) (*network.Catalog, error) {
	path, err := cmd.Flags().GetString(flagNetworksFile)
	if err != nil {
		return nil, err
	}
	return network.LoadCatalog(path)
}

func deploymentsDir(cmd *cobra.Command) (string, error) {
	return cmd.Flags().GetString(flagDeploymentsDir)
}
