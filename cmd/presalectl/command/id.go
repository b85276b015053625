package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"presalecontract/internal/network"
	"presalecontract/program"
)

func IDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "id",
		Short: "Print the program id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, program.ProgramID)

			name, err := cmd.Flags().GetString(flagNetwork)
			if err != nil || name == "" {
				return err
			}
			cat, err := catalog(cmd)
			if err != nil {
				return err
			}
			if _, err := cat.Lookup(name); err != nil {
				return err
			}
			fmt.Fprintf(out, "explorer: %s\n", network.ExplorerURL(program.ProgramID, name))
			return nil
		},
	}
	cmd.Flags().String(flagNetwork, "", "also print the explorer link on this network")
	return cmd
}

func NetworksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "networks",
		Short: "List known networks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := catalog(cmd)
			if err != nil {
				return err
			}
			for _, name := range cat.Names() {
				u, _ := cat.Lookup(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %s\n", name, u)
			}
			return nil
		},
	}
}
