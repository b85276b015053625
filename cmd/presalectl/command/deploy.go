package command

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"presalecontract/internal/deployment"
	"presalecontract/internal/network"
	"presalecontract/program"
)

func DeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Manage deployment records",
	}
	cmd.AddCommand(deployRecordCmd(), deployShowCmd())
	return cmd
}

func deployRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a deployment of the program on a network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString(flagNetwork)
			wallet, _ := cmd.Flags().GetString("wallet")

			cat, err := catalog(cmd)
			if err != nil {
				return err
			}
			dir, err := deploymentsDir(cmd)
			if err != nil {
				return err
			}

			rec, err := deployment.NewRecord(cat, name, wallet, time.Now())
			if err != nil {
				return err
			}
			if err := rec.Validate(cat); err != nil {
				return err
			}
			path, err := deployment.Save(dir, rec)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "program id: %s\n", rec.ProgramID)
			fmt.Fprintf(out, "explorer: %s\n", network.ExplorerURL(program.ProgramID, name))
			fmt.Fprintf(out, "deployment info saved to %s\n", path)
			return nil
		},
	}
	cmd.Flags().String(flagNetwork, network.Default, "network the program was deployed to")
	cmd.Flags().String("wallet", "", "base58 key of the deploying wallet")
	return cmd
}

func deployShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the deployment record of a network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString(flagNetwork)
			dir, err := deploymentsDir(cmd)
			if err != nil {
				return err
			}

			rec, err := deployment.Load(dir, name)
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(rec, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().String(flagNetwork, network.Default, "network to show")
	return cmd
}
