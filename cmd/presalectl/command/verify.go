package command

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"presalecontract/internal/setup"
)

func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the project layout, program id and deployment records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, _ := cmd.Flags().GetString("root")
			dir, err := deploymentsDir(cmd)
			if err != nil {
				return err
			}

			report := setup.Verify(root, dir)
			out := cmd.OutOrStdout()
			for _, c := range report.Checks {
				mark := "ok"
				if !c.OK {
					mark = "FAIL"
				}
				fmt.Fprintf(out, "%-4s %s: %s\n", mark, c.Name, c.Detail)
			}
			if !report.OK() {
				return fmt.Errorf("setup incomplete: %s", strings.Join(report.Missing(), ", "))
			}
			return nil
		},
	}
	cmd.Flags().String("root", ".", "project root")
	return cmd
}
