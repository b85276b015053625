package command

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/spf13/cobra"

	"presalecontract/chaincode"
	"presalecontract/internal/mockhost"
	"presalecontract/program"
)

// InvokeCmd runs a transaction against an in-process host and prints the
// result and program log. Extra arguments are passed as account keys.
func InvokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke [account...]",
		Short: "Invoke a transaction against an in-memory host",
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, _ := cmd.Flags().GetString("function")

			cc, err := chaincode.New()
			if err != nil {
				return fmt.Errorf("error creating presale chaincode: %w", err)
			}
			host, err := mockhost.New(chaincode.ContractName, mockhost.DefaultMSPID, cc)
			if err != nil {
				return err
			}

			res, events := host.Invoke(fn, args...)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "status: %d\n", res.Status)
			if res.Status != shim.OK {
				return fmt.Errorf("transaction %s failed: %s", fn, res.Message)
			}

			for _, ev := range events {
				if ev.EventName != program.LogEventName {
					continue
				}
				var logEvent program.LogEvent
				if err := json.Unmarshal(ev.Payload, &logEvent); err != nil {
					return err
				}
				fmt.Fprintf(out, "tx: %s\n", logEvent.TxID)
				for i, line := range logEvent.Logs {
					fmt.Fprintf(out, "  %d. %s\n", i+1, line)
				}
			}
			return nil
		},
	}
	cmd.Flags().String("function", "Initialize", "transaction to invoke")
	return cmd
}
