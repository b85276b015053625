package main

import (
	"os"

	"presalecontract/cmd/presalectl/command"
)

var rootCmd = command.RootCmd()

func init() {
	rootCmd.AddCommand(
		command.IDCmd(),
		command.NetworksCmd(),
		command.DeployCmd(),
		command.VerifyCmd(),
		command.InvokeCmd(),
	)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
