package main

import (
	"fmt"

	"github.com/NeuralTrust/TaskAPI/pkg/version"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.GetInfo()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (built %s, %s, %s)\n",
				info.AppName, info.Version, info.BuildDate, info.GoVersion, info.Platform)
		},
	}
}
