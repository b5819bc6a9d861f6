package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set at build time through ldflags
var Version = "dev"

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "prints the server version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(Version)
		},
	}
}
