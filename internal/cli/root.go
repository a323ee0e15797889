package cli

import (
	"github.com/spf13/cobra"
)

// NewRoot собирает корневую команду schedsvc
func NewRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "schedsvc",
		Short:         "Team free-time overlap service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewOverlapCmd())
	return cmd
}
