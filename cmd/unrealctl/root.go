package main

import (
	"os"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var engineAddr string

	rootCmd := &cobra.Command{
		Use:           "unrealctl",
		Short:         "Send commands to the Unreal editor bridge",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	defaultAddr := os.Getenv("UNREAL_MCP_ENGINE_ADDR")
	if defaultAddr == "" {
		defaultAddr = "127.0.0.1:55557"
	}
	rootCmd.PersistentFlags().StringVar(&engineAddr, "engine-addr", defaultAddr, "Unreal editor bridge address")

	rootCmd.AddCommand(newSendCommand(&engineAddr))
	rootCmd.AddCommand(newActorsCommand(&engineAddr))
	rootCmd.AddCommand(newJournalCommand())

	return rootCmd
}
