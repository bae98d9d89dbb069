package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flopperam/unrealmcp/internal/unreal"
)

func newSendCommand(engineAddr *string) *cobra.Command {
	var paramsFlag string

	cmd := &cobra.Command{
		Use:   "send <command-type>",
		Short: "Send a raw command to the editor and print the response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var params map[string]any
			if paramsFlag != "" {
				if err := json.Unmarshal([]byte(paramsFlag), &params); err != nil {
					return fmt.Errorf("parse params: %w", err)
				}
			}

			client := unreal.NewClient(*engineAddr)
			resp, err := client.SendCommand(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}

			out := map[string]any{"status": resp.Status}
			if len(resp.Result) > 0 {
				out["result"] = json.RawMessage(resp.Result)
			}
			if resp.Message != "" {
				out["error"] = resp.Message
			}
			encoded, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return fmt.Errorf("encode response: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}

	cmd.Flags().StringVar(&paramsFlag, "params", "", "Command parameters as a JSON object")

	return cmd
}
