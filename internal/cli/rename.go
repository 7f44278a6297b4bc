package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id> <name>",
	Short: "Rename a light",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := resolveConfig()
		if err != nil {
			return err
		}
		client, err := bridgeClient(cfg)
		if err != nil {
			return err
		}
		if err := client.Rename(cmd.Context(), args[0], args[1]); err != nil {
			return bridgeErr(err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "light %s renamed to %s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
