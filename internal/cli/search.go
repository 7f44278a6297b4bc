package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Ask the bridge to scan for new lights",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := resolveConfig()
		if err != nil {
			return err
		}
		client, err := bridgeClient(cfg)
		if err != nil {
			return err
		}
		if err := client.Search(cmd.Context()); err != nil {
			return bridgeErr(err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Searching for new lights; check back with 'hue lights' in a minute")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
