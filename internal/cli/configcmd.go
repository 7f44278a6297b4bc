package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := resolveConfig()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if jsonOut {
			return printJSON(w, cfg)
		}
		fmt.Fprintf(w, "config:   %s\n", path)
		fmt.Fprintf(w, "host:     %s\n", orUnset(cfg.Host))
		fmt.Fprintf(w, "username: %s\n", orUnset(cfg.Username))
		for _, name := range sortedKeys(cfg.Colors) {
			fmt.Fprintf(w, "color %s: %s\n", name, cfg.Colors[name])
		}
		for _, name := range sortedKeys(cfg.Alias) {
			fmt.Fprintf(w, "alias %s: %s\n", name, cfg.Alias[name])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func orUnset(s string) string {
	if s == "" {
		return "(unset)"
	}
	return s
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
