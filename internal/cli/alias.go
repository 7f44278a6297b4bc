package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/c0rrell/hue-cli/internal/config"
)

var aliasCmd = &cobra.Command{
	Use:   "alias [name] [ids]",
	Short: "Manage light-group aliases",
	Long: `Without arguments, list the configured aliases. With a name, show
that alias. With a name and a comma-separated id list, set alias and save
the config, so "hue alias livingroom 1,2,3" makes "hue lights livingroom on"
target lights 1, 2 and 3.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runAlias,
}

func init() {
	rootCmd.AddCommand(aliasCmd)
}

func runAlias(cmd *cobra.Command, args []string) error {
	cfg, path, err := resolveConfig()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()

	switch len(args) {
	case 0:
		if jsonOut {
			aliases := cfg.Alias
			if aliases == nil {
				aliases = map[string]string{}
			}
			return printJSON(w, aliases)
		}
		names := make([]string, 0, len(cfg.Alias))
		for name := range cfg.Alias {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "%s: %s\n", name, cfg.Alias[name])
		}
		return nil
	case 1:
		ids, ok := cfg.Alias[args[0]]
		if !ok {
			return fmt.Errorf("alias %q is not defined", args[0])
		}
		if jsonOut {
			return printJSON(w, map[string]string{args[0]: ids})
		}
		fmt.Fprintf(w, "%s: %s\n", args[0], ids)
		return nil
	default:
		// Reload without flag overrides so a -H host is not persisted.
		fileCfg, err := config.Load(path, configPath != "")
		if err != nil {
			return err
		}
		fileCfg.SetAlias(args[0], args[1])
		if err := config.Save(path, fileCfg); err != nil {
			return err
		}
		fmt.Fprintf(w, "alias %s -> %s\n", args[0], args[1])
		return nil
	}
}
