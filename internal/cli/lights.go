package cli

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/c0rrell/hue-cli/internal/lights"
)

var lightsCmd = &cobra.Command{
	Use:     "lights [selector] [action]",
	Aliases: []string{"light", "list"},
	Short:   "Show or change light state",
	Long: `Show or change the state of one or more lights.

The selector is a light id, a comma-separated id list, a configured alias,
or one of the shortcuts all, on, off, colorloop, alert, clear, reset and
state, which target every light. A shortcut other than "all" is also the
action, so "hue lights off" turns everything off.

Actions: on, off, colorloop, alert, clear, reset, state (reads a JSON
state patch from stdin), a brightness expression (=N, +N, -N, optionally
with %), or a color name / hex value.

Without an action the selected lights' current state is printed.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runLights,
}

func init() {
	rootCmd.AddCommand(lightsCmd)
}

func runLights(cmd *cobra.Command, args []string) error {
	cfg, _, err := resolveConfig()
	if err != nil {
		return err
	}
	client, err := bridgeClient(cfg)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	all, err := client.Lights(ctx)
	if err != nil {
		return bridgeErr(err)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })

	knownIDs := make([]string, len(all))
	names := make(map[string]string, len(all))
	for i, l := range all {
		id := strconv.Itoa(l.ID)
		knownIDs[i] = id
		names[id] = l.Name
	}

	var selector, action string
	if len(args) > 0 {
		selector = args[0]
	}
	if len(args) > 1 {
		action = args[1]
	}
	ids, action := lights.Resolve(selector, action, knownIDs, cfg.Alias)

	// The state action consumes stdin whole before anything is dispatched.
	var raw []byte
	if action == "state" {
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("cannot read state patch from stdin: %w", err)
		}
	}

	patch, err := lights.BuildPatch(action, cfg.Colors, raw)
	if err != nil {
		return err
	}

	results := lights.Dispatch(ctx, client, ids, names, patch)
	return renderResults(cmd.OutOrStdout(), patch.Kind, results)
}
