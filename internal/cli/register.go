package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/c0rrell/hue-cli/internal/config"
	"github.com/c0rrell/hue-cli/internal/hue"
)

const (
	pairAttempts = 30
	pairInterval = 2 * time.Second
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Pair with a bridge and write a fresh config file",
	Long: `Discover a bridge (unless -H is given), create an application
credential on it, and write the config file. The bridge only accepts the
pairing while its link button is pressed, so registration keeps retrying
for a minute while you walk over and press it.`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return err
		}
	}
	// Refuse to clobber an existing config. Checked before any network
	// traffic so a failed discovery cannot mask the real problem.
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists; remove it to re-register", path)
	}

	ctx := cmd.Context()
	host := hostFlag
	if host == "" {
		hosts, err := hue.Discover(ctx)
		if err != nil {
			return err
		}
		if len(hosts) == 0 {
			return fmt.Errorf("no bridge found on the local network; pass -H to set one")
		}
		host = hosts[0]
		fmt.Fprintf(cmd.OutOrStdout(), "Found bridge at %s\n", host)
	}

	client := hue.NewClient(host, "", requestTimeout)
	deviceType := "hue-cli#" + uuid.NewString()[:8]

	fmt.Fprintln(cmd.OutOrStdout(), "Press the link button on the bridge...")
	var username string
	var err error
	for attempt := 0; attempt < pairAttempts; attempt++ {
		username, err = client.Register(ctx, deviceType)
		if err == nil {
			break
		}
		if !hue.IsLinkButton(err) {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(pairInterval):
		}
	}
	if err != nil {
		return fmt.Errorf("bridge link button was not pressed: %w", err)
	}

	cfg := &config.Config{Host: host, Username: username}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Registered with %s; config written to %s\n", host, path)
	return nil
}
