package cli

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
)

const releasesURL = "https://api.github.com/repos/c0rrell/hue-cli/releases/latest"

// runUpdates compares the running version against the latest published
// release tag.
func runUpdates(cmd *cobra.Command) error {
	req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, releasesURL, nil)
	if err != nil {
		return err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("update check failed: status %d", resp.StatusCode)
	}
	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return fmt.Errorf("update check failed: %w", err)
	}

	w := cmd.OutOrStdout()
	version := cmd.Root().Version
	current := "v" + version
	if release.TagName == "" || release.TagName == current || release.TagName == version {
		fmt.Fprintf(w, "hue %s is up to date\n", version)
		return nil
	}
	fmt.Fprintf(w, "hue %s is available (running %s)\n", release.TagName, version)
	return nil
}
