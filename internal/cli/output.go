package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/amimof/huego"

	"github.com/c0rrell/hue-cli/internal/lights"
)

// callResult is the JSON shape for one per-light outcome.
type callResult struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// printJSON writes v pretty-printed with 2-space indentation.
func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// renderResults writes the per-light outcomes, either as human-readable
// lines or as a single JSON document, never both.
func renderResults(w io.Writer, kind lights.Action, results []lights.Result) error {
	if kind == lights.ActionInfo {
		return renderInfo(w, results)
	}
	if jsonOut {
		out := make([]callResult, len(results))
		for i, r := range results {
			out[i] = callResult{ID: r.ID, Name: r.Name}
			if r.Err != nil {
				out[i].Error = r.Err.Error()
			} else {
				out[i].Result = resultLabel(kind, r)
			}
		}
		return printJSON(w, out)
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s: error: %v\n", displayName(r), r.Err)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", displayName(r), resultLabel(kind, r))
	}
	return nil
}

// renderInfo writes the info-query output: raw light objects in JSON mode,
// one summary line per light otherwise.
func renderInfo(w io.Writer, results []lights.Result) error {
	if jsonOut {
		out := make([]interface{}, len(results))
		for i, r := range results {
			if r.Err != nil {
				out[i] = callResult{ID: r.ID, Name: r.Name, Error: r.Err.Error()}
				continue
			}
			out[i] = r.Light
		}
		return printJSON(w, out)
	}
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(w, "%s: error: %v\n", displayName(r), r.Err)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", r.ID, infoLine(r.Light))
	}
	return nil
}

func infoLine(l *huego.Light) string {
	state := "off"
	var bri uint8
	if l.State != nil {
		if l.State.On {
			state = "on"
		}
		bri = l.State.Bri
	}
	return fmt.Sprintf("%-3s bri %3d  %s", state, bri, l.Name)
}

func resultLabel(kind lights.Action, r lights.Result) string {
	switch kind {
	case lights.ActionOn:
		return "on"
	case lights.ActionOff:
		return "off"
	case lights.ActionColorloop:
		return "colorloop"
	case lights.ActionAlert:
		return "alert"
	case lights.ActionClear:
		return "cleared"
	case lights.ActionReset:
		return "reset"
	case lights.ActionState:
		return "state updated"
	case lights.ActionColor:
		return "color set"
	case lights.ActionBrightness:
		return fmt.Sprintf("brightness %d", r.Bri)
	}
	return "done"
}

func displayName(r lights.Result) string {
	if r.Name != "" {
		return r.Name
	}
	return r.ID
}
