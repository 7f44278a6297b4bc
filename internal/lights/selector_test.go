package lights

import (
	"reflect"
	"testing"
)

func TestResolve(t *testing.T) {
	known := []string{"1", "2", "3"}
	aliases := map[string]string{
		"livingroom": "1,2,3",
		"desk":       "2",
	}

	tests := []struct {
		name       string
		selector   string
		action     string
		wantIDs    []string
		wantAction string
	}{
		{"empty_selector", "", "", []string{"1", "2", "3"}, ""},
		{"all", "all", "on", []string{"1", "2", "3"}, "on"},
		{"shortcut_off_forces_action", "off", "", []string{"1", "2", "3"}, "off"},
		{"shortcut_on_forces_action", "on", "", []string{"1", "2", "3"}, "on"},
		{"shortcut_colorloop", "colorloop", "", []string{"1", "2", "3"}, "colorloop"},
		{"shortcut_reset", "reset", "", []string{"1", "2", "3"}, "reset"},
		{"alias", "livingroom", "on", []string{"1", "2", "3"}, "on"},
		{"alias_single", "desk", "off", []string{"2"}, "off"},
		{"id_list", "1,3", "on", []string{"1", "3"}, "on"},
		{"single_id", "2", "", []string{"2"}, ""},
		{"unknown_passthrough", "99", "on", []string{"99"}, "on"},
		{"unknown_token_passthrough", "garage", "on", []string{"garage"}, "on"},
		{"list_with_spaces", "1, 2", "on", []string{"1", "2"}, "on"},
		{"list_not_shortcut", "off,on", "", []string{"off", "on"}, ""},
	}
	for _, tt := range tests {
		ids, action := Resolve(tt.selector, tt.action, known, aliases)
		if !reflect.DeepEqual(ids, tt.wantIDs) {
			t.Errorf("%s: Resolve ids = %v, want %v", tt.name, ids, tt.wantIDs)
		}
		if action != tt.wantAction {
			t.Errorf("%s: Resolve action = %q, want %q", tt.name, action, tt.wantAction)
		}
	}
}

func TestResolveDoesNotShareKnownIDs(t *testing.T) {
	known := []string{"1", "2"}
	ids, _ := Resolve("all", "", known, nil)
	ids[0] = "mutated"
	if known[0] != "1" {
		t.Error("Resolve must copy the known id list")
	}
}
