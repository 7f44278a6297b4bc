package lights

import "testing"

func TestBuildPatchKeywords(t *testing.T) {
	tests := []struct {
		action string
		kind   Action
	}{
		{"", ActionInfo},
		{"on", ActionOn},
		{"off", ActionOff},
		{"colorloop", ActionColorloop},
		{"alert", ActionAlert},
		{"clear", ActionClear},
		{"reset", ActionReset},
	}
	for _, tt := range tests {
		p, err := BuildPatch(tt.action, nil, nil)
		if err != nil {
			t.Errorf("BuildPatch(%q) error: %v", tt.action, err)
			continue
		}
		if p.Kind != tt.kind {
			t.Errorf("BuildPatch(%q) kind = %d, want %d", tt.action, p.Kind, tt.kind)
		}
	}
}

func TestBuildPatchBrightness(t *testing.T) {
	p, err := BuildPatch("+25%", nil, nil)
	if err != nil {
		t.Fatalf("BuildPatch error: %v", err)
	}
	if p.Kind != ActionBrightness {
		t.Fatalf("kind = %d, want ActionBrightness", p.Kind)
	}
	if p.Adjust.Op != '+' || p.Adjust.Amount != 25 || !p.Adjust.Percent {
		t.Errorf("adjust = %+v", p.Adjust)
	}
}

func TestBuildPatchColor(t *testing.T) {
	p, err := BuildPatch("tomato", map[string]string{}, nil)
	if err != nil {
		t.Fatalf("BuildPatch error: %v", err)
	}
	if p.Kind != ActionColor {
		t.Fatalf("kind = %d, want ActionColor", p.Kind)
	}
	if p.R != 0xff || p.G != 0x63 || p.B != 0x47 {
		t.Errorf("rgb = %d,%d,%d", p.R, p.G, p.B)
	}
}

func TestBuildPatchState(t *testing.T) {
	p, err := BuildPatch("state", nil, []byte(`{"bri_inc": 30}`))
	if err != nil {
		t.Fatalf("BuildPatch error: %v", err)
	}
	if p.Kind != ActionState {
		t.Fatalf("kind = %d, want ActionState", p.Kind)
	}
	if p.Raw["bri_inc"] != float64(30) {
		t.Errorf("raw = %v", p.Raw)
	}

	if _, err := BuildPatch("state", nil, []byte("not json")); err == nil {
		t.Error("malformed stdin state must be an error")
	}
}

func TestBuildPatchUnknownToken(t *testing.T) {
	if _, err := BuildPatch("definitelynotacolor", nil, nil); err == nil {
		t.Error("unknown action token must be an error")
	}
}
