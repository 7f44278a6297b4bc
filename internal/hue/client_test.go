package hue

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/amimof/huego"
)

func TestSetStateSendsVerbatimPatch(t *testing.T) {
	var gotPath string
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(body, &gotBody); err != nil {
			t.Errorf("request body not JSON: %v", err)
		}
		w.Write([]byte(`[{"success":{"/lights/3/state/bri":128}}]`))
	}))
	defer srv.Close()

	host := strings.TrimPrefix(srv.URL, "http://")
	c := NewClient(host, "testuser", time.Second)

	patch := map[string]interface{}{"bri_inc": 30, "transitiontime": 10}
	if err := c.SetState(context.Background(), "3", patch); err != nil {
		t.Fatalf("SetState error: %v", err)
	}
	if gotPath != "/api/testuser/lights/3/state" {
		t.Errorf("path = %q", gotPath)
	}
	if len(gotBody) != 2 || gotBody["bri_inc"] != float64(30) {
		t.Errorf("body = %v, want the patch verbatim", gotBody)
	}
}

func TestSetStateSurfacesBridgeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"error":{"type":201,"address":"/lights/3/state","description":"parameter not modifiable"}}]`))
	}))
	defer srv.Close()

	c := NewClient(strings.TrimPrefix(srv.URL, "http://"), "testuser", time.Second)
	err := c.SetState(context.Background(), "3", map[string]interface{}{"bri": 10})
	if err == nil {
		t.Fatal("bridge error must not be swallowed")
	}
	var aerr *huego.APIError
	if !errors.As(err, &aerr) || aerr.Type != 201 {
		t.Errorf("expected API error type 201, got %v", err)
	}
}

func TestSetStateUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"error":{"type":1,"address":"/","description":"unauthorized user"}}]`))
	}))
	defer srv.Close()

	c := NewClient(strings.TrimPrefix(srv.URL, "http://"), "nobody", time.Second)
	err := c.SetState(context.Background(), "1", map[string]interface{}{"on": true})
	if !IsUnauthorized(err) {
		t.Errorf("expected unauthorized error, got %v", err)
	}
}

func TestSetStateRejectsBadID(t *testing.T) {
	c := NewClient("127.0.0.1", "user", time.Second)
	if err := c.SetState(context.Background(), "hallway", nil); err == nil {
		t.Error("non-numeric id must be an error")
	}
}

func TestIsLinkButton(t *testing.T) {
	if !IsLinkButton(&huego.APIError{Type: 101}) {
		t.Error("type 101 is the link button error")
	}
	if IsLinkButton(&huego.APIError{Type: 1}) {
		t.Error("type 1 is not the link button error")
	}
	if IsLinkButton(errors.New("plain")) {
		t.Error("plain errors are not link button errors")
	}
}

func TestIsUnauthorized(t *testing.T) {
	if !IsUnauthorized(&huego.APIError{Type: 1}) {
		t.Error("type 1 is the unauthorized error")
	}
	if IsUnauthorized(nil) {
		t.Error("nil is not an error")
	}
}
