package hue

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/amimof/huego"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rs/zerolog/log"
)

// Bridge error types from the v1 API error taxonomy.
const (
	errTypeUnauthorized = 1
	errTypeLinkButton   = 101
)

// Client wraps a huego bridge handle. State patches that must be sent
// verbatim (arbitrary keys, no implied "on" field) bypass huego's typed
// state and go through a raw v1 request instead.
type Client struct {
	bridge     *huego.Bridge
	host       string
	username   string
	httpClient *http.Client
}

// NewClient creates a client for the bridge at host using the registered
// username. The username may be empty for pairing flows.
func NewClient(host, username string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		bridge:   huego.New(host, username),
		host:     host,
		username: username,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Discover locates bridges on the local network and returns their hosts.
func Discover(ctx context.Context) ([]string, error) {
	bridges, err := huego.DiscoverAllContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("bridge discovery failed: %w", err)
	}
	hosts := make([]string, 0, len(bridges))
	for _, b := range bridges {
		hosts = append(hosts, b.Host)
	}
	return hosts, nil
}

// Register pairs with the bridge and returns the created credential. The
// bridge refuses with a link-button error until its button is pressed;
// callers detect that with IsLinkButton and retry.
func (c *Client) Register(ctx context.Context, deviceType string) (string, error) {
	user, err := c.bridge.CreateUserContext(ctx, deviceType)
	if err != nil {
		return "", err
	}
	log.Debug().Str("host", c.host).Msg("Registered with bridge")
	return user, nil
}

// Lights returns all lights known to the bridge.
func (c *Client) Lights(ctx context.Context) ([]huego.Light, error) {
	lights, err := c.bridge.GetLightsContext(ctx)
	if err != nil {
		return nil, err
	}
	return lights, nil
}

// Light returns a single light by id.
func (c *Client) Light(ctx context.Context, id string) (*huego.Light, error) {
	n, err := c.lightID(id)
	if err != nil {
		return nil, err
	}
	return c.bridge.GetLightContext(ctx, n)
}

// On powers a light on.
func (c *Client) On(ctx context.Context, id string) error {
	return c.setPower(ctx, id, true)
}

// Off powers a light off.
func (c *Client) Off(ctx context.Context, id string) error {
	return c.setPower(ctx, id, false)
}

func (c *Client) setPower(ctx context.Context, id string, on bool) error {
	n, err := c.lightID(id)
	if err != nil {
		return err
	}
	_, err = c.bridge.SetLightStateContext(ctx, n, huego.State{On: on})
	return err
}

// SetColor sets a light's color from an RGB triple. The bridge wants CIE xy
// coordinates, so the triple is converted through go-colorful.
func (c *Client) SetColor(ctx context.Context, id string, r, g, b uint8) error {
	n, err := c.lightID(id)
	if err != nil {
		return err
	}
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	x, y, _ := col.Xyy()
	state := huego.State{
		On: true,
		Xy: []float32{float32(x), float32(y)},
	}
	_, err = c.bridge.SetLightStateContext(ctx, n, state)
	return err
}

// SetState sends an arbitrary state document to a light over the v1 API.
// Unlike huego's typed state this carries exactly the given keys, which the
// stdin passthrough and the effect/brightness patches rely on.
func (c *Client) SetState(ctx context.Context, id string, patch map[string]interface{}) error {
	n, err := c.lightID(id)
	if err != nil {
		return err
	}

	body, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	url := fmt.Sprintf("http://%s/api/%s/lights/%d/state", c.host, c.username, n)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	log.Debug().Str("light", id).RawJSON("patch", body).Msg("Setting light state")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("bridge unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, data)
	}
	return decodeAPIResponse(resp.Body)
}

// Rename changes a light's name on the bridge.
func (c *Client) Rename(ctx context.Context, id, name string) error {
	n, err := c.lightID(id)
	if err != nil {
		return err
	}
	_, err = c.bridge.UpdateLightContext(ctx, n, huego.Light{Name: name})
	return err
}

// Search asks the bridge to scan for new lights.
func (c *Client) Search(ctx context.Context) error {
	_, err := c.bridge.FindLightsContext(ctx)
	return err
}

func (c *Client) lightID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, fmt.Errorf("invalid light id %q", id)
	}
	return n, nil
}

// decodeAPIResponse surfaces per-call errors the bridge reports inside a
// 200 response body.
func decodeAPIResponse(r io.Reader) error {
	var results []struct {
		Error *huego.APIError `json:"error"`
	}
	if err := json.NewDecoder(r).Decode(&results); err != nil {
		return fmt.Errorf("cannot parse bridge response: %w", err)
	}
	for _, res := range results {
		if res.Error != nil {
			return res.Error
		}
	}
	return nil
}

// IsUnauthorized reports whether the bridge rejected the request because the
// application credential is missing or unknown.
func IsUnauthorized(err error) bool {
	var aerr *huego.APIError
	return errors.As(err, &aerr) && aerr.Type == errTypeUnauthorized
}

// IsLinkButton reports whether pairing failed only because the bridge's
// link button has not been pressed yet.
func IsLinkButton(err error) bool {
	var aerr *huego.APIError
	return errors.As(err, &aerr) && aerr.Type == errTypeLinkButton
}
