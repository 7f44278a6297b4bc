package lights

import (
	"context"
	"fmt"
	"sync"

	"github.com/amimof/huego"
	"github.com/rs/zerolog/log"
)

// Bridge is the subset of bridge operations the dispatcher needs. Light ids
// are strings here; the bridge implementation reports ids it cannot address.
type Bridge interface {
	Light(ctx context.Context, id string) (*huego.Light, error)
	On(ctx context.Context, id string) error
	Off(ctx context.Context, id string) error
	SetState(ctx context.Context, id string, patch map[string]interface{}) error
	SetColor(ctx context.Context, id string, r, g, b uint8) error
}

// Result is the outcome of one per-light operation.
type Result struct {
	ID   string
	Name string
	Err  error

	// Light is set for info queries.
	Light *huego.Light
	// Bri is the brightness after a brightness change.
	Bri uint8
}

// Dispatch applies the patch to every selected light concurrently and waits
// for all of them. Failures are collected per light and never abort the
// siblings; the caller decides how to render them.
func Dispatch(ctx context.Context, b Bridge, ids []string, names map[string]string, patch Patch) []Result {
	results := make([]Result, len(ids))
	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			results[i] = apply(ctx, b, id, names[id], patch)
		}(i, id)
	}
	wg.Wait()
	return results
}

func apply(ctx context.Context, b Bridge, id, name string, patch Patch) Result {
	res := Result{ID: id, Name: name}
	log.Debug().Str("light", id).Int("action", int(patch.Kind)).Msg("Dispatching")

	switch patch.Kind {
	case ActionInfo:
		l, err := b.Light(ctx, id)
		if err != nil {
			res.Err = err
			return res
		}
		res.Light = l
		res.Name = l.Name
	case ActionOn:
		res.Err = b.On(ctx, id)
	case ActionOff:
		res.Err = b.Off(ctx, id)
	case ActionColor:
		res.Err = b.SetColor(ctx, id, patch.R, patch.G, patch.B)
	case ActionBrightness:
		res.Bri, res.Err = adjustBrightness(ctx, b, id, patch.Adjust)
	default:
		raw, ok := patch.RawState()
		if !ok {
			res.Err = fmt.Errorf("unknown action %d", patch.Kind)
			return res
		}
		res.Err = b.SetState(ctx, id, raw)
	}
	return res
}

// adjustBrightness needs the current level for relative expressions, so it
// reads the light, applies the patch, and confirms the resulting value.
func adjustBrightness(ctx context.Context, b Bridge, id string, adj Adjustment) (uint8, error) {
	l, err := b.Light(ctx, id)
	if err != nil {
		return 0, err
	}
	var current uint8
	if l.State != nil {
		current = l.State.Bri
	}
	target := adj.Apply(current)
	if err := b.SetState(ctx, id, map[string]interface{}{"bri": target}); err != nil {
		return 0, err
	}
	updated, err := b.Light(ctx, id)
	if err != nil || updated.State == nil {
		// The change went through; report the requested level.
		return target, nil
	}
	return updated.State.Bri, nil
}
