package lights

import "strings"

// Shortcut keywords: a selector consisting of exactly one of these expands
// to every known light, and (except "all") the keyword also becomes the
// action, so "lights off" behaves as "lights all off".
var shortcuts = map[string]bool{
	"all":       true,
	"on":        true,
	"off":       true,
	"colorloop": true,
	"alert":     true,
	"clear":     true,
	"reset":     true,
	"state":     true,
}

// Resolve turns the selector token into the ordered set of target light ids
// and the effective action token. Resolution order: shortcut keyword, then
// configured alias, then the literal comma-separated list (unknown ids pass
// through so the bridge can report them per id).
func Resolve(selector, action string, knownIDs []string, aliases map[string]string) (ids []string, effective string) {
	if selector == "" {
		return append([]string(nil), knownIDs...), action
	}
	parts := splitIDs(selector)
	if len(parts) == 1 {
		token := parts[0]
		if shortcuts[token] {
			if token != "all" {
				action = token
			}
			return append([]string(nil), knownIDs...), action
		}
		if list, ok := aliases[token]; ok {
			return splitIDs(list), action
		}
	}
	return parts, action
}

func splitIDs(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
