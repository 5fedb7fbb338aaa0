// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// maxListed caps how many names a hint lists.
const maxListed = 10

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-sitekit/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-sitekit") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForComponentNotFound lists the loaded component names, preferring the
// ones sharing the requested name's namespace.
func ForComponentNotFound(name string, available []string) string {
	if len(available) == 0 {
		return ForNoComponents()
	}

	var candidates []string
	if i := strings.LastIndexAny(name, "./"); i > 0 {
		prefix := strings.ToLower(strings.ReplaceAll(name[:i+1], "/", "."))
		for _, a := range available {
			if strings.HasPrefix(a, prefix) {
				candidates = append(candidates, a)
			}
		}
	}
	if len(candidates) == 0 {
		candidates = available
	}

	return format("available: " + joinLimited(candidates))
}

// ForNoComponents returns hints for an empty component tree.
func ForNoComponents() string {
	return format("no components loaded; check --components and that files use a supported extension")
}

// ForUnsupportedFile returns hints listing the registered extensions.
func ForUnsupportedFile(exts []string) string {
	if len(exts) == 0 {
		return ""
	}
	return format("supported extensions: " + joinLimited(exts))
}

// ForProps returns hints for props that are not a YAML mapping.
func ForProps() string {
	return format(`pass a mapping, e.g. --props "title: Hello" or --set title=Hello`)
}

func joinLimited(names []string) string {
	if len(names) <= maxListed {
		return strings.Join(names, ", ")
	}
	return strings.Join(names[:maxListed], ", ") + ", ..."
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
