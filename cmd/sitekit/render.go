package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitekit "github.com/alnah/go-sitekit"
	"github.com/alnah/go-sitekit/internal/hints"
	"github.com/alnah/go-sitekit/internal/yamlutil"
)

// runRender renders one component with the given props.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, rest, err := parseRenderFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	props, err := parseProps(flags.props, flags.set)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(flags.common, &flags.site, env)
	if err != nil {
		return err
	}

	site := buildSite(cfg, env, newLogger(env.Stderr, flags.common))
	if err := site.LoadComponents(ctx, sitePath(cfg.Source.Components)); err != nil {
		return fmt.Errorf("loading components: %w", err)
	}

	name := rest[0]
	html, err := site.Render(name, props)
	if errors.Is(err, sitekit.ErrComponentNotFound) {
		return fmt.Errorf("%w%s", err, hints.ForComponentNotFound(name, componentNames(site.Directory().Components)))
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(env.Stdout, strings.TrimRight(html, "\n"))
	return nil
}

// parseProps decodes the --props mapping, then applies each --set key=value.
// Dotted keys create nested mappings: "author.name=Ann".
func parseProps(raw string, set []string) (map[string]any, error) {
	props, err := yamlutil.UnmarshalMap([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v%s", ErrInvalidProps, err, hints.ForProps())
	}

	for _, kv := range set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: %q is not key=value%s", ErrInvalidProps, kv, hints.ForProps())
		}
		if err := setNested(props, strings.Split(key, "."), value); err != nil {
			return nil, err
		}
	}
	return props, nil
}

func setNested(m map[string]any, keys []string, value string) error {
	for i, k := range keys[:len(keys)-1] {
		switch next := m[k].(type) {
		case map[string]any:
			m = next
		case nil:
			child := map[string]any{}
			m[k] = child
			m = child
		default:
			return fmt.Errorf("%w: %s is not a mapping", ErrInvalidProps, strings.Join(keys[:i+1], "."))
		}
	}
	m[keys[len(keys)-1]] = value
	return nil
}
