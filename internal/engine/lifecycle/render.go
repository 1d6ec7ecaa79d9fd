package lifecycle

import (
	"context"
	"strconv"
	"strings"

	"go.trai.ch/quill/internal/core/domain"
	"go.trai.ch/quill/internal/core/ports"
	"go.trai.ch/zerr"
)

// maxCallDepth bounds nested tag and inner unit calls.
const maxCallDepth = 64

// Args are render arguments, bound by name or by position.
type Args struct {
	Named      map[string]any
	Positional []any
}

// ByName returns named render arguments.
func ByName(named map[string]any) Args {
	return Args{Named: named}
}

// ByPosition returns positional render arguments.
func ByPosition(args ...any) Args {
	return Args{Positional: args}
}

func (a Args) bind(inst ports.Instance) error {
	if a.Named != nil {
		if err := inst.SetRenderArgs(a.Named); err != nil {
			return err
		}
	}
	if len(a.Positional) > 0 {
		return inst.SetRenderArgsAt(a.Positional...)
	}
	return nil
}

// named maps positional arguments onto the declared names.
func (a Args) named(names []string) map[string]any {
	if a.Named != nil || len(a.Positional) == 0 {
		return a.Named
	}
	out := make(map[string]any, len(a.Positional))
	for i, v := range a.Positional {
		if i >= len(names) {
			break
		}
		out[names[i]] = v
	}
	return out
}

// Render renders the template named by identifier, or identifier itself as inline template text.
func (m *Manager) Render(ctx context.Context, identifier string, args Args) (string, error) {
	u, err := m.Resolve(ctx, identifier)
	if err != nil {
		return "", err
	}

	ctx, vertex := m.telemetry.Record(ctx, "render "+u.StableKey())
	out, err := m.renderUnit(ctx, u, args, "", 0)
	vertex.Complete(err)
	if err != nil {
		return "", err
	}
	if m.sanitizer != nil {
		out = m.sanitizer.Sanitize(out)
	}
	return out, nil
}

// renderUnit builds u and then each of its ancestors, passing the output down as the body.
func (m *Manager) renderUnit(ctx context.Context, u *Unit, args Args, body string, depth int) (string, error) {
	seen := make(map[*Unit]bool)
	for u != nil {
		key := u.StableKey()
		if seen[u] {
			return "", zerr.With(domain.ErrExtendsCycle, "unit", key)
		}
		seen[u] = true

		var buf strings.Builder
		inst, err := u.Instantiate(ctx, &buf)
		if err != nil {
			return "", err
		}
		if err := args.bind(inst); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrBindFailed.Error()), "unit", key)
		}
		if err := inst.Build(body, m.caller(ctx, u, depth)); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "unit", key)
		}

		body = buf.String()
		args = ByName(args.named(inst.ArgNames()))
		u = u.Extends()
	}
	return body, nil
}

func (m *Manager) caller(ctx context.Context, from *Unit, depth int) ports.CallFunc {
	return func(name string, args ...any) (string, error) {
		if depth+1 > maxCallDepth {
			return "", zerr.With(zerr.With(domain.ErrRenderFailed, "call", name), "depth", strconv.Itoa(depth+1))
		}
		target, err := m.resolveCall(ctx, from, name)
		if err != nil {
			return "", err
		}
		return m.renderUnit(ctx, target, ByPosition(args...), "", depth+1)
	}
}

// resolveCall finds the unit called by name: an inner unit of the caller's root, a known
// tag, then a tag template located on disk.
func (m *Manager) resolveCall(ctx context.Context, from *Unit, name string) (*Unit, error) {
	if inner, ok := from.Root().Inner(name); ok {
		return inner, nil
	}
	if u, ok := m.cache.ByTag(name); ok {
		if _, err := u.Refresh(ctx); err != nil {
			return nil, zerr.With(err, "tag", name)
		}
		return u, nil
	}
	res, ok := m.locator.FindTag(name)
	if !ok {
		return nil, zerr.With(domain.ErrTagNotFound, "tag", name)
	}
	u, err := m.refreshed(ctx, res)
	if err != nil {
		return nil, zerr.With(err, "tag", name)
	}
	return u, nil
}
