package scheduler

import (
	"context"
	"io"

	"go.trai.ch/quill/internal/engine/lifecycle"
)

var _ Engine = ManagerEngine{}

// ManagerEngine drives a lifecycle.Manager.
type ManagerEngine struct {
	Manager *lifecycle.Manager
}

// Plan implements Engine.
func (e ManagerEngine) Plan(ctx context.Context, key string) (string, error) {
	u, err := e.Manager.Resolve(ctx, key)
	if err != nil {
		return "", err
	}
	if parent := u.Extends(); parent != nil {
		return parent.StableKey(), nil
	}
	return "", nil
}

// Prepare implements Engine. It loads the master instance of the unit's current version.
func (e ManagerEngine) Prepare(ctx context.Context, key string) error {
	u, ok := e.Manager.Cache().ByKey(key)
	if !ok {
		var err error
		if u, err = e.Manager.Resolve(ctx, key); err != nil {
			return err
		}
	}
	_, err := u.Instantiate(ctx, io.Discard)
	return err
}
