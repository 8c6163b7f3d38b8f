package ports

import (
	"context"

	"github.com/renato0307/maestro/internal/domain"
)

// FlagStore reads and writes namespaced key-value flags on documents.
// Writes are last-write-wins.
type FlagStore interface {
	// GetFlag decodes the flag into out. Returns false when the flag is unset.
	GetFlag(ctx context.Context, doc domain.DocumentRef, key string, out any) (bool, error)
	SetFlag(ctx context.Context, doc domain.DocumentRef, key string, value any) error
	UnsetFlag(ctx context.Context, doc domain.DocumentRef, key string) error
}

// SettingsStore reads and writes module settings keyed by module and setting name
type SettingsStore interface {
	// GetSetting decodes the setting into out. Returns false when nothing is stored.
	GetSetting(ctx context.Context, module, key string, out any) (bool, error)
	SetSetting(ctx context.Context, module, key string, value any) error
}
