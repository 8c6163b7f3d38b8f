package ports

import (
	"context"

	"github.com/renato0307/maestro/internal/domain"
)

// ActorDirectory looks up actors
type ActorDirectory interface {
	FindActorByName(ctx context.Context, name string) (*domain.Actor, error)
	GetActor(ctx context.Context, id string) (*domain.Actor, error)
	ListActors(ctx context.Context) ([]domain.Actor, error)
}

// ActorWriter creates and removes actors
type ActorWriter interface {
	AddActor(ctx context.Context, name string) (*domain.Actor, error)
	DeleteActor(ctx context.Context, id string) error
}
