package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/renato0307/maestro/internal/domain"
)

// GetActor implements ActorDirectory.GetActor
func (r *SQLiteRepository) GetActor(ctx context.Context, id string) (*domain.Actor, error) {
	var model ActorModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("actor %s: %w", id, domain.ErrActorNotFound)
		}
		return nil, err
	}

	actor := actorModelToDomain(model)
	return &actor, nil
}

// FindActorByName implements ActorDirectory.FindActorByName
func (r *SQLiteRepository) FindActorByName(ctx context.Context, name string) (*domain.Actor, error) {
	var model ActorModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("name = ?", name).First(&model).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("actor named %q: %w", name, domain.ErrActorNotFound)
		}
		return nil, err
	}

	actor := actorModelToDomain(model)
	return &actor, nil
}

// ListActors implements ActorDirectory.ListActors
func (r *SQLiteRepository) ListActors(ctx context.Context) ([]domain.Actor, error) {
	var models []ActorModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Order("name").Find(&models).Error
	}, 3)
	if err != nil {
		return nil, err
	}

	actors := make([]domain.Actor, 0, len(models))
	for _, m := range models {
		actors = append(actors, actorModelToDomain(m))
	}
	return actors, nil
}

// AddActor implements ActorWriter.AddActor
func (r *SQLiteRepository) AddActor(ctx context.Context, name string) (*domain.Actor, error) {
	model := ActorModel{ID: uuid.NewString(), Name: name}
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to create actor: %w", err)
	}

	actor := actorModelToDomain(model)
	return &actor, nil
}

// DeleteActor implements ActorWriter.DeleteActor, dropping the actor's flags with it
func (r *SQLiteRepository) DeleteActor(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Where("id = ?", id).Delete(&ActorModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("actor %s: %w", id, domain.ErrActorNotFound)
			}
			return tx.Where("document_kind = ? AND document_id = ?", string(domain.DocumentActor), id).
				Delete(&FlagModel{}).Error
		})
	}, 3)
}
