package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/renato0307/maestro/internal/domain"
)

// ListPlaylists implements PlaylistCatalog.ListPlaylists
func (r *SQLiteRepository) ListPlaylists(ctx context.Context) ([]domain.Playlist, error) {
	var playlists []PlaylistModel
	var sounds []SoundModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Order("name, id").Find(&playlists).Error; err != nil {
				return err
			}
			return tx.Order("sort, name").Find(&sounds).Error
		})
	}, 3)
	if err != nil {
		return nil, err
	}

	byPlaylist := make(map[string][]SoundModel, len(playlists))
	for _, s := range sounds {
		byPlaylist[s.PlaylistID] = append(byPlaylist[s.PlaylistID], s)
	}

	result := make([]domain.Playlist, 0, len(playlists))
	for _, p := range playlists {
		result = append(result, playlistModelToDomain(p, byPlaylist[p.ID]))
	}
	return result, nil
}

// GetPlaylist implements PlaylistCatalog.GetPlaylist
func (r *SQLiteRepository) GetPlaylist(ctx context.Context, id string) (*domain.Playlist, error) {
	var playlist PlaylistModel
	var sounds []SoundModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("id = ?", id).First(&playlist).Error; err != nil {
				return err
			}
			return tx.Where("playlist_id = ?", id).Order("sort, name").Find(&sounds).Error
		})
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("playlist %s: %w", id, domain.ErrPlaylistNotFound)
		}
		return nil, err
	}

	result := playlistModelToDomain(playlist, sounds)
	return &result, nil
}

// AddPlaylist implements PlaylistCatalog.AddPlaylist
func (r *SQLiteRepository) AddPlaylist(ctx context.Context, name string, mode domain.PlaybackMode) (*domain.Playlist, error) {
	model := PlaylistModel{ID: uuid.NewString(), Mode: int(mode), Name: name}
	err := withRetry(func() error {
		return r.db.WithContext(ctx).Create(&model).Error
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist: %w", err)
	}

	result := playlistModelToDomain(model, nil)
	return &result, nil
}

// AddSound implements PlaylistCatalog.AddSound. A sound without a sort key
// is appended after the playlist's last sound.
func (r *SQLiteRepository) AddSound(ctx context.Context, playlistID string, sound domain.Sound) (*domain.Sound, error) {
	model := domainToSoundModel(sound)
	model.PlaylistID = playlistID
	if model.ID == "" {
		model.ID = uuid.NewString()
	}

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&PlaylistModel{}).Where("id = ?", playlistID).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return fmt.Errorf("playlist %s: %w", playlistID, domain.ErrPlaylistNotFound)
			}

			if model.Sort == 0 {
				var maxSort *int
				tx.Model(&SoundModel{}).Where("playlist_id = ?", playlistID).Select("MAX(sort)").Scan(&maxSort)
				if maxSort != nil {
					model.Sort = *maxSort + 1
				}
			}

			return tx.Create(&model).Error
		})
	}, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to create sound: %w", err)
	}

	result := soundModelToDomain(model)
	return &result, nil
}

// DeletePlaylist implements PlaylistCatalog.DeletePlaylist, removing its sounds and flags
func (r *SQLiteRepository) DeletePlaylist(ctx context.Context, id string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			result := tx.Where("id = ?", id).Delete(&PlaylistModel{})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return fmt.Errorf("playlist %s: %w", id, domain.ErrPlaylistNotFound)
			}
			if err := tx.Where("playlist_id = ?", id).Delete(&SoundModel{}).Error; err != nil {
				return err
			}
			return tx.Where("document_kind = ? AND document_id = ?", string(domain.DocumentPlaylist), id).
				Delete(&FlagModel{}).Error
		})
	}, 3)
}

// DeleteSound implements PlaylistCatalog.DeleteSound
func (r *SQLiteRepository) DeleteSound(ctx context.Context, ref domain.SoundRef) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).
			Where("id = ? AND playlist_id = ?", ref.SoundID, ref.PlaylistID).
			Delete(&SoundModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("sound %s: %w", ref, domain.ErrSoundNotFound)
		}
		return nil
	}, 3)
}

// SetPlaylistMode implements PlaylistCatalog.SetPlaylistMode
func (r *SQLiteRepository) SetPlaylistMode(ctx context.Context, id string, mode domain.PlaybackMode) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&PlaylistModel{}).Where("id = ?", id).Update("mode", int(mode))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("playlist %s: %w", id, domain.ErrPlaylistNotFound)
		}
		return nil
	}, 3)
}

// SetSoundRepeat implements PlaylistCatalog.SetSoundRepeat
func (r *SQLiteRepository) SetSoundRepeat(ctx context.Context, ref domain.SoundRef, repeat bool) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&SoundModel{}).
			Where("id = ? AND playlist_id = ?", ref.SoundID, ref.PlaylistID).
			Update("repeat", repeat)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("sound %s: %w", ref, domain.ErrSoundNotFound)
		}
		return nil
	}, 3)
}
