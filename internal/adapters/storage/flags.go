package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/maestro/internal/domain"
)

// GetFlag implements FlagStore.GetFlag
func (r *SQLiteRepository) GetFlag(ctx context.Context, doc domain.DocumentRef, key string, out any) (bool, error) {
	var flag FlagModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("namespace = ? AND document_kind = ? AND document_id = ? AND flag_key = ?",
				domain.Namespace, string(doc.Kind), doc.ID, key).
			First(&flag).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read flag %s on %s %s: %w", key, doc.Kind, doc.ID, err)
	}

	if err := json.Unmarshal([]byte(flag.Value), out); err != nil {
		return false, fmt.Errorf("invalid flag %s on %s %s: %w", key, doc.Kind, doc.ID, err)
	}
	return true, nil
}

// SetFlag implements FlagStore.SetFlag
func (r *SQLiteRepository) SetFlag(ctx context.Context, doc domain.DocumentRef, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode flag %s: %w", key, err)
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "document_id"}, {Name: "document_kind"}, {Name: "flag_key"}, {Name: "namespace"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&FlagModel{
			DocumentID:   doc.ID,
			DocumentKind: string(doc.Kind),
			Key:          key,
			Namespace:    domain.Namespace,
			Value:        string(data),
		}).Error
	}, 3)
}

// UnsetFlag implements FlagStore.UnsetFlag
func (r *SQLiteRepository) UnsetFlag(ctx context.Context, doc domain.DocumentRef, key string) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("namespace = ? AND document_kind = ? AND document_id = ? AND flag_key = ?",
				domain.Namespace, string(doc.Kind), doc.ID, key).
			Delete(&FlagModel{}).Error
	}, 3)
}

// GetSetting implements SettingsStore.GetSetting
func (r *SQLiteRepository) GetSetting(ctx context.Context, module, key string, out any) (bool, error) {
	var setting SettingModel
	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Where("module = ? AND setting_key = ?", module, key).
			First(&setting).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to read setting %s.%s: %w", module, key, err)
	}

	if err := json.Unmarshal([]byte(setting.Value), out); err != nil {
		return false, fmt.Errorf("invalid setting %s.%s: %w", module, key, err)
	}
	return true, nil
}

// SetSetting implements SettingsStore.SetSetting
func (r *SQLiteRepository) SetSetting(ctx context.Context, module, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s.%s: %w", module, key, err)
	}

	return withRetry(func() error {
		return r.db.WithContext(ctx).Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}, {Name: "module"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&SettingModel{
			Key:    key,
			Module: module,
			Value:  string(data),
		}).Error
	}, 3)
}
