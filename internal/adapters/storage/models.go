package storage

import "time"

// ActorModel is the GORM model for actors table
type ActorModel struct {
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex:idx_actor_name"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ActorModel) TableName() string { return "actors" }

// PlaylistModel is the GORM model for playlists table
type PlaylistModel struct {
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	Mode      int    `gorm:"not null;default:0;check:mode IN (-1,0,1,2)"`
	Name      string `gorm:"not null;index:idx_playlist_name"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (PlaylistModel) TableName() string { return "playlists" }

// SoundModel is the GORM model for sounds table
type SoundModel struct {
	CreatedAt  time.Time
	ID         string `gorm:"primaryKey"`
	Name       string `gorm:"not null"`
	Path       string `gorm:"not null"`
	PlaylistID string `gorm:"not null;index:idx_sound_playlist"`
	Repeat     bool   `gorm:"not null;default:false"`
	Sort       int    `gorm:"not null;default:0"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SoundModel) TableName() string { return "sounds" }

// FlagModel is the GORM model for document flags.
// Value holds the JSON encoding of the flag.
type FlagModel struct {
	CreatedAt    time.Time
	DocumentID   string `gorm:"primaryKey"`
	DocumentKind string `gorm:"primaryKey"`
	Key          string `gorm:"column:flag_key;primaryKey"`
	Namespace    string `gorm:"primaryKey"`
	UpdatedAt    time.Time
	Value        string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (FlagModel) TableName() string { return "flags" }

// SettingModel is the GORM model for module settings
type SettingModel struct {
	CreatedAt time.Time
	Key       string `gorm:"column:setting_key;primaryKey"`
	Module    string `gorm:"primaryKey"`
	UpdatedAt time.Time
	Value     string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (SettingModel) TableName() string { return "settings" }
