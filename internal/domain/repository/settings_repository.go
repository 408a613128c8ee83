package repository

import "github.com/nomadeprod/backoffice-api/internal/domain/entity"

// SettingsRepository définit le port de persistance du profil société (ligne unique).
type SettingsRepository interface {
	Get() (*entity.Settings, error)
	Save(settings *entity.Settings) error
}
