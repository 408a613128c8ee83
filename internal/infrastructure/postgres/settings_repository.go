package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
	"github.com/nomadeprod/backoffice-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// Identifiant fixe de la ligne unique de paramètres.
const settingsRowID = "default"

// SettingsRepo implémentation de SettingsRepository sur PostgreSQL.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construit l'adaptateur du profil société.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get retourne le profil société, ou nil s'il n'a jamais été enregistré.
func (r *SettingsRepo) Get() (*entity.Settings, error) {
	const query = `
		SELECT id, company_name, COALESCE(address, ''), COALESCE(tax_id, ''),
		       COALESCE(email, ''), COALESCE(phone, ''), COALESCE(sender_name, ''), updated_at
		FROM settings WHERE id = $1`
	var s entity.Settings
	err := r.q.QueryRow(context.Background(), query, settingsRowID).Scan(
		&s.ID, &s.CompanyName, &s.Address, &s.TaxID, &s.Email, &s.Phone, &s.SenderName, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Save insère ou remplace la ligne unique de paramètres.
func (r *SettingsRepo) Save(settings *entity.Settings) error {
	settings.ID = settingsRowID
	const query = `
		INSERT INTO settings (id, company_name, address, tax_id, email, phone, sender_name, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			address      = EXCLUDED.address,
			tax_id       = EXCLUDED.tax_id,
			email        = EXCLUDED.email,
			phone        = EXCLUDED.phone,
			sender_name  = EXCLUDED.sender_name,
			updated_at   = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.ID, settings.CompanyName, nullIfEmpty(settings.Address), nullIfEmpty(settings.TaxID),
		nullIfEmpty(settings.Email), nullIfEmpty(settings.Phone), nullIfEmpty(settings.SenderName),
		settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
