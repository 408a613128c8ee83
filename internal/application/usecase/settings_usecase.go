package usecase

import (
	"time"

	"github.com/nomadeprod/backoffice-api/internal/application/dto"
	"github.com/nomadeprod/backoffice-api/internal/domain"
	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
	"github.com/nomadeprod/backoffice-api/internal/domain/repository"
)

// SettingsUseCase lecture/écriture du profil société (ligne unique).
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construit le cas d'usage.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get retourne le profil société.
func (uc *SettingsUseCase) Get() (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get()
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingsResponse(settings), nil
}

// Save enregistre (ou remplace) le profil société.
func (uc *SettingsUseCase) Save(in dto.SettingsRequest) (*dto.SettingsResponse, error) {
	if in.CompanyName == "" {
		return nil, domain.ErrInvalidInput
	}
	settings := &entity.Settings{
		CompanyName: in.CompanyName,
		Address:     in.Address,
		TaxID:       in.TaxID,
		Email:       in.Email,
		Phone:       in.Phone,
		SenderName:  in.SenderName,
		UpdatedAt:   time.Now(),
	}
	if err := uc.repo.Save(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CompanyName: s.CompanyName,
		Address:     s.Address,
		TaxID:       s.TaxID,
		Email:       s.Email,
		Phone:       s.Phone,
		SenderName:  s.SenderName,
		UpdatedAt:   s.UpdatedAt.Format(time.RFC3339),
	}
}
