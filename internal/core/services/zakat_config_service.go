package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/apperrors"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/dto"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils/hijri"
)

// GetConfig retrieves a user's zakat configuration.
func (s *zakatService) GetConfig(ctx context.Context, userID string) (*domain.ZakatConfig, error) {
	config, err := s.configRepo.FindConfigByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("zakat configuration not set")
		}
		return nil, fmt.Errorf("failed to get zakat config: %w", err)
	}
	return config, nil
}

// SaveConfig stores a user's zakat configuration. The Hijri day/month
// pair must be set together; a lone half is rejected.
func (s *zakatService) SaveConfig(ctx context.Context, req dto.SaveZakatConfigRequest, userID string) (*domain.ZakatConfig, error) {
	if (req.AnniversaryDay == nil) != (req.AnniversaryMonth == nil) {
		return nil, apperrors.NewValidationError("anniversaryDay and anniversaryMonth must be set together")
	}
	if req.AnniversaryDay != nil {
		if err := hijri.Validate(*req.AnniversaryDay, *req.AnniversaryMonth); err != nil {
			return nil, err
		}
	}

	var solar *time.Time
	if req.FixedSolarDate != nil {
		d := hijri.Midnight(*req.FixedSolarDate)
		solar = &d
	}

	now := s.now().UTC()
	config := domain.ZakatConfig{
		UserID:           userID,
		AnniversaryDay:   req.AnniversaryDay,
		AnniversaryMonth: req.AnniversaryMonth,
		FixedSolarDate:   solar,
		BaseCurrency:     strings.ToUpper(req.BaseCurrency),
		ReminderEnabled:  req.ReminderEnabled,
		ContactEmail:     strings.ToLower(strings.TrimSpace(req.ContactEmail)),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.configRepo.SaveConfig(ctx, config); err != nil {
		s.LogError(ctx, err, "Failed to save zakat config")
		return nil, fmt.Errorf("failed to save zakat config: %w", err)
	}

	s.LogInfo(ctx, "Zakat config saved", slog.String("user_id", userID))
	return &config, nil
}
