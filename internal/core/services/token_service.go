package services

import (
	"time"

	portssvc "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils"
)

// tokenService implements the TokenSvcFacade interface
type tokenService struct {
	secret string
	issuer string
	expiry time.Duration
}

// NewTokenService creates a new token service
func NewTokenService(secret, issuer string, expiry time.Duration) portssvc.TokenSvcFacade {
	return &tokenService{secret: secret, issuer: issuer, expiry: expiry}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// GenerateAccessToken creates a signed JWT for the given user.
func (s *tokenService) GenerateAccessToken(userID string) (string, time.Time, error) {
	return utils.GenerateJWT(userID, s.secret, s.issuer, s.expiry)
}
