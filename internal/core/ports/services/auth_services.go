package services

import (
	"time"
)

// TokenSvcFacade issues access tokens for authenticated users.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the given user.
	GenerateAccessToken(userID string) (string, time.Time, error)
}
