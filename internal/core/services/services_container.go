package services

import (
	portsrepo "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/repositories"
	portssvc "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/platform/config"
)

// NewServiceContainer wires every service against the repository
// provider and application configuration.
func NewServiceContainer(repos portsrepo.RepositoryProvider, cfg *config.Config, notifier portssvc.DueNotifier) *portssvc.ServiceContainer {
	rateSvc := NewRateService(repos.RateRepo, WithRateCacheTTL(cfg.RateCacheTTL))

	zakatSvc := NewZakatService(
		repos.ZakatConfigRepo,
		repos.ZakatCycleRepo,
		repos.ZakatPaymentRepo,
		repos.TransactionRepo,
		repos.LiabilityRepo,
		rateSvc,
		WithDueNotifier(notifier),
		WithSweepUserTimeout(cfg.SweepUserTimeout),
	)

	return &portssvc.ServiceContainer{
		Transaction: NewTransactionService(repos.TransactionRepo),
		Liability:   NewLiabilityService(repos.LiabilityRepo),
		Rate:        rateSvc,
		User:        NewUserService(repos.UserRepo),
		Token:       NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTExpiryDuration),
		Zakat:       zakatSvc,
	}
}
