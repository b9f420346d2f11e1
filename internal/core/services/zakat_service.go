package services

import (
	"time"

	portsrepo "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/repositories"
	portssvc "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/services"
)

// zakatService implements the ZakatSvcFacade interface: configuration,
// the cycle state machine and payment recording. It sits on top of the
// ledger, liability and rate collaborators and owns the only writes to
// cycle state.
type zakatService struct {
	BaseService
	configRepo    portsrepo.ZakatConfigRepositoryFacade
	cycleRepo     portsrepo.ZakatCycleRepositoryFacade
	paymentRepo   portsrepo.ZakatPaymentRepositoryFacade
	txnRepo       portsrepo.TransactionReader
	liabilityRepo portsrepo.LiabilityReader
	rateSvc       portssvc.RateSvcFacade
	notifier      portssvc.DueNotifier

	sweepUserTimeout time.Duration
	now              func() time.Time
}

// ZakatServiceOption defines a function signature for configuring the zakat service.
type ZakatServiceOption func(*zakatService)

// WithDueNotifier installs the outbound notification sink invoked on
// OPEN->DUE transitions.
func WithDueNotifier(n portssvc.DueNotifier) ZakatServiceOption {
	return func(s *zakatService) {
		s.notifier = n
	}
}

// WithSweepUserTimeout bounds the time spent on a single user during a sweep.
func WithSweepUserTimeout(d time.Duration) ZakatServiceOption {
	return func(s *zakatService) {
		if d > 0 {
			s.sweepUserTimeout = d
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) ZakatServiceOption {
	return func(s *zakatService) {
		s.now = now
	}
}

// NewZakatService creates a new zakat service
func NewZakatService(
	configRepo portsrepo.ZakatConfigRepositoryFacade,
	cycleRepo portsrepo.ZakatCycleRepositoryFacade,
	paymentRepo portsrepo.ZakatPaymentRepositoryFacade,
	txnRepo portsrepo.TransactionReader,
	liabilityRepo portsrepo.LiabilityReader,
	rateSvc portssvc.RateSvcFacade,
	opts ...ZakatServiceOption,
) portssvc.ZakatSvcFacade {
	s := &zakatService{
		configRepo:       configRepo,
		cycleRepo:        cycleRepo,
		paymentRepo:      paymentRepo,
		txnRepo:          txnRepo,
		liabilityRepo:    liabilityRepo,
		rateSvc:          rateSvc,
		sweepUserTimeout: 30 * time.Second,
		now:              time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ZakatSvcFacade = (*zakatService)(nil)
