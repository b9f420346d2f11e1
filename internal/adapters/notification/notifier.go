// Package notification holds the outbound due-notification sink. The
// current implementation logs the summary and emits an analytics event;
// real delivery channels slot in behind the same port.
package notification

import (
	"context"
	"log/slog"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	portssvc "github.com/mma1979/assets-zakat-management-system-sub000/internal/core/ports/services"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/middleware"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils"
)

// LogNotifier writes due notifications to the structured log and, when
// analytics is configured, captures a zakat_cycle_due event.
type LogNotifier struct {
	posthog *utils.PosthogClientWrapper
}

// NewLogNotifier creates the default notification sink.
func NewLogNotifier(posthogClient *utils.PosthogClientWrapper) *LogNotifier {
	return &LogNotifier{posthog: posthogClient}
}

var _ portssvc.DueNotifier = (*LogNotifier)(nil)

// NotifyDue delivers a single due notification for a cycle transition.
func (n *LogNotifier) NotifyDue(ctx context.Context, userID string, summary domain.CycleSummary) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	logger.Info("Zakat due notification",
		slog.String("user_id", userID),
		slog.String("cycle_id", summary.CycleID),
		slog.String("hijri_year", summary.HijriYear),
		slog.Time("anniversary", summary.SolarAnniversaryDate),
		slog.String("zakat_due", summary.ZakatDue.String()),
		slog.String("base_currency", summary.BaseCurrency),
	)

	if n.posthog.IsInitialized() {
		n.posthog.Enqueue(userID, "zakat_cycle_due", map[string]any{
			"cycle_id":   summary.CycleID,
			"hijri_year": summary.HijriYear,
			"zakat_due":  summary.ZakatDue.InexactFloat64(),
			"currency":   summary.BaseCurrency,
		})
	}
	return nil
}
