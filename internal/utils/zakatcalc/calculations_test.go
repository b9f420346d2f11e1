package zakatcalc_test

import (
	"testing"
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/mma1979/assets-zakat-management-system-sub000/internal/utils/zakatcalc"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func buy(asset string, qty int64, on time.Time) domain.Transaction {
	return domain.Transaction{
		AssetKey:   asset,
		Direction:  domain.Buy,
		Quantity:   decimal.NewFromInt(qty),
		OccurredOn: on,
	}
}

func sell(asset string, qty int64, on time.Time) domain.Transaction {
	return domain.Transaction{
		AssetKey:   asset,
		Direction:  domain.Sell,
		Quantity:   decimal.NewFromInt(qty),
		OccurredOn: on,
	}
}

func TestCurrentHoldingsValue(t *testing.T) {
	ledger := []domain.Transaction{
		buy("GOLD", 10, day(2024, time.January, 1)),
		sell("GOLD", 4, day(2024, time.June, 1)),
		buy("USD", 500, day(2024, time.March, 1)),
	}
	rates := map[string]decimal.Decimal{
		"GOLD": decimal.NewFromInt(100),
		"USD":  decimal.NewFromInt(1),
	}

	result := zakatcalc.CurrentHoldingsValue(ledger, rates)
	assert.True(t, decimal.NewFromInt(1100).Equal(result.Total), "got %s", result.Total)
	assert.True(t, decimal.NewFromInt(600).Equal(result.PerAsset["GOLD"]))
	assert.Empty(t, result.MissingRates)
}

func TestCurrentHoldingsValue_FloorsPerAssetNotPerLedger(t *testing.T) {
	// SILVER is oversold; its line floors at zero and must not drag down GOLD.
	ledger := []domain.Transaction{
		buy("GOLD", 5, day(2024, time.January, 1)),
		buy("SILVER", 10, day(2024, time.January, 1)),
		sell("SILVER", 25, day(2024, time.February, 1)),
	}
	rates := map[string]decimal.Decimal{
		"GOLD":   decimal.NewFromInt(100),
		"SILVER": decimal.NewFromInt(2),
	}

	result := zakatcalc.CurrentHoldingsValue(ledger, rates)
	assert.True(t, decimal.NewFromInt(500).Equal(result.Total), "got %s", result.Total)
	assert.True(t, result.PerAsset["SILVER"].IsZero())
}

func TestCurrentHoldingsValue_MissingRateContributesZero(t *testing.T) {
	ledger := []domain.Transaction{
		buy("GOLD", 5, day(2024, time.January, 1)),
		buy("BTC", 1, day(2024, time.January, 1)),
	}
	rates := map[string]decimal.Decimal{"GOLD": decimal.NewFromInt(100)}

	result := zakatcalc.CurrentHoldingsValue(ledger, rates)
	assert.True(t, decimal.NewFromInt(500).Equal(result.Total))
	assert.Equal(t, []string{"BTC"}, result.MissingRates)
}

func TestQualifyingValue_AgeFilter(t *testing.T) {
	asOf := day(2025, time.June, 1)
	rates := map[string]decimal.Decimal{"GOLD": decimal.NewFromInt(60)}

	ledger := []domain.Transaction{
		buy("GOLD", 100, asOf.AddDate(0, 0, -360)), // held a full lunar year
		buy("GOLD", 50, asOf.AddDate(0, 0, -100)),  // too young to qualify
	}

	result := zakatcalc.QualifyingValue(ledger, rates, asOf, domain.LunarYearDays)
	assert.True(t, decimal.NewFromInt(6000).Equal(result.Total), "got %s", result.Total)
}

func TestQualifyingValue_SellsReduceAgedHoldings(t *testing.T) {
	asOf := day(2025, time.June, 1)
	rates := map[string]decimal.Decimal{"GOLD": decimal.NewFromInt(60)}

	ledger := []domain.Transaction{
		buy("GOLD", 100, asOf.AddDate(0, 0, -400)),
		sell("GOLD", 30, asOf.AddDate(0, 0, -10)), // recent sells still count against the aged quantity
	}

	result := zakatcalc.QualifyingValue(ledger, rates, asOf, domain.LunarYearDays)
	assert.True(t, decimal.NewFromInt(4200).Equal(result.Total), "got %s", result.Total)
}

func TestQualifyingValue_IgnoresEntriesAfterAsOf(t *testing.T) {
	asOf := day(2025, time.June, 1)
	rates := map[string]decimal.Decimal{"GOLD": decimal.NewFromInt(60)}

	ledger := []domain.Transaction{
		buy("GOLD", 100, asOf.AddDate(0, 0, -400)),
		sell("GOLD", 100, asOf.AddDate(0, 0, 5)), // after the anniversary, outside the cycle
	}

	result := zakatcalc.QualifyingValue(ledger, rates, asOf, domain.LunarYearDays)
	assert.True(t, decimal.NewFromInt(6000).Equal(result.Total), "got %s", result.Total)
}

func TestDeductibleTotal(t *testing.T) {
	windowEnd := day(2025, time.June, 1)
	inWindow := day(2025, time.May, 1)
	afterWindow := day(2025, time.August, 1)

	liabilities := []domain.Liability{
		{Amount: decimal.NewFromInt(100), IsDeductible: true, DueOn: &inWindow},
		{Amount: decimal.NewFromInt(200), IsDeductible: true, DueOn: nil}, // no due date: always due
		{Amount: decimal.NewFromInt(400), IsDeductible: true, DueOn: &afterWindow},
		{Amount: decimal.NewFromInt(800), IsDeductible: false, DueOn: &inWindow},
	}

	total := zakatcalc.DeductibleTotal(liabilities, windowEnd)
	assert.True(t, decimal.NewFromInt(300).Equal(total), "got %s", total)
}

func TestNetBase_FloorsAtZero(t *testing.T) {
	base := zakatcalc.NetBase(decimal.NewFromInt(100), decimal.NewFromInt(250))
	assert.True(t, base.IsZero())

	base = zakatcalc.NetBase(decimal.NewFromInt(500), decimal.NewFromInt(200))
	assert.True(t, decimal.NewFromInt(300).Equal(base))
}

func TestEvaluateNisab_SilverThresholdDrivesEligibility(t *testing.T) {
	goldRate := decimal.NewFromInt(100)  // gold threshold 8500
	silverRate := decimal.NewFromInt(2)  // silver threshold 1190

	// Between the silver and gold thresholds: eligible.
	eval := zakatcalc.EvaluateNisab(decimal.NewFromInt(6000), goldRate, silverRate)
	assert.True(t, eval.IsEligible)
	assert.True(t, decimal.NewFromInt(150).Equal(eval.DueAmount), "got %s", eval.DueAmount)
	assert.True(t, decimal.NewFromInt(8500).Equal(eval.GoldThreshold))
	assert.True(t, decimal.NewFromInt(1190).Equal(eval.SilverThreshold))

	// Below the silver threshold: not eligible, zero due, thresholds still reported.
	eval = zakatcalc.EvaluateNisab(decimal.NewFromInt(1000), goldRate, silverRate)
	assert.False(t, eval.IsEligible)
	assert.True(t, eval.DueAmount.IsZero())
	assert.True(t, decimal.NewFromInt(8500).Equal(eval.GoldThreshold))

	// Exactly at the silver threshold: eligible.
	eval = zakatcalc.EvaluateNisab(decimal.NewFromInt(1190), goldRate, silverRate)
	assert.True(t, eval.IsEligible)
}

func TestNetPayments(t *testing.T) {
	windowStart := day(2024, time.June, 12)
	windowEnd := day(2025, time.June, 1)
	due := decimal.NewFromInt(150)

	payments := []domain.ZakatPayment{
		{Amount: decimal.NewFromInt(50), Date: day(2025, time.January, 10)},
		{Amount: decimal.NewFromInt(40), Date: day(2024, time.January, 10)}, // before the window
	}

	net := zakatcalc.NetPayments(payments, windowStart, windowEnd, due)
	assert.True(t, decimal.NewFromInt(50).Equal(net.TotalPaid))
	assert.True(t, decimal.NewFromInt(100).Equal(net.RemainingDue))
}

func TestNetPayments_WindowEndsAreInclusive(t *testing.T) {
	windowStart := day(2024, time.June, 12)
	windowEnd := day(2025, time.June, 1)
	due := decimal.NewFromInt(150)

	payments := []domain.ZakatPayment{
		{Amount: decimal.NewFromInt(30), Date: windowStart},
		{Amount: decimal.NewFromInt(20), Date: windowEnd},
		{Amount: decimal.NewFromInt(40), Date: windowStart.AddDate(0, 0, -1)},
		{Amount: decimal.NewFromInt(40), Date: windowEnd.AddDate(0, 0, 1)},
	}

	net := zakatcalc.NetPayments(payments, windowStart, windowEnd, due)
	assert.True(t, decimal.NewFromInt(50).Equal(net.TotalPaid), "payments on both window edges count")
	assert.True(t, decimal.NewFromInt(100).Equal(net.RemainingDue))
}

func TestNetPayments_RemainingDueMonotonic(t *testing.T) {
	windowStart := day(2024, time.June, 12)
	windowEnd := day(2025, time.June, 1)
	due := decimal.NewFromInt(150)

	var payments []domain.ZakatPayment
	previous := zakatcalc.NetPayments(payments, windowStart, windowEnd, due)
	assert.True(t, due.Equal(previous.RemainingDue), "remaining equals due with no payments")

	for i := 0; i < 5; i++ {
		payments = append(payments, domain.ZakatPayment{
			Amount: decimal.NewFromInt(40),
			Date:   day(2025, time.January, 1).AddDate(0, 0, i),
		})
		net := zakatcalc.NetPayments(payments, windowStart, windowEnd, due)
		assert.True(t, net.RemainingDue.LessThanOrEqual(previous.RemainingDue))
		previous = net
	}

	// Overpayment floors at zero, never goes negative.
	assert.True(t, previous.RemainingDue.IsZero())
	assert.True(t, decimal.NewFromInt(200).Equal(previous.TotalPaid))
}
