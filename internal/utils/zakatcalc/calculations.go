// Package zakatcalc holds the pure computations behind the zakat obligation
// engine: holdings valuation, liability deduction, nisab comparison and
// payment netting. The reference system expressed these as layered SQL view
// logic; here they are explicit functions over in-memory collections so the
// edge-case rules (per-asset zero floor, null-due-date liabilities always
// deductible, silver threshold driving eligibility) stay visible and tested.
package zakatcalc

import (
	"time"

	"github.com/mma1979/assets-zakat-management-system-sub000/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Nisab weights in grams and the zakat rate.
var (
	NisabGoldGrams   = decimal.NewFromInt(85)
	NisabSilverGrams = decimal.NewFromInt(595)
	ZakatRate        = decimal.NewFromFloat(0.025)
)

// CurrentHoldingsValue computes the value of all holdings right now:
// per asset, net quantity (BUY minus SELL, floored at zero) times the
// latest rate. Assets without a rate contribute zero; MissingRates lists
// them so the caller can log the omission.
func CurrentHoldingsValue(ledger []domain.Transaction, rates map[string]decimal.Decimal) ValuationResult {
	quantities := make(map[string]decimal.Decimal)
	for _, txn := range ledger {
		qty := quantities[txn.AssetKey]
		if txn.Direction == domain.Sell {
			qty = qty.Sub(txn.Quantity)
		} else {
			qty = qty.Add(txn.Quantity)
		}
		quantities[txn.AssetKey] = qty
	}
	return valueQuantities(quantities, rates)
}

// QualifyingValue computes the cycle-qualifying value as of asOf: per asset,
// BUY quantity held for at least minHoldingDays, net of every SELL up to
// asOf, floored at zero, times the current rate. Only holdings retained
// through a full lunar year count toward the obligation.
func QualifyingValue(ledger []domain.Transaction, rates map[string]decimal.Decimal, asOf time.Time, minHoldingDays int) ValuationResult {
	ageCutoff := asOf.AddDate(0, 0, -minHoldingDays)

	quantities := make(map[string]decimal.Decimal)
	for _, txn := range ledger {
		if txn.OccurredOn.After(asOf) {
			continue
		}
		qty := quantities[txn.AssetKey]
		switch txn.Direction {
		case domain.Sell:
			qty = qty.Sub(txn.Quantity)
		default:
			if txn.OccurredOn.After(ageCutoff) {
				continue // not held long enough
			}
			qty = qty.Add(txn.Quantity)
		}
		quantities[txn.AssetKey] = qty
	}
	return valueQuantities(quantities, rates)
}

// ValuationResult is the outcome of a holdings valuation pass.
type ValuationResult struct {
	Total        decimal.Decimal
	PerAsset     map[string]decimal.Decimal
	MissingRates []string
}

func valueQuantities(quantities map[string]decimal.Decimal, rates map[string]decimal.Decimal) ValuationResult {
	result := ValuationResult{
		Total:    decimal.Zero,
		PerAsset: make(map[string]decimal.Decimal, len(quantities)),
	}
	for assetKey, qty := range quantities {
		// Floor at zero per asset: oversold positions never subtract
		// from other assets' lines.
		if qty.LessThanOrEqual(decimal.Zero) {
			result.PerAsset[assetKey] = decimal.Zero
			continue
		}
		rate, ok := rates[assetKey]
		if !ok {
			result.PerAsset[assetKey] = decimal.Zero
			result.MissingRates = append(result.MissingRates, assetKey)
			continue
		}
		value := qty.Mul(rate)
		result.PerAsset[assetKey] = value
		result.Total = result.Total.Add(value)
	}
	return result
}

// DeductibleTotal sums the liabilities that reduce the zakat base: marked
// deductible and either carrying no due date (always due) or due on or
// before the window end.
func DeductibleTotal(liabilities []domain.Liability, windowEnd time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, l := range liabilities {
		if !l.IsDeductible {
			continue
		}
		if l.DueOn != nil && l.DueOn.After(windowEnd) {
			continue
		}
		total = total.Add(l.Amount)
	}
	return total
}

// NetBase nets deductible liabilities out of gross assets, floored at zero.
func NetBase(assets, deductibleLiabilities decimal.Decimal) decimal.Decimal {
	base := assets.Sub(deductibleLiabilities)
	if base.IsNegative() {
		return decimal.Zero
	}
	return base
}

// EvaluateNisab compares a net zakat base against the gold- and
// silver-weight thresholds. Eligibility uses the lower (silver) threshold;
// the due amount is 2.5% of the net base when eligible. Both thresholds are
// always reported for display.
func EvaluateNisab(netBase, goldRate, silverRate decimal.Decimal) domain.NisabEvaluation {
	eval := domain.NisabEvaluation{
		GoldThreshold:   NisabGoldGrams.Mul(goldRate),
		SilverThreshold: NisabSilverGrams.Mul(silverRate),
		DueAmount:       decimal.Zero,
	}
	eval.IsEligible = netBase.GreaterThanOrEqual(eval.SilverThreshold)
	if eval.IsEligible {
		eval.DueAmount = netBase.Mul(ZakatRate)
	}
	return eval
}

// PaymentNet is the outcome of netting recorded payments against a due amount.
type PaymentNet struct {
	TotalPaid    decimal.Decimal
	RemainingDue decimal.Decimal
}

// NetPayments sums payments dated inside [windowStart, windowEnd] and
// computes the remaining due, floored at zero.
func NetPayments(payments []domain.ZakatPayment, windowStart, windowEnd time.Time, dueAmount decimal.Decimal) PaymentNet {
	total := decimal.Zero
	for _, p := range payments {
		if p.Date.Before(windowStart) || p.Date.After(windowEnd) {
			continue
		}
		total = total.Add(p.Amount)
	}
	remaining := dueAmount.Sub(total)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return PaymentNet{TotalPaid: total, RemainingDue: remaining}
}
