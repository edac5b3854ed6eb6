package usecase

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Fanelemenzi/Carfinity-sub000/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// ProviderQuotePayload is the strongly typed form of a provider's raw
// response. Optional fields are pointers so an absent/null field is
// distinguishable from a zero value. Monetary and warranty fields arrive
// as strings and are parsed during validation.
type ProviderQuotePayload struct {
	ProviderType            *string `json:"provider_type"`
	ProviderName            *string `json:"provider_name"`
	PartCost                *string `json:"part_cost"`
	LaborCost               *string `json:"labor_cost"`
	PaintCost               *string `json:"paint_cost"`
	AdditionalCosts         *string `json:"additional_costs"`
	TotalCost               *string `json:"total_cost"`
	PartType                *string `json:"part_type"`
	EstimatedDeliveryDays   *int    `json:"estimated_delivery_days"`
	EstimatedCompletionDays *int    `json:"estimated_completion_days"`
	PartWarrantyMonths      *string `json:"part_warranty_months"`
	LaborWarrantyMonths     *string `json:"labor_warranty_months"`
	ConfidenceScore         *int    `json:"confidence_score"`
	ValidUntil              *string `json:"valid_until"`
	Notes                   string  `json:"notes"`
}

// ValidationResult carries the outcome of validating one provider payload.
// A payload is valid iff Errors is empty; warnings never block acceptance.
type ValidationResult struct {
	Valid    bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidationConfig holds the thresholds applied by the validation engine.
// Defaults match the values the rest of the platform was calibrated with.
type ValidationConfig struct {
	// TotalTolerancePct is the allowed drift (percent of the component
	// sum) between total_cost and part+labor+paint+additional before a
	// mismatch warning is raised.
	TotalTolerancePct float64

	// MaxTimelineDays is the delivery/completion estimate above which a
	// timeline warning is raised.
	MaxTimelineDays int

	// Warranty soft upper bounds (warnings, not errors).
	MaxPartWarrantyMonths  int
	MaxLaborWarrantyMonths int

	// HighCostFactor/LowCostFactor bound the quote total against the
	// part's estimated cost range: total > HighCostFactor*max or
	// total < LowCostFactor*min raises a warning.
	HighCostFactor float64
	LowCostFactor  float64
}

// DefaultValidationConfig returns the documented thresholds.
func DefaultValidationConfig() ValidationConfig {
	return ValidationConfig{
		TotalTolerancePct:      1.0,
		MaxTimelineDays:        365,
		MaxPartWarrantyMonths:  120,
		MaxLaborWarrantyMonths: 60,
		HighCostFactor:         3.0,
		LowCostFactor:          0.3,
	}
}

// requiredPayloadFields are checked before any business rule; when one is
// missing the result contains only missing-field errors so callers are not
// distracted by secondary failures on fields that were never supplied.
var requiredPayloadFields = []struct {
	name    string
	present func(p ProviderQuotePayload) bool
}{
	{"provider_type", func(p ProviderQuotePayload) bool { return hasText(p.ProviderType) }},
	{"provider_name", func(p ProviderQuotePayload) bool { return hasText(p.ProviderName) }},
	{"part_cost", func(p ProviderQuotePayload) bool { return hasText(p.PartCost) }},
	{"labor_cost", func(p ProviderQuotePayload) bool { return hasText(p.LaborCost) }},
	{"total_cost", func(p ProviderQuotePayload) bool { return hasText(p.TotalCost) }},
	{"estimated_delivery_days", func(p ProviderQuotePayload) bool { return p.EstimatedDeliveryDays != nil }},
	{"estimated_completion_days", func(p ProviderQuotePayload) bool { return p.EstimatedCompletionDays != nil }},
	{"valid_until", func(p ProviderQuotePayload) bool { return hasText(p.ValidUntil) }},
}

// QuoteValidator is the pure validation engine for provider payloads. It
// performs no persistence lookups; the damaged part is passed in with its
// cached estimated cost range.
type QuoteValidator struct {
	cfg ValidationConfig
}

func NewQuoteValidator(cfg ValidationConfig) *QuoteValidator {
	return &QuoteValidator{cfg: cfg}
}

// Validate checks payload against the engine's field and business rules
// and cross-checks it against the part's estimated cost range.
func (v *QuoteValidator) Validate(p ProviderQuotePayload, part entities.DamagedPart) ValidationResult {
	res := ValidationResult{Errors: []string{}, Warnings: []string{}}

	for _, f := range requiredPayloadFields {
		if !f.present(p) {
			res.Errors = append(res.Errors, "missing required field: "+f.name)
		}
	}
	if len(res.Errors) > 0 {
		return res
	}

	if !entities.ValidProviderType(strings.TrimSpace(*p.ProviderType)) {
		res.Errors = append(res.Errors, fmt.Sprintf("invalid provider_type: %q", *p.ProviderType))
	}
	if hasText(p.PartType) && !entities.ValidPartType(strings.TrimSpace(*p.PartType)) {
		res.Errors = append(res.Errors, fmt.Sprintf("invalid part_type: %q", *p.PartType))
	}

	partCost := v.parseMoney(&res, "part_cost", *p.PartCost)
	laborCost := v.parseMoney(&res, "labor_cost", *p.LaborCost)
	totalCost := v.parseMoney(&res, "total_cost", *p.TotalCost)
	paintCost := decimal.Zero
	if hasText(p.PaintCost) {
		paintCost = v.parseMoney(&res, "paint_cost", *p.PaintCost)
	}
	additional := decimal.Zero
	if hasText(p.AdditionalCosts) {
		additional = v.parseMoney(&res, "additional_costs", *p.AdditionalCosts)
	}

	v.checkTotalConsistency(&res, partCost, laborCost, paintCost, additional, totalCost)
	v.checkTimelines(&res, *p.EstimatedDeliveryDays, *p.EstimatedCompletionDays)
	v.checkValidUntil(&res, *p.ValidUntil)
	v.checkWarranty(&res, "part_warranty_months", p.PartWarrantyMonths, v.cfg.MaxPartWarrantyMonths)
	v.checkWarranty(&res, "labor_warranty_months", p.LaborWarrantyMonths, v.cfg.MaxLaborWarrantyMonths)

	if p.ConfidenceScore != nil && (*p.ConfidenceScore < 0 || *p.ConfidenceScore > 100) {
		res.Errors = append(res.Errors, fmt.Sprintf("confidence_score must be between 0 and 100, got %d", *p.ConfidenceScore))
	}

	v.checkEstimatedRange(&res, totalCost, part)

	res.Valid = len(res.Errors) == 0
	return res
}

// parseMoney parses a non-negative fixed-point amount with at most two
// decimal places, appending an error and returning zero on failure.
func (v *QuoteValidator) parseMoney(res *ValidationResult, field, raw string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s is not a valid amount: %q", field, raw))
		return decimal.Zero
	}
	if d.IsNegative() {
		res.Errors = append(res.Errors, fmt.Sprintf("%s must not be negative, got %s", field, d))
		return decimal.Zero
	}
	if d.Exponent() < -2 {
		res.Errors = append(res.Errors, fmt.Sprintf("%s must have at most 2 decimal places, got %s", field, d))
		return decimal.Zero
	}
	return d
}

// checkTotalConsistency warns when the supplied total drifts more than the
// configured tolerance from the component sum. Totals are allowed to
// diverge (rounding, bundled discounts), so this is never an error.
func (v *QuoteValidator) checkTotalConsistency(res *ValidationResult, part, labor, paint, additional, total decimal.Decimal) {
	expected := part.Add(labor).Add(paint).Add(additional)
	tolerance := expected.Mul(decimal.NewFromFloat(v.cfg.TotalTolerancePct / 100))
	if total.Sub(expected).Abs().GreaterThan(tolerance) {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("total_cost %s differs from component sum %s by more than %.0f%%", total, expected, v.cfg.TotalTolerancePct))
	}
}

func (v *QuoteValidator) checkTimelines(res *ValidationResult, deliveryDays, completionDays int) {
	if deliveryDays < 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("estimated_delivery_days must not be negative, got %d", deliveryDays))
	}
	if completionDays < 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("estimated_completion_days must not be negative, got %d", completionDays))
	}
	if deliveryDays < 0 || completionDays < 0 {
		return
	}
	if completionDays < deliveryDays {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("estimated_completion_days %d is before estimated_delivery_days %d", completionDays, deliveryDays))
	}
	if deliveryDays > v.cfg.MaxTimelineDays {
		res.Warnings = append(res.Warnings, fmt.Sprintf("estimated_delivery_days %d exceeds %d days", deliveryDays, v.cfg.MaxTimelineDays))
	}
	if completionDays > v.cfg.MaxTimelineDays {
		res.Warnings = append(res.Warnings, fmt.Sprintf("estimated_completion_days %d exceeds %d days", completionDays, v.cfg.MaxTimelineDays))
	}
}

func (v *QuoteValidator) checkValidUntil(res *ValidationResult, raw string) {
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(raw))
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("valid_until is not a valid timestamp: %q", raw))
		return
	}
	if !ts.After(time.Now()) {
		res.Errors = append(res.Errors, fmt.Sprintf("valid_until must be in the future, got %s", ts.Format(time.RFC3339)))
	}
}

func (v *QuoteValidator) checkWarranty(res *ValidationResult, field string, raw *string, softMax int) {
	if !hasText(raw) {
		return
	}
	months, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("%s is not a valid number of months: %q", field, *raw))
		return
	}
	if months < 0 {
		res.Errors = append(res.Errors, fmt.Sprintf("%s must not be negative, got %d", field, months))
		return
	}
	if months > softMax {
		res.Warnings = append(res.Warnings, fmt.Sprintf("%s %d exceeds the usual maximum of %d", field, months, softMax))
	}
}

// checkEstimatedRange compares the quote total against the damaged part's
// estimated cost range. Out-of-range quotes stay acceptable; the warnings
// exist so reviewers can spot suspicious pricing.
func (v *QuoteValidator) checkEstimatedRange(res *ValidationResult, total decimal.Decimal, part entities.DamagedPart) {
	t := total.InexactFloat64()
	if part.MaxEstimatedCost > 0 && t > v.cfg.HighCostFactor*part.MaxEstimatedCost {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("total_cost %.2f is significantly higher than the estimated range (max %.2f)", t, part.MaxEstimatedCost))
	}
	if part.MinEstimatedCost > 0 && t < v.cfg.LowCostFactor*part.MinEstimatedCost {
		res.Warnings = append(res.Warnings,
			fmt.Sprintf("total_cost %.2f is significantly lower than the estimated range (min %.2f)", t, part.MinEstimatedCost))
	}
}

func hasText(s *string) bool {
	return s != nil && strings.TrimSpace(*s) != ""
}
