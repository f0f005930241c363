package market

import (
	"fmt"
	"math"
)

// ValidatePriceRecords gates a price list before it may be cached or served.
// The list must be a non-empty sequence; an empty payload is indistinguishable
// from a broken response and is never treated as live data.
func ValidatePriceRecords(records []PriceRecord) error {
	if len(records) == 0 {
		return NewProviderError(FailShape, fmt.Errorf("empty price record list"))
	}
	return nil
}

// ValidateGlobalSummary gates a global summary. Total volume must have been
// present in the source payload and be a finite number; a summary that
// decoded without a USD volume carries NaN and fails here.
func ValidateGlobalSummary(summary *GlobalMarketSummary) error {
	if summary == nil {
		return NewProviderError(FailShape, fmt.Errorf("nil global summary"))
	}
	if math.IsNaN(summary.TotalVolumeUSD) {
		return NewProviderError(FailShape, fmt.Errorf("total volume missing or NaN"))
	}
	if math.IsInf(summary.TotalVolumeUSD, 0) {
		return NewProviderError(FailShape, fmt.Errorf("total volume not finite"))
	}
	return nil
}
