package coingecko

import (
	"math"

	"dexboard-api/pkg/market"
)

// MarketRow mirrors one element of the /coins/markets response.
type MarketRow struct {
	ID             string  `json:"id"`
	Symbol         string  `json:"symbol"`
	Name           string  `json:"name"`
	Image          string  `json:"image"`
	CurrentPrice   float64 `json:"current_price"`
	MarketCap      float64 `json:"market_cap"`
	TotalVolume    float64 `json:"total_volume"`
	PriceChange24h float64 `json:"price_change_percentage_24h"`
}

func (r MarketRow) toRecord() market.PriceRecord {
	return market.PriceRecord{
		ID:        r.ID,
		Symbol:    r.Symbol,
		Name:      r.Name,
		Price:     r.CurrentPrice,
		Change24h: r.PriceChange24h,
		Volume24h: r.TotalVolume,
		MarketCap: r.MarketCap,
		ImageURL:  r.Image,
	}
}

// GlobalResponse mirrors the /global envelope.
type GlobalResponse struct {
	Data GlobalData `json:"data"`
}

// GlobalData carries the aggregate metrics, keyed by fiat currency where the
// API reports per-currency maps.
type GlobalData struct {
	TotalMarketCap      map[string]float64 `json:"total_market_cap"`
	TotalVolume         map[string]float64 `json:"total_volume"`
	MarketCapPercentage map[string]float64 `json:"market_cap_percentage"`
	MarketCapChange24h  float64            `json:"market_cap_change_percentage_24h_usd"`
}

// toSummary normalizes the envelope. A missing USD volume becomes NaN so the
// shape gate downstream rejects the summary instead of mistaking absence for
// a zero.
func (d GlobalData) toSummary() market.GlobalMarketSummary {
	summary := market.GlobalMarketSummary{
		TotalMarketCapUSD: d.TotalMarketCap["usd"],
		TotalVolumeUSD:    math.NaN(),
		MarketCapShare:    d.MarketCapPercentage,
		CapChange24h:      d.MarketCapChange24h,
	}
	if v, ok := d.TotalVolume["usd"]; ok {
		summary.TotalVolumeUSD = v
	}
	return summary
}
