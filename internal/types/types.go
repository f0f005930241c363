// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type PairView struct {
	ID               int     `json:"id"`
	BaseSymbol       string  `json:"baseSymbol"`
	BaseName         string  `json:"baseName"`
	BaseImage        string  `json:"baseImage,omitempty"`
	QuoteSymbol      string  `json:"quoteSymbol"`
	Price            float64 `json:"price"`
	PriceDisplay     string  `json:"priceDisplay"`
	Change24h        float64 `json:"change24h"`
	Volume24h        float64 `json:"volume24h"`
	VolumeDisplay    string  `json:"volumeDisplay"`
	Liquidity        float64 `json:"liquidity"`
	LiquidityDisplay string  `json:"liquidityDisplay"`
}

type StatsView struct {
	TotalPairs            int     `json:"totalPairs"`
	TotalVolume           float64 `json:"totalVolume"`
	TotalVolumeDisplay    string  `json:"totalVolumeDisplay"`
	TotalLiquidity        float64 `json:"totalLiquidity"`
	TotalLiquidityDisplay string  `json:"totalLiquidityDisplay"`
	ActiveWallets         int     `json:"activeWallets"`
	CapChange24h          float64 `json:"capChange24h"`
}

type OverviewResp struct {
	Pairs       []PairView `json:"pairs"`
	Stats       StatsView  `json:"stats"`
	IsLoading   bool       `json:"isLoading"`
	RefreshedAt string     `json:"refreshedAt,omitempty"`
	SearchTerm  string     `json:"searchTerm"`
	TradeError  string     `json:"tradeError,omitempty"`
}

type SearchReq struct {
	Term string `json:"term,optional"`
}

type TradeReq struct {
	PairID int     `json:"pairId"`
	Side   string  `json:"side,options=buy|sell"`
	Amount float64 `json:"amount"`
}

type TradeResp struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message,omitempty"`
}

type WalletResp struct {
	Connected    bool   `json:"connected"`
	Address      string `json:"address,omitempty"`
	ShortAddress string `json:"shortAddress,omitempty"`
	Balance      string `json:"balance,omitempty"`
	Network      string `json:"network,omitempty"`
}

type ConnectWalletReq struct {
	Address string  `json:"address"`
	Balance float64 `json:"balance,optional"`
	Network string  `json:"network,optional"`
}

type TokensReq struct {
	Network string `form:"network,optional"`
}

type TokenView struct {
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Address      string `json:"address,omitempty"`
	Decimals     int    `json:"decimals"`
	ImageURL     string `json:"imageUrl,omitempty"`
	IsStable     bool   `json:"isStable"`
	IsWrapped    bool   `json:"isWrapped"`
	IsTempHidden bool   `json:"isTempHidden"`
}

type TokensResp struct {
	Network  string      `json:"network"`
	Name     string      `json:"name"`
	Currency string      `json:"currency"`
	Tokens   []TokenView `json:"tokens"`
}
