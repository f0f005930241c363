package logic

import (
	"time"

	"dexboard-api/internal/board"
	"dexboard-api/internal/session"
	"dexboard-api/internal/types"
	"dexboard-api/pkg/pairs"
)

// viewResp maps a board view to its wire shape, attaching display strings.
func viewResp(view board.View) *types.OverviewResp {
	out := &types.OverviewResp{
		Pairs:      make([]types.PairView, 0, len(view.Pairs)),
		Stats:      statsView(view.Stats),
		IsLoading:  view.IsLoading,
		SearchTerm: view.SearchTerm,
		TradeError: view.TradeError,
	}
	if !view.RefreshedAt.IsZero() {
		out.RefreshedAt = view.RefreshedAt.UTC().Format(time.RFC3339)
	}
	for _, pair := range view.Pairs {
		out.Pairs = append(out.Pairs, pairView(pair))
	}
	return out
}

func pairView(p pairs.Pair) types.PairView {
	return types.PairView{
		ID:               p.ID,
		BaseSymbol:       p.Base.Symbol,
		BaseName:         p.Base.Name,
		BaseImage:        p.Base.ImageURL,
		QuoteSymbol:      p.Quote.Symbol,
		Price:            p.Price,
		PriceDisplay:     pairs.FormatUSD(p.Price),
		Change24h:        p.Change24h,
		Volume24h:        p.Volume24h,
		VolumeDisplay:    pairs.FormatNumber(p.Volume24h),
		Liquidity:        p.Liquidity,
		LiquidityDisplay: pairs.FormatNumber(p.Liquidity),
	}
}

func statsView(s pairs.Stats) types.StatsView {
	return types.StatsView{
		TotalPairs:            s.TotalPairs,
		TotalVolume:           s.TotalVolume,
		TotalVolumeDisplay:    pairs.FormatNumber(s.TotalVolume),
		TotalLiquidity:        s.TotalLiquidity,
		TotalLiquidityDisplay: pairs.FormatNumber(s.TotalLiquidity),
		ActiveWallets:         s.ActiveWallets,
		CapChange24h:          s.CapChange24h,
	}
}

func walletResp(info session.WalletInfo) *types.WalletResp {
	return &types.WalletResp{
		Connected:    true,
		Address:      info.Address,
		ShortAddress: info.ShortAddress,
		Balance:      info.Balance,
		Network:      info.Network,
	}
}
