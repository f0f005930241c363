package logic

import (
	"context"
	"fmt"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"dexboard-api/internal/svc"
	"dexboard-api/internal/types"
)

type TokensLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTokensLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TokensLogic {
	return &TokensLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Tokens returns the whitelist for the requested network, defaulting to the
// service's configured network.
func (l *TokensLogic) Tokens(req *types.TokensReq) (*types.TokensResp, error) {
	network := strings.TrimSpace(req.Network)
	if network == "" {
		network = l.svcCtx.Config.Network
	}
	n, ok := l.svcCtx.TokensConfig.Network(network)
	if !ok {
		return nil, fmt.Errorf("unknown network %q", network)
	}

	resp := &types.TokensResp{
		Network:  network,
		Name:     n.Name,
		Currency: n.Currency,
		Tokens:   make([]types.TokenView, 0, len(n.Tokens)),
	}
	for _, token := range n.Tokens {
		resp.Tokens = append(resp.Tokens, types.TokenView{
			Symbol:       token.Symbol,
			Name:         token.Name,
			Address:      token.Address,
			Decimals:     token.Decimals,
			ImageURL:     token.ImageURL,
			IsStable:     token.IsStable,
			IsWrapped:    token.IsWrapped,
			IsTempHidden: token.IsTempHidden,
		})
	}
	return resp, nil
}
