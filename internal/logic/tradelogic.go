package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"dexboard-api/internal/svc"
	"dexboard-api/internal/types"
)

type TradeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewTradeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *TradeLogic {
	return &TradeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Trade takes a trade request. Without a connected wallet the request is
// rejected with the displayable message; order execution never happens here.
func (l *TradeLogic) Trade(req *types.TradeReq) (*types.TradeResp, error) {
	res := l.svcCtx.Board.Trade(l.ctx, req.PairID, req.Side, req.Amount)
	return &types.TradeResp{Accepted: res.Accepted, Message: res.Message}, nil
}
