package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"dexboard-api/internal/board"
	"dexboard-api/internal/svc"
	"dexboard-api/internal/types"
)

type RefreshLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRefreshLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RefreshLogic {
	return &RefreshLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Refresh re-fetches both data kinds and returns the resulting view.
func (l *RefreshLogic) Refresh() (*types.OverviewResp, error) {
	l.svcCtx.Board.Refresh(l.ctx, board.TriggerManual)
	return viewResp(l.svcCtx.Board.View(l.ctx)), nil
}
