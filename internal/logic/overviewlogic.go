package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"dexboard-api/internal/svc"
	"dexboard-api/internal/types"
)

type OverviewLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewOverviewLogic(ctx context.Context, svcCtx *svc.ServiceContext) *OverviewLogic {
	return &OverviewLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Overview returns the current dashboard view. The first call after startup
// performs the initial data load.
func (l *OverviewLogic) Overview() (*types.OverviewResp, error) {
	return viewResp(l.svcCtx.Board.View(l.ctx)), nil
}
