package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"dexboard-api/internal/svc"
	"dexboard-api/internal/types"
)

type SearchLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSearchLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SearchLogic {
	return &SearchLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// Search sets the filter term and returns the filtered view.
func (l *SearchLogic) Search(req *types.SearchReq) (*types.OverviewResp, error) {
	return viewResp(l.svcCtx.Board.SetSearch(l.ctx, req.Term)), nil
}
