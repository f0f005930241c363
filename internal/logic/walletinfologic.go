package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"dexboard-api/internal/svc"
	"dexboard-api/internal/types"
)

type WalletInfoLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewWalletInfoLogic(ctx context.Context, svcCtx *svc.ServiceContext) *WalletInfoLogic {
	return &WalletInfoLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// WalletInfo returns the active wallet session, if any.
func (l *WalletInfoLogic) WalletInfo() (*types.WalletResp, error) {
	w, ok := l.svcCtx.Session.Active()
	if !ok {
		return &types.WalletResp{Connected: false}, nil
	}
	return walletResp(w.Info()), nil
}
