package logic

import (
	"context"

	"github.com/zeromicro/go-zero/core/logx"

	"dexboard-api/internal/svc"
	"dexboard-api/internal/types"
)

type DisconnectWalletLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewDisconnectWalletLogic(ctx context.Context, svcCtx *svc.ServiceContext) *DisconnectWalletLogic {
	return &DisconnectWalletLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// DisconnectWallet clears the session.
func (l *DisconnectWalletLogic) DisconnectWallet() (*types.WalletResp, error) {
	l.svcCtx.Session.Disconnect()
	return &types.WalletResp{Connected: false}, nil
}
