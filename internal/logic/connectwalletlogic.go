package logic

import (
	"context"
	"errors"
	"strings"

	"github.com/zeromicro/go-zero/core/logx"

	"dexboard-api/internal/session"
	"dexboard-api/internal/svc"
	"dexboard-api/internal/types"
)

type ConnectWalletLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewConnectWalletLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ConnectWalletLogic {
	return &ConnectWalletLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

// ConnectWallet validates the address and stores the session, replacing any
// previous one. The network defaults to the service's configured network.
func (l *ConnectWalletLogic) ConnectWallet(req *types.ConnectWalletReq) (*types.WalletResp, error) {
	if req.Balance < 0 {
		return nil, errors.New("balance cannot be negative")
	}
	network := strings.TrimSpace(req.Network)
	if network == "" {
		network = l.svcCtx.Config.Network
	}
	currency := ""
	if n, ok := l.svcCtx.TokensConfig.Network(network); ok {
		currency = n.Currency
	}

	w, err := l.svcCtx.Session.Connect(req.Address, session.WeiFromFloat(req.Balance), network, currency)
	if err != nil {
		return nil, err
	}
	l.Infof("wallet connected: %s network=%s", w.Info().ShortAddress, network)
	return walletResp(w.Info()), nil
}
