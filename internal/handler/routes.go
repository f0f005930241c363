// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest"

	"dexboard-api/internal/svc"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/market/overview",
				Handler: OverviewHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/market/refresh",
				Handler: RefreshHandler(serverCtx),
			},
			{
				Method:  http.MethodPut,
				Path:    "/market/search",
				Handler: SearchHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/trade",
				Handler: TradeHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/wallet",
				Handler: WalletInfoHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/wallet/connect",
				Handler: ConnectWalletHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/wallet/disconnect",
				Handler: DisconnectWalletHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/tokens",
				Handler: TokensHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api/v1"),
	)
}
