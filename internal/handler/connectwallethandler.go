package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"dexboard-api/internal/logic"
	"dexboard-api/internal/svc"
	"dexboard-api/internal/types"
)

func ConnectWalletHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.ConnectWalletReq
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := logic.NewConnectWalletLogic(r.Context(), svcCtx)
		resp, err := l.ConnectWallet(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
