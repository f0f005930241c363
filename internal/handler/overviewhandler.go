package handler

import (
	"net/http"

	"github.com/zeromicro/go-zero/rest/httpx"

	"dexboard-api/internal/logic"
	"dexboard-api/internal/svc"
)

func OverviewHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := logic.NewOverviewLogic(r.Context(), svcCtx)
		resp, err := l.Overview()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
