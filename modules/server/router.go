package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"create-image-relay/modules/common/config"
	"create-image-relay/modules/common/middleware"
	"create-image-relay/modules/generate"
	"create-image-relay/modules/ping"
	"create-image-relay/modules/siliconflow"
	"create-image-relay/modules/static"
)

// NewRouter - 라우터 설정
// CORS/로그 미들웨어는 라우터 바깥에서 감쌈 (mux의 404/405에도 적용)
func NewRouter(cfg *config.Config) http.Handler {
	r := mux.NewRouter()

	// API 라우트 먼저 (static은 나머지 경로 전부 매칭)
	ping.RegisterRoutes(r)

	client := siliconflow.NewClient(cfg.SiliconFlowURL, cfg.UpstreamTimeout)
	generate.NewHandler(generate.NewService(client, cfg.SiliconFlowModel)).RegisterRoutes(r)

	static.NewHandler(cfg.StaticDir).RegisterRoutes(r)

	return middleware.RequestLogger(middleware.CORS(r))
}
