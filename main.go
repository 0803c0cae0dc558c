package main

import (
	"log"
	"net/http"

	"create-image-relay/modules/common/config"
	"create-image-relay/modules/server"
)

func main() {
	// 환경변수 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("❌ Failed to load config: %v", err)
	}

	// 라우터 설정
	handler := server.NewRouter(cfg)

	log.Printf("🚀 Create Image relay starting on %s", cfg.Addr())
	log.Printf("🖼️  App: http://localhost:%s/", cfg.Port)
	log.Printf("❤️  Health check: http://localhost:%s/api/ping", cfg.Port)
	log.Printf("🎨 Generate: POST http://localhost:%s/api/generate", cfg.Port)

	// 서버 시작
	if err := http.ListenAndServe(cfg.Addr(), handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
