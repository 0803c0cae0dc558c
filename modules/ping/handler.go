package ping

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

// ServiceName - /health 응답에 들어가는 서비스 이름
const ServiceName = "create-image-relay"

// RegisterRoutes - 헬스 체크 엔드포인트 등록
func RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/ping", Ping).Methods(http.MethodGet, http.MethodHead, http.MethodOptions)
	r.HandleFunc("/health", HealthCheck).Methods(http.MethodGet)
}

// Ping - GET /api/ping, 항상 "pong"
// OPTIONS는 body 없이 200 (preflight)
func Ping(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.Header().Set("Allow", "GET, HEAD, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}

// HealthCheck - GET /health
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "healthy",
		"service": ServiceName,
	})
}
