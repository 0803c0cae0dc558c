package middleware

import "net/http"

// CORS 헤더 값 (설정 없음, 항상 동일)
const (
	AllowOrigin  = "*"
	AllowHeaders = "Content-Type, Authorization"
	AllowMethods = "GET, POST, OPTIONS"
)

// CORS - 모든 응답에 CORS 헤더 추가
// 라우터 전체를 감싸야 함 (mux의 404/405 응답은 r.Use 미들웨어를 거치지 않음)
// OPTIONS 처리는 각 핸들러에 맡김
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", AllowOrigin)
		h.Set("Access-Control-Allow-Headers", AllowHeaders)
		h.Set("Access-Control-Allow-Methods", AllowMethods)

		next.ServeHTTP(w, r)
	})
}
