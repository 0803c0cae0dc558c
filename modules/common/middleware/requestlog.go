package middleware

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader - 요청 추적용 헤더
const RequestIDHeader = "X-Request-ID"

// statusRecorder - 응답 상태코드/크기 기록
type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (s *statusRecorder) WriteHeader(code int) {
	if s.status == 0 {
		s.status = code
	}
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	n, err := s.ResponseWriter.Write(b)
	s.bytes += n
	return n, err
}

// Unwrap - http.ResponseController 지원
func (s *statusRecorder) Unwrap() http.ResponseWriter {
	return s.ResponseWriter
}

// RequestLogger - 요청마다 uuid 발급 후 한 줄 로그
// 클라이언트가 보낸 X-Request-ID는 그대로 사용
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)

		status := rec.status
		if status == 0 {
			status = http.StatusOK
		}

		marker := "📥"
		if status >= 500 {
			marker = "❌"
		} else if status >= 400 {
			marker = "⚠️"
		}
		log.Printf("%s [HTTP] %s %s %s -> %d (%d bytes, %v)",
			marker, requestID, r.Method, r.URL.Path, status, rec.bytes, time.Since(start))
	})
}
