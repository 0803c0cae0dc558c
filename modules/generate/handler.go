package generate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"unicode/utf8"

	"github.com/gorilla/mux"

	"create-image-relay/modules/siliconflow"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// RegisterRoutes - /api/generate 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/generate", h.HandleGenerate).Methods(http.MethodPost, http.MethodOptions)
}

// HandleGenerate - POST /api/generate
// 업스트림 응답의 status/body/content-type을 그대로 전달
func (h *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	// OPTIONS 요청 처리 (preflight)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	// 읽기 실패도 빈 body로 취급
	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Printf("⚠️ [Generate] Failed to read request body: %v", err)
		body = nil
	}
	req := DecodeGenerateRequest(body)

	resp, err := h.service.Generate(r.Context(), req)
	if err != nil {
		if !errors.Is(err, ErrMissingAPIKey) {
			log.Printf("❌ [Generate] Upstream call failed: %v", err)
		}
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	if resp.OK() {
		writeSuccess(w, resp)
		return
	}
	writeUpstreamError(w, resp)
}

// writeSuccess - JSON이면 다시 직렬화, 아니면 원본 그대로 (항상 200)
func writeSuccess(w http.ResponseWriter, resp *siliconflow.Response) {
	if encoded, ok := reencodeJSON(resp.Body); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write(encoded)
		return
	}

	log.Printf("⚠️ [Generate] Upstream body is not JSON, passing through as %s", resp.ContentType)
	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(resp.Body)
}

// writeUpstreamError - 업스트림 에러 그대로 전달, body를 못 읽었으면 "HTTP <code>"
func writeUpstreamError(w http.ResponseWriter, resp *siliconflow.Response) {
	if resp.BodyErr != nil {
		writeJSON(w, resp.StatusCode, ErrorResponse{Error: fmt.Sprintf("HTTP %d", resp.StatusCode)})
		return
	}

	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(resp.StatusCode)
	w.Write(resp.Body)
}

// reencodeJSON - body가 단일 JSON 값이면 다시 직렬화 (숫자는 원본 표기 유지)
// UTF-8이 아니면 JSON으로 보지 않음 (encoding/json은 U+FFFD로 바꿔버림)
func reencodeJSON(body []byte) ([]byte, bool) {
	if !utf8.Valid(body) {
		return nil, false
	}
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var value interface{}
	if err := dec.Decode(&value); err != nil {
		return nil, false
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, false
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return nil, false
	}
	return buf.Bytes(), true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("❌ [Generate] Failed to encode response: %v", err)
	}
}
