package generate

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// 기본값
const (
	DefaultImageSize = "1024x1024"
	DefaultSteps     = 20
)

// GenerateRequest - POST /api/generate 요청
type GenerateRequest struct {
	Prompt            string `json:"prompt"`
	ImageSize         string `json:"image_size"`
	NumInferenceSteps int    `json:"num_inference_steps"`
}

// ErrorResponse - 에러 응답 body
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeGenerateRequest - 요청 body 해석, 실패해도 에러 없이 기본값 사용
// 잘못된 JSON이나 object가 아닌 값은 빈 object로 취급
// 필드 타입이 맞지 않으면 해당 필드만 기본값
func DecodeGenerateRequest(body []byte) GenerateRequest {
	req := GenerateRequest{
		ImageSize:         DefaultImageSize,
		NumInferenceSteps: DefaultSteps,
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return req
	}

	if s, ok := stringField(fields, "prompt"); ok {
		req.Prompt = strings.TrimSpace(s)
	}
	if s, ok := stringField(fields, "image_size"); ok {
		req.ImageSize = strings.TrimSpace(s)
	}
	if n, ok := intField(fields, "num_inference_steps"); ok {
		req.NumInferenceSteps = n
	}
	return req
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// intField - 숫자는 0 방향으로 버림, 문자열은 10진 정수만 허용
func intField(fields map[string]json.RawMessage, key string) (int, bool) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		t := math.Trunc(f)
		if t > math.MaxInt32 || t < math.MinInt32 {
			return 0, false
		}
		return int(t), true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// isNull - JSON null은 필드가 없는 것으로 취급
func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}
