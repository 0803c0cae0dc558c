package siliconflow

import "net/http"

// ImageRequest - SiliconFlow 이미지 생성 API 요청 구조체
type ImageRequest struct {
	Model             string `json:"model"`
	Prompt            string `json:"prompt"`
	ImageSize         string `json:"image_size"`
	NumInferenceSteps int    `json:"num_inference_steps"`
}

// Response - 업스트림 응답 (HTTP 레벨 결과)
// 전송 실패는 Response가 아니라 Generate의 error로 반환됨
type Response struct {
	StatusCode  int
	ContentType string
	Body        []byte

	// BodyErr - 에러 상태코드 응답의 body를 읽지 못한 경우
	BodyErr error
}

// OK - 2xx 여부
func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}
