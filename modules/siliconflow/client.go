package siliconflow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"create-image-relay/modules/common/utils"
)

const defaultContentType = "application/json"

// Client - SiliconFlow images/generations 호출용 클라이언트
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient - timeout 0이면 클라이언트 타임아웃 없음
func NewClient(url string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
	}
}

// AuthorizationValue - "Bearer " 접두사가 없으면 붙임 (대소문자 무시)
func AuthorizationValue(apiKey string) string {
	if strings.HasPrefix(strings.ToLower(apiKey), "bearer ") {
		return apiKey
	}
	return "Bearer " + apiKey
}

// Generate - 업스트림에 이미지 생성 요청
// error는 전송 실패 (DNS, 연결, 타임아웃, 2xx body 읽기 실패)
// 업스트림 에러 상태코드는 error가 아니라 Response로 반환
func (c *Client) Generate(ctx context.Context, apiKey string, req *ImageRequest) (*Response, error) {
	jsonBody, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", AuthorizationValue(apiKey))

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Printf("❌ [SiliconFlow] Request failed: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}
	result := &Response{
		StatusCode:  resp.StatusCode,
		ContentType: contentType,
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if result.OK() {
			log.Printf("❌ [SiliconFlow] Failed to read response: %v", err)
			return nil, fmt.Errorf("failed to read response: %w", err)
		}
		log.Printf("❌ [SiliconFlow] status=%d, failed to read error body: %v", resp.StatusCode, err)
		result.BodyErr = err
		return result, nil
	}
	result.Body = body

	if !result.OK() {
		log.Printf("❌ [SiliconFlow] API error: status=%d, body=%s", resp.StatusCode, utils.TruncateString(string(body), 200))
	} else {
		log.Printf("✅ [SiliconFlow] status=%d, %d bytes in %v", resp.StatusCode, len(body), time.Since(start))
	}
	return result, nil
}
