package generate

import (
	"context"
	"errors"
	"log"

	"create-image-relay/modules/common/config"
	"create-image-relay/modules/common/utils"
	"create-image-relay/modules/siliconflow"
)

// ErrMissingAPIKey - SILICONFLOW_API_KEY 미설정
var ErrMissingAPIKey = errors.New(config.APIKeyEnv + " not set")

// Upstream - 이미지 생성 업스트림 (siliconflow.Client)
type Upstream interface {
	Generate(ctx context.Context, apiKey string, req *siliconflow.ImageRequest) (*siliconflow.Response, error)
}

type Service struct {
	upstream Upstream
	model    string
}

func NewService(upstream Upstream, model string) *Service {
	return &Service{
		upstream: upstream,
		model:    model,
	}
}

// Generate - API 키 확인 후 업스트림 호출
// 호출자가 연결을 끊어도 업스트림 요청은 끝까지 진행
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*siliconflow.Response, error) {
	apiKey := config.APIKey()
	if apiKey == "" {
		log.Printf("❌ [Generate] %v", ErrMissingAPIKey)
		return nil, ErrMissingAPIKey
	}

	log.Printf("🎨 [Generate] model=%s, size=%s, steps=%d, prompt=%s",
		s.model, req.ImageSize, req.NumInferenceSteps, utils.TruncateString(req.Prompt, 50))

	return s.upstream.Generate(context.WithoutCancel(ctx), apiKey, &siliconflow.ImageRequest{
		Model:             s.model,
		Prompt:            req.Prompt,
		ImageSize:         req.ImageSize,
		NumInferenceSteps: req.NumInferenceSteps,
	})
}
