package config

import (
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	// APIKeyEnv - SiliconFlow API 키 환경변수 이름
	APIKeyEnv = "SILICONFLOW_API_KEY"

	DefaultSiliconFlowURL = "https://api.siliconflow.com/v1/images/generations"
	DefaultModel          = "Qwen/Qwen-Image"
)

// Config 구조체 - 모든 환경변수를 담음
// API 키는 여기에 담지 않음 (요청마다 APIKey()로 새로 읽음)
type Config struct {
	// Server
	Host      string
	Port      string
	StaticDir string

	// SiliconFlow
	SiliconFlowURL   string
	SiliconFlowModel string
	UpstreamTimeout  time.Duration
}

var globalConfig *Config

// LoadConfig - 환경변수 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (있으면)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env file not found, using environment variables")
	}

	// UpstreamTimeout 파싱 (0 = 타임아웃 없음)
	var timeout time.Duration
	if timeoutStr := os.Getenv("UPSTREAM_TIMEOUT"); timeoutStr != "" {
		parsed, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", timeoutStr, err)
		}
		timeout = parsed
	}

	cfg := &Config{
		// Server
		Host:      getEnv("HOST", "0.0.0.0"),
		Port:      getEnv("PORT", "5053"),
		StaticDir: getEnv("STATIC_DIR", "web"),

		// SiliconFlow
		SiliconFlowURL:   getEnv("SILICONFLOW_API_URL", DefaultSiliconFlowURL),
		SiliconFlowModel: getEnv("SILICONFLOW_MODEL", DefaultModel),
		UpstreamTimeout:  timeout,
	}

	// 필수 값 검증
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	globalConfig = cfg

	log.Println("✅ Configuration loaded successfully")
	log.Printf("   Listen: %s", cfg.Addr())
	log.Printf("   Static: %s", cfg.StaticDir)
	log.Printf("   SiliconFlow: %s (model: %s, timeout: %v)", cfg.SiliconFlowURL, cfg.SiliconFlowModel, cfg.UpstreamTimeout)
	if APIKey() == "" {
		log.Printf("⚠️  %s not set, /api/generate will fail until it is", APIKeyEnv)
	}

	return cfg, nil
}

// GetConfig - 로드된 설정 가져오기
func GetConfig() *Config {
	if globalConfig == nil {
		log.Fatal("❌ Config not loaded. Call LoadConfig() first.")
	}
	return globalConfig
}

// APIKey - SILICONFLOW_API_KEY를 호출 시점에 읽음 (캐시하지 않음)
func APIKey() string {
	return os.Getenv(APIKeyEnv)
}

// validate - 설정값 검증
func (c *Config) validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}
	if c.StaticDir == "" {
		return fmt.Errorf("STATIC_DIR is required")
	}
	if c.SiliconFlowURL == "" {
		return fmt.Errorf("SILICONFLOW_API_URL is required")
	}
	if c.UpstreamTimeout < 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must not be negative")
	}
	return nil
}

// getEnv - 환경변수 가져오기 (기본값 지원)
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Addr - 리스너 주소 생성
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
