package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config 聚合整个服务的配置项。
type Config struct {
	Server   ServerConfig
	Chat     ChatConfig
	Auth     AuthConfig
	Content  ContentConfig
	Database DatabaseConfig
	Log      LogConfig
}

// Load 从环境变量加载配置。
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	chat, err := loadChatConfig()
	if err != nil {
		return nil, err
	}

	content, err := loadContentConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:   server,
		Chat:     chat,
		Auth:     loadAuthConfig(),
		Content:  content,
		Database: DatabaseConfig{URL: strings.TrimSpace(os.Getenv("DATABASE_URL"))},
		Log:      LogConfig{Level: getEnvOrDefault("LOG_LEVEL", "info")},
	}, nil
}

// ServerConfig 描述 HTTP 服务配置。
type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

// loadServerConfig 解析服务器监听地址。
func loadServerConfig() (ServerConfig, error) {
	origins := splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*"))

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// 允许用户直接传入 ":8080" 或 "127.0.0.1:8080"。
		return ServerConfig{Addr: port, AllowedOrigins: origins}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port, AllowedOrigins: origins}, nil
}

// ChatConfig 描述聊天会话提供方（ChatKit）相关配置。
type ChatConfig struct {
	APIKey        string
	WorkflowID    string
	BaseURL       string
	MockExpiresIn int
}

// Enabled 表示是否提供了调用会话接口所需的凭证；否则走 mock 会话。
func (c ChatConfig) Enabled() bool {
	return c.APIKey != "" && c.WorkflowID != ""
}

func loadChatConfig() (ChatConfig, error) {
	expires := 3600
	if override, err := parseOptionalIntEnv("CHAT_MOCK_EXPIRES_IN"); err != nil {
		return ChatConfig{}, err
	} else if override != nil {
		if *override < 1 {
			return ChatConfig{}, fmt.Errorf("invalid CHAT_MOCK_EXPIRES_IN value %d: must be positive", *override)
		}
		expires = *override
	}

	return ChatConfig{
		APIKey:        strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		WorkflowID:    strings.TrimSpace(os.Getenv("WORKFLOW_ID")),
		BaseURL:       strings.TrimRight(getEnvOrDefault("CHATKIT_BASE_URL", "https://api.openai.com/v1"), "/"),
		MockExpiresIn: expires,
	}, nil
}

// AuthConfig 描述可选的登录态校验。SigningKey 为空时所有请求都按访客处理。
type AuthConfig struct {
	SigningKey string
	Issuer     string
	CookieName string
}

// Enabled reports whether tokens should be verified at all.
func (c AuthConfig) Enabled() bool {
	return c.SigningKey != ""
}

func loadAuthConfig() AuthConfig {
	return AuthConfig{
		SigningKey: strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET")),
		Issuer:     strings.TrimSpace(os.Getenv("AUTH_JWT_ISSUER")),
		CookieName: getEnvOrDefault("AUTH_COOKIE_NAME", "__session"),
	}
}

// ContentConfig selects the content source. A Sanity project id switches
// from the local store to the hosted query API.
type ContentConfig struct {
	File       string
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	UseCDN     bool
}

// SanityEnabled 表示是否配置了 Sanity 项目。
func (c ContentConfig) SanityEnabled() bool {
	return c.ProjectID != "" && c.Dataset != ""
}

func loadContentConfig() (ContentConfig, error) {
	useCDN, err := parseBoolEnv("SANITY_USE_CDN", true)
	if err != nil {
		return ContentConfig{}, err
	}

	return ContentConfig{
		File:       strings.TrimSpace(os.Getenv("CONTENT_FILE")),
		ProjectID:  strings.TrimSpace(os.Getenv("SANITY_PROJECT_ID")),
		Dataset:    getEnvOrDefault("SANITY_DATASET", "production"),
		APIVersion: getEnvOrDefault("SANITY_API_VERSION", "2024-01-01"),
		Token:      strings.TrimSpace(os.Getenv("SANITY_API_TOKEN")),
		UseCDN:     useCDN,
	}, nil
}

// DatabaseConfig 描述联系表单落库配置，URL 为空则只记录日志。
type DatabaseConfig struct {
	URL string
}

// Enabled reports whether a database sink is configured.
func (c DatabaseConfig) Enabled() bool {
	return c.URL != ""
}

// LogConfig 描述日志级别。
type LogConfig struct {
	Level string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}

func parseOptionalIntEnv(key string) (*int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return nil, nil
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	val, err := strconv.Atoi(value)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return &val, nil
}
