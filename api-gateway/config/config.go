package config

import (
	"os"
	"strings"
	"time"
)

// ServiceConfig holds configuration for a backend service
type ServiceConfig struct {
	Name        string
	Instances   []string
	Timeout     time.Duration
	HealthCheck string
}

// GatewayConfig holds the main gateway configuration
type GatewayConfig struct {
	Port      string
	RedisAddr string
	Services  map[string]ServiceConfig
}

// LoadConfig loads the gateway configuration from the environment. The sales
// service may run several replicas; SALES_SERVICE_URLS takes a comma
// separated list.
func LoadConfig() *GatewayConfig {
	return &GatewayConfig{
		Port:      getEnv("GATEWAY_PORT", "8000"),
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		Services: map[string]ServiceConfig{
			"sales": {
				Name:        "sales-service",
				Instances:   splitList(getEnv("SALES_SERVICE_URLS", "http://localhost:8080")),
				Timeout:     30 * time.Second,
				HealthCheck: "/health",
			},
		},
	}
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	urls := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			urls = append(urls, trimmed)
		}
	}
	return urls
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
