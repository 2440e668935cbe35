package httpclient

import (
	"net/http"
	"ticketing-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

const (
	TypeThreshold   = "threshold"
	TypeConsecutive = "consecutive"
	TypeRate        = "rate"
)

// InitCircuitBreaker picks the breaker strategy named by cbType, falling back to consecutive.
func InitCircuitBreaker(cfg *config.HttpClientConfig, cbType string) *circuit.Breaker {
	switch cbType {
	case TypeThreshold:
		return circuit.NewThresholdBreaker(cfg.Threshold)
	case TypeRate:
		return circuit.NewRateBreaker(cfg.Rate, cfg.MinSamples)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := &http.Client{Timeout: cfg.Timeout}
	return circuit.NewHTTPClientWithBreaker(cb, cfg.Timeout, client)
}
