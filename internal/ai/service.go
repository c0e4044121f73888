// README: Advisory wrapper; bounded wait, always returns a user-safe string.
package ai

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const (
	// FallbackUnavailable is returned when no advisor is configured.
	FallbackUnavailable = "AI Analysis unavailable: API Key missing."
	// FallbackFailed is returned when the advisor errors or times out.
	FallbackFailed = "AI analysis failed. Please verify network connection."
)

// Service guards an Advisor with a timeout and fallback text. Advisory output
// is best-effort commentary; a failure here must never surface as an error to
// the booking flow.
type Service struct {
	advisor Advisor
	timeout time.Duration
	logger  *zap.Logger
}

// NewService wraps advisor. advisor may be nil when no API key is configured.
func NewService(advisor Advisor, timeout time.Duration, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{advisor: advisor, timeout: timeout, logger: logger}
}

// AnalyzeRoute returns route commentary or a fallback string. It never
// returns an error.
func (s *Service) AnalyzeRoute(ctx context.Context, q RouteQuery) string {
	if s.advisor == nil {
		return FallbackUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.advisor.AnalyzeRoute(ctx, q)
	if err != nil {
		s.logger.Warn("route advisory failed", zap.Error(err))
		return FallbackFailed
	}
	return text
}
