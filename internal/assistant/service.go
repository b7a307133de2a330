package assistant

import (
	"context"
	"math/rand/v2"
	"strings"

	"github.com/saulo-duarte/neurobridge-lambda/internal/config"
)

type Service interface {
	Welcome(role Role) WelcomeResponse
	Reply(ctx context.Context, role Role, message string) MessageResponse
}

type service struct {
	pick func(n int) int
}

// NewService builds the keyword assistant. pick chooses one of n fallback
// replies; nil picks at random.
func NewService(pick func(n int) int) Service {
	if pick == nil {
		pick = rand.IntN
	}
	return &service{pick: pick}
}

func (s *service) Welcome(role Role) WelcomeResponse {
	return WelcomeResponse{Role: role, Message: welcomes[role]}
}

func (s *service) Reply(ctx context.Context, role Role, message string) MessageResponse {
	msg := strings.ToLower(message)
	for _, r := range ladder {
		if r.matches(msg) {
			return MessageResponse{Role: role, Topic: r.topic, Reply: r.reply(role)}
		}
	}

	config.WithContext(ctx).WithField("role", role).Debug("Assistant had no topic for message")
	return MessageResponse{Role: role, Topic: TopicFallback, Reply: fallbacks[s.pick(len(fallbacks))]}
}
