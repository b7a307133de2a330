package queue

import (
	"context"
	"errors"
)

const (
	TopicQuizFeedback = "quiz.feedback"
	TopicReportShare  = "report.share"
)

var ErrClosed = errors.New("broker closed")

type Handler func(ctx context.Context, body []byte) error

type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) error
}

type Broker interface {
	Publisher
	Subscribe(topic string, handler Handler) error
	Close() error
}
