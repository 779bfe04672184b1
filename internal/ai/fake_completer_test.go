package ai

import (
	"context"
	"sync"
	"time"

	"github.com/Abdul-bari-Zahid/doctor-startup/internal/models"
)

type scriptedReply struct {
	text string
	err  error
}

type fakeCompleter struct {
	mu       sync.Mutex
	replies  []scriptedReply
	requests []Request
}

func (completer *fakeCompleter) Complete(_ context.Context, request Request) (Response, error) {
	completer.mu.Lock()
	defer completer.mu.Unlock()

	completer.requests = append(completer.requests, request)
	if len(completer.replies) == 0 {
		return Response{}, ErrEmptyResponse
	}
	reply := completer.replies[0]
	completer.replies = completer.replies[1:]
	if reply.err != nil {
		return Response{}, reply.err
	}
	return Response{Text: reply.text, Model: "fake-model", Usage: Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15}}, nil
}

func (completer *fakeCompleter) Model() string {
	return "fake-model"
}

type memoryRecorder struct {
	calls []models.AICall
}

func (recorder *memoryRecorder) RecordCall(_ context.Context, call models.AICall) error {
	recorder.calls = append(recorder.calls, call)
	return nil
}

func noDelayPolicy(delays *[]time.Duration) RetryPolicy {
	return RetryPolicy{
		Attempts: DefaultRetryAttempts,
		Delay:    DefaultRetryDelay,
		Sleep: func(_ context.Context, delay time.Duration) error {
			*delays = append(*delays, delay)
			return nil
		},
	}
}
