package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

// retryConfig returns a config with millisecond-scale waits so tests run fast.
func retryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetry_FirstAttemptSucceeds(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	retry := WithRetry(mock, retryConfig())

	resp, err := retry.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
}

func TestRetry_TransientFailureThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("connection reset")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	retry := WithRetry(mock, retryConfig())

	resp, err := retry.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_AllAttemptsFail(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
	)
	retry := WithRetry(mock, retryConfig())

	_, err := retry.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error after exhausting retries")
	}
	if mock.CallCount() != 3 {
		t.Fatalf("expected 3 calls, got %d", mock.CallCount())
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage("truncated quiz")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	retry := WithRetry(mock, retryConfig())

	_, err := retry.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected max tokens error")
	}
	var mt *ErrMaxTokensExceeded
	if !errors.As(err, &mt) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call (no retry), got %d", mock.CallCount())
	}
}

func TestRetry_InvalidResponseRetriedOnce(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage("not json"), Err: errors.New("parse")}},
		MockResponse{Err: &ErrInvalidResponse{Content: json.RawMessage("still not json"), Err: errors.New("parse")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	retry := WithRetry(mock, retryConfig())

	_, err := retry.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error: invalid response should only be retried once")
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_ContextCancellation(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	retry := WithRetry(mock, RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     time.Second,
		Multiplier:  2.0,
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := retry.Generate(ctx, Request{})
	if err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRetry_RateLimitHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: 5 * time.Millisecond}},
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)
	retry := WithRetry(mock, retryConfig())

	start := time.Now()
	resp, err := retry.Generate(context.Background(), Request{})
	elapsed := time.Since(start)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"ok":true}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if elapsed < 5*time.Millisecond {
		t.Fatalf("expected to wait at least 5ms, waited %v", elapsed)
	}
}

func TestRetry_ModelIDDelegates(t *testing.T) {
	mock := NewMockProvider()
	retry := WithRetry(mock, retryConfig())
	if retry.ModelID() != "mock" {
		t.Fatalf("expected 'mock', got %q", retry.ModelID())
	}
}
