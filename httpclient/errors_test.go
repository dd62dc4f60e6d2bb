package httpclient

import (
	"errors"
	"net/http"
	"testing"
)

func TestClassifyStatusCode_Success(t *testing.T) {
	if err := ClassifyStatusCode(200, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ClassifyStatusCode(201, nil); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestClassifyStatusCode_Codes(t *testing.T) {
	tests := []struct {
		status    int
		code      ErrorCode
		retryable bool
	}{
		{http.StatusUnauthorized, ErrCodeAuth, false},
		{http.StatusForbidden, ErrCodeAuth, false},
		{http.StatusNotFound, ErrCodeNotFound, false},
		{http.StatusTooManyRequests, ErrCodeRateLimit, true},
		{http.StatusBadRequest, ErrCodeBadRequest, false},
		{http.StatusInternalServerError, ErrCodeServer, true},
		{http.StatusBadGateway, ErrCodeServer, true},
	}
	for _, tt := range tests {
		err := ClassifyStatusCode(tt.status, []byte("body"))
		if err == nil {
			t.Fatalf("expected error for %d", tt.status)
		}
		if err.Code != tt.code {
			t.Errorf("status %d: expected code %s, got %s", tt.status, tt.code, err.Code)
		}
		if err.Retryable != tt.retryable {
			t.Errorf("status %d: expected retryable=%v", tt.status, tt.retryable)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(NewConnectionError(errors.New("refused"))) {
		t.Error("expected connection errors to be retryable")
	}
	if IsRetryable(errors.New("plain")) {
		t.Error("expected plain errors not retryable")
	}
}

func TestError_Message(t *testing.T) {
	err := ClassifyStatusCode(503, nil)
	if got := err.Error(); got != "httpclient: server (HTTP 503): Service Unavailable" {
		t.Errorf("unexpected message: %q", got)
	}
}
