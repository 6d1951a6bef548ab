package node

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pandodao/watch-wallet/core"
)

func newTestProvider(t *testing.T, h http.HandlerFunc) *Provider {
	t.Helper()

	svr := httptest.NewServer(h)
	t.Cleanup(svr.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(Config{URL: svr.URL, Network: "stagenet", Timeout: 2 * time.Second}, logger)
}

func TestRequestEnvelope(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}

		if r.URL.Path != "/json_rpc" {
			t.Errorf("path = %s, want /json_rpc", r.URL.Path)
		}

		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}

		if req["jsonrpc"] != "2.0" || req["id"] != "0" || req["method"] != "get_info" {
			t.Errorf("unexpected request %v", req)
		}

		if _, ok := req["params"]; !ok {
			t.Errorf("request has no params key: %v", req)
		}

		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":"0","result":{"height":3200123,"status":"OK"}}`)
	})

	height, err := p.Height(context.Background())
	if err != nil {
		t.Fatalf("Height: %v", err)
	}

	if height != 3200123 {
		t.Errorf("height = %d, want 3200123", height)
	}
}

func TestGetBalance(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":"0","result":{"height":42,"status":"OK"}}`)
	})

	b, err := p.GetBalance(context.Background(), &core.Wallet{ID: "w"})
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}

	if b.SyncedHeight != 42 || b.BalanceAtomic != 0 || b.UnlockedAtomic != 0 {
		t.Errorf("unexpected balance %+v", b)
	}

	if b.Network != "stagenet" {
		t.Errorf("network = %q, want stagenet", b.Network)
	}

	b, err = p.GetBalance(context.Background(), &core.Wallet{ID: "w", RestoreHeight: 1000})
	if err != nil {
		t.Fatalf("GetBalance: %v", err)
	}

	if b.SyncedHeight != 1000 {
		t.Errorf("SyncedHeight = %d, want the restore height 1000", b.SyncedHeight)
	}

	txs, err := p.GetTransactions(context.Background(), &core.Wallet{ID: "w"}, 10)
	if err != nil {
		t.Fatalf("GetTransactions: %v", err)
	}

	if txs == nil || len(txs) != 0 {
		t.Errorf("expected empty non-nil tx list, got %v", txs)
	}
}

func TestCallFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{
			name: "http status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			want: "unexpected status 502",
		},
		{
			name: "rpc error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":"0","error":{"code":-32601,"message":"Method not found"}}`)
			},
			want: "Method not found",
		},
		{
			name: "missing result",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":"0"}`)
			},
			want: "no result",
		},
		{
			name: "daemon busy",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":"0","result":{"height":42,"status":"BUSY"}}`)
			},
			want: `daemon status "BUSY"`,
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, `<html>`)
			},
			want: "decode response",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestProvider(t, tt.handler)

			_, err := p.GetBalance(context.Background(), &core.Wallet{})
			var pe *core.ProviderError
			if !errors.As(err, &pe) {
				t.Fatalf("expected ProviderError, got %v", err)
			}

			if pe.Provider != core.ProviderReal {
				t.Errorf("provider = %q", pe.Provider)
			}

			if !strings.Contains(pe.Message, tt.want) {
				t.Errorf("message %q does not contain %q", pe.Message, tt.want)
			}

			if _, err := p.GetTransactions(context.Background(), &core.Wallet{}, 10); !errors.As(err, &pe) {
				t.Errorf("GetTransactions: expected ProviderError, got %v", err)
			}
		})
	}
}

func TestCallerDeadline(t *testing.T) {
	release := make(chan struct{})
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := p.Height(ctx)
	if err == nil {
		t.Fatal("expected error from stalled daemon")
	}

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("expected deadline exceeded, got %v", err)
	}

	if time.Since(start) > time.Second {
		t.Errorf("caller waited %s on a stalled daemon", time.Since(start))
	}
}

func TestHeightCollapsesConcurrentCalls(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		<-release
		_, _ = io.WriteString(w, `{"jsonrpc":"2.0","id":"0","result":{"height":7,"status":"OK"}}`)
	})

	const n = 8
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		go func() {
			_, err := p.Height(context.Background())
			errs <- err
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(release)

	for i := 0; i < n; i++ {
		if err := <-errs; err != nil {
			t.Errorf("Height: %v", err)
		}
	}

	if got := calls.Load(); got >= n {
		t.Errorf("daemon received %d calls for %d concurrent callers", got, n)
	}
}
