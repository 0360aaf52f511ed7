package cricbuzz

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/cricket-stats/internal/platform/logging"
	"github.com/riskibarqy/cricket-stats/internal/platform/resilience"
	"github.com/riskibarqy/cricket-stats/internal/usecase"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, breaker resilience.BreakerConfig) (*Client, *logging.Capture) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger, capture := logging.NewNop().Tee(logging.LevelDebug)
	t.Cleanup(capture.Release)

	client := NewClient(ClientConfig{
		BaseURL:        srv.URL,
		APIKey:         "secret-key",
		Timeout:        time.Second,
		Logger:         logger,
		CircuitBreaker: breaker,
	})
	client.now = func() time.Time { return fixedNow }
	return client, capture
}

func TestClient_SendsHeadersAndDecodes(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats/v1/player/search" || r.URL.Query().Get("plrN") != "Virat Kohli" {
			t.Errorf("unexpected request: %s", r.URL.String())
		}
		if r.Header.Get("x-rapidapi-key") != "secret-key" || r.Header.Get("x-rapidapi-host") != defaultHost {
			t.Errorf("missing rapidapi headers: %v", r.Header)
		}
		if r.Header.Get("accept") != "application/json" {
			t.Errorf("unexpected accept header: %q", r.Header.Get("accept"))
		}
		_, _ = w.Write([]byte(`{"player":[{"id":"1413","name":"Virat Kohli","teamName":"India"}]}`))
	}, resilience.BreakerConfig{})

	hits, ok := client.SearchPlayer(context.Background(), "Virat Kohli")
	if !ok {
		t.Fatalf("expected data")
	}
	if len(hits) != 1 || hits[0].ID != 1413 || hits[0].Name != "Virat Kohli" {
		t.Fatalf("unexpected hits: %+v", hits)
	}
}

func TestClient_NonOKIsNoData(t *testing.T) {
	t.Parallel()

	client, capture := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"bad key secret-key"}`))
	}, resilience.BreakerConfig{})

	if _, ok := client.LiveMatches(context.Background()); ok {
		t.Fatalf("expected no data on 403")
	}
	logged := capture.String()
	if !strings.Contains(logged, "cricbuzz request failed") {
		t.Fatalf("expected failure to be logged, got %q", logged)
	}
	if strings.Contains(logged, "secret-key") {
		t.Fatalf("api key leaked into log: %q", logged)
	}
}

func TestClient_LogsToContextLogger(t *testing.T) {
	t.Parallel()

	client, own := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}, resilience.BreakerConfig{})

	runLog, capture := logging.NewNop().Tee(logging.LevelInfo)
	defer capture.Release()
	ctx := logging.NewContext(context.Background(), runLog)

	if _, ok := client.Scorecard(ctx, 42); ok {
		t.Fatalf("expected no data on 429")
	}
	if !strings.Contains(capture.String(), "cricbuzz request failed") {
		t.Fatalf("run log missing client warning: %q", capture.String())
	}
	if own.String() != "" {
		t.Fatalf("expected context logger to take precedence, client logger got %q", own.String())
	}
}

func TestNewClient_DoesNotMutateSharedHTTPClient(t *testing.T) {
	shared := &http.Client{}
	client := NewClient(ClientConfig{HTTPClient: shared, Timeout: time.Second})

	if shared.Timeout != 0 {
		t.Fatalf("caller's http client was mutated: timeout=%s", shared.Timeout)
	}
	if client.httpClient == shared || client.httpClient.Timeout != defaultTimeout {
		t.Fatalf("expected a private copy with default timeout, got %+v", client.httpClient)
	}
}

func TestClient_DecodeErrorIsNoData(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}, resilience.BreakerConfig{})

	if _, ok := client.RecentMatches(context.Background()); ok {
		t.Fatalf("expected no data on decode error")
	}
}

func TestClient_CircuitBreakerStopsCalls(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, resilience.BreakerConfig{Enabled: true, FailureThreshold: 2, OpenTimeout: time.Hour})

	for i := 0; i < 4; i++ {
		if _, ok := client.Scorecard(context.Background(), 42); ok {
			t.Fatalf("expected no data")
		}
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected breaker to stop after 2 calls, got %d", got)
	}
}

func TestClient_FetchLiveMatches(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/matches/v1/live" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"typeMatches":[{"seriesMatches":[
			{"seriesAdWrapper":{"matches":[
				{"matchInfo":{"matchId":101,"team1":{"teamName":"India"},"team2":{"teamName":"England"},"status":"England won by 3 runs","startDate":"1709285400000"}},
				"bad"
			]}},
			{"adDetail":{}}
		]}]}`))
	}, resilience.BreakerConfig{})

	items, ok := client.FetchLiveMatches(context.Background())
	if !ok {
		t.Fatalf("expected data")
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(items))
	}
	if items[0].Err != nil || items[0].Match.ProviderID != 101 || items[0].Match.Winner != "England" {
		t.Fatalf("unexpected first entry: %+v", items[0])
	}
	if items[1].Err == nil {
		t.Fatalf("expected malformed second entry")
	}
}

func TestClient_FetchPlayerAndScorecard(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/stats/v1/player/1413":
			_, _ = w.Write([]byte(`{"name":"Virat Kohli","role":"Batsman","bat":"Right Handed Bat"}`))
		case "/mcenter/v1/101/scard":
			_, _ = w.Write([]byte(`{"scorecard":[{"inningsId":1,"batteamname":"India","batsman":[{"name":"Kohli","runs":50}]}]}`))
		case "/mcenter/v1/102/scard":
			_, _ = w.Write([]byte(`{"matchHeader":{}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}, resilience.BreakerConfig{})

	hit := usecase.ExternalPlayerHit{ID: 1413, Name: "Virat Kohli", TeamName: "India"}
	item, ok := client.FetchPlayer(context.Background(), hit)
	if !ok || item.Country != "India" || item.PlayingRole != "Batsman" {
		t.Fatalf("unexpected player: %+v ok=%v", item, ok)
	}

	card, ok := client.FetchScorecard(context.Background(), 101, "T20")
	if !ok || len(card.Batting) != 1 || card.Format != "T20" {
		t.Fatalf("unexpected scorecard: %+v ok=%v", card, ok)
	}
	if _, ok := client.FetchScorecard(context.Background(), 102, ""); ok {
		t.Fatalf("expected no data without scorecard list")
	}
}
