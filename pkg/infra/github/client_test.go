package github_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	githubinfra "github.com/m-mizutani/relnotes/pkg/infra/github"
)

func newTestServer(t *testing.T) (*httptest.Server, *map[string]string) {
	t.Helper()
	updated := map[string]string{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /repos/octue/conventional-commits/pulls/40", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"number":   40,
			"html_url": "https://github.com/octue/conventional-commits/pull/40",
			"body":     "BLAH BLAH BLAH",
		})
	})
	mux.HandleFunc("PATCH /repos/octue/conventional-commits/pulls/40", func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var payload struct {
			Body string `json:"body"`
		}
		if err := json.Unmarshal(raw, &payload); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		updated["body"] = payload.Body
		updated["authorization"] = r.Header.Get("Authorization")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"number": 40, "body": payload.Body})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &updated
}

func TestClient_PullRequest(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	client, err := githubinfra.New("octue", "conventional-commits", 40,
		githubinfra.WithBaseURL(server.URL),
	)
	gt.NoError(t, err)

	pr, err := client.PullRequest(ctx)
	gt.NoError(t, err)
	gt.Value(t, pr.Number).Equal(40)
	gt.Value(t, pr.HTMLURL).Equal("https://github.com/octue/conventional-commits/pull/40")
	gt.Value(t, pr.Body).Equal("BLAH BLAH BLAH")
}

func TestClient_PullRequest_NotFound(t *testing.T) {
	ctx := context.Background()
	server, _ := newTestServer(t)

	client, err := githubinfra.New("octue", "conventional-commits", 99,
		githubinfra.WithBaseURL(server.URL),
	)
	gt.NoError(t, err)

	_, err = client.PullRequest(ctx)
	gt.Error(t, err)
	gt.String(t, err.Error()).Contains("failed to get pull request")
}

func TestClient_UpdateDescription(t *testing.T) {
	ctx := context.Background()
	server, updated := newTestServer(t)

	client, err := githubinfra.New("octue", "conventional-commits", 40,
		githubinfra.WithBaseURL(server.URL),
		githubinfra.WithToken("test-token"),
	)
	gt.NoError(t, err)

	gt.NoError(t, client.UpdateDescription(ctx, "NEW NOTES"))
	gt.Value(t, (*updated)["body"]).Equal("NEW NOTES")
	gt.Value(t, (*updated)["authorization"]).Equal("Bearer test-token")
}

func TestClient_InvalidBaseURL(t *testing.T) {
	_, err := githubinfra.New("octue", "conventional-commits", 40,
		githubinfra.WithBaseURL("://not-a-url"),
	)
	gt.Error(t, err)
}
