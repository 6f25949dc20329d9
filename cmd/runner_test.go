package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/desertthunder/spotgate/internal/shared"
	"github.com/urfave/cli/v3"
)

func newTestApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "spotgate",
		Commands: r.register(),
	}
}

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("builds facade and validator when absent", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{})

			if runner.api == nil {
				t.Error("expected facade to be constructed")
			}
			if runner.validator == nil {
				t.Error("expected validator to be constructed")
			}
		})
	})

	t.Run("writeJSON", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writeJSON(map[string]string{"key": "value"}, false); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if got := output.String(); got != "{\"key\":\"value\"}\n" {
			t.Errorf("unexpected output: %q", got)
		}
	})
}

// testRunner wires a runner against a fake upstream so commands run end to end.
func testRunner(t *testing.T, upstream http.Handler) (*Runner, *bytes.Buffer) {
	t.Helper()

	srv := httptest.NewServer(upstream)
	t.Cleanup(srv.Close)

	config := shared.DefaultConfig()
	config.Spotify.BaseURL = srv.URL
	config.Spotify.TokenEndpoint = srv.URL + "/me"

	output := &bytes.Buffer{}
	return NewRunner(RunnerOpts{Config: config, Output: output}), output
}

func TestToolsCommand(t *testing.T) {
	runner, output := testRunner(t, http.NotFoundHandler())

	app := newTestApp(runner)
	if err := app.Run(context.Background(), []string{"spotgate", "tools"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := output.String()
	for _, name := range []string{"search", "get_playback", "add_playlist_tracks", "get_audio_features"} {
		if !strings.Contains(got, name) {
			t.Errorf("expected listing to include %q", name)
		}
	}
}

func TestCallCommand(t *testing.T) {
	upstream := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/me":
			w.Write([]byte(`{"id": "user1", "display_name": "User One"}`))
		case r.URL.Path == "/search":
			w.Write([]byte(`{"tracks": {"total": 1, "items": [
				{"id": "t1", "name": "Found", "uri": "spotify:track:t1", "href": "h"}
			]}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{}`))
		}
	})

	t.Run("invokes search end to end", func(t *testing.T) {
		runner, output := testRunner(t, upstream)

		app := newTestApp(runner)
		err := app.Run(context.Background(), []string{
			"spotgate", "call",
			"--token", "tok",
			"--params", `{"query": "found", "format": "minimal"}`,
			"search",
		})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got := output.String()
		if !strings.Contains(got, `"total_results": 1`) {
			t.Errorf("expected search response in output, got %s", got)
		}
		if !strings.Contains(got, "Found") {
			t.Errorf("expected track name in output, got %s", got)
		}
	})

	t.Run("missing token fails", func(t *testing.T) {
		runner, _ := testRunner(t, upstream)

		app := newTestApp(runner)
		err := app.Run(context.Background(), []string{"spotgate", "call", "search"})
		if err == nil {
			t.Fatal("expected error for missing token")
		}
	})

	t.Run("unknown tool fails", func(t *testing.T) {
		runner, _ := testRunner(t, upstream)

		app := newTestApp(runner)
		err := app.Run(context.Background(), []string{
			"spotgate", "call", "--token", "tok", "no_such_tool",
		})
		if err == nil {
			t.Fatal("expected error for unknown tool")
		}
	})

	t.Run("bad params JSON fails", func(t *testing.T) {
		runner, _ := testRunner(t, upstream)

		app := newTestApp(runner)
		err := app.Run(context.Background(), []string{
			"spotgate", "call", "--token", "tok", "--params", "{bad", "search",
		})
		if err == nil {
			t.Fatal("expected error for malformed params")
		}
	})
}

func TestSetupCommand(t *testing.T) {
	t.Run("creates config file", func(t *testing.T) {
		runner, output := testRunner(t, http.NotFoundHandler())
		path := filepath.Join(t.TempDir(), "config.toml")

		app := newTestApp(runner)
		if err := app.Run(context.Background(), []string{"spotgate", "setup", "--config", path}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected config file to exist: %v", err)
		}
		if !strings.Contains(output.String(), "Created") {
			t.Error("expected confirmation output")
		}
	})

	t.Run("refuses to overwrite", func(t *testing.T) {
		runner, _ := testRunner(t, http.NotFoundHandler())
		path := filepath.Join(t.TempDir(), "config.toml")
		if err := os.WriteFile(path, []byte("# existing"), 0644); err != nil {
			t.Fatal(err)
		}

		app := newTestApp(runner)
		if err := app.Run(context.Background(), []string{"spotgate", "setup", "--config", path}); err == nil {
			t.Error("expected error when config already exists")
		}
	})
}
