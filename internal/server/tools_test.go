package server

import (
	"context"
	"errors"
	"testing"

	"github.com/desertthunder/spotgate/internal/models"
	"github.com/desertthunder/spotgate/internal/shared"
)

func TestRegistry(t *testing.T) {
	t.Run("register and get", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register(Tool{Name: "ping", Usage: "ping"})

		tool, ok := reg.Get("ping")
		if !ok || tool.Name != "ping" {
			t.Error("expected registered tool")
		}
		if _, ok := reg.Get("missing"); ok {
			t.Error("expected miss for unknown tool")
		}
	})

	t.Run("list is sorted", func(t *testing.T) {
		reg := NewRegistry()
		reg.Register(Tool{Name: "zebra"})
		reg.Register(Tool{Name: "alpha"})
		reg.Register(Tool{Name: "mango"})

		tools := reg.List()
		if len(tools) != 3 {
			t.Fatalf("expected 3 tools, got %d", len(tools))
		}
		if tools[0].Name != "alpha" || tools[2].Name != "zebra" {
			t.Errorf("expected sorted order, got %v", tools)
		}
	})

	t.Run("duplicate registration panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("expected panic on duplicate registration")
			}
		}()
		reg := NewRegistry()
		reg.Register(Tool{Name: "dup"})
		reg.Register(Tool{Name: "dup"})
	})
}

func TestParams(t *testing.T) {
	t.Run("required string", func(t *testing.T) {
		p := Params{"query": "hello"}
		if s, err := p.RequiredString("query"); err != nil || s != "hello" {
			t.Errorf("expected hello, got %q (%v)", s, err)
		}
		if _, err := p.RequiredString("missing"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("ints arrive as float64", func(t *testing.T) {
		p := Params{"limit": 25.0}
		if got := p.Int("limit", 20); got != 25 {
			t.Errorf("expected 25, got %d", got)
		}
		if got := p.Int("offset", 20); got != 20 {
			t.Errorf("expected default 20, got %d", got)
		}
		if n, err := p.RequiredInt("limit"); err != nil || n != 25 {
			t.Errorf("expected 25, got %d (%v)", n, err)
		}
		if _, err := p.RequiredInt("missing"); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("id list accepts comma string", func(t *testing.T) {
		p := Params{"ids": "a, b ,c,,d"}
		ids, err := p.IDList("ids")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		want := []string{"a", "b", "c", "d"}
		if len(ids) != len(want) {
			t.Fatalf("expected %d ids, got %d", len(want), len(ids))
		}
		for i := range want {
			if ids[i] != want[i] {
				t.Errorf("id %d: expected %q, got %q", i, want[i], ids[i])
			}
		}
	})

	t.Run("id list accepts JSON array", func(t *testing.T) {
		p := Params{"ids": []any{"a", "b"}}
		ids, err := p.IDList("ids")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(ids) != 2 || ids[0] != "a" {
			t.Errorf("unexpected ids: %v", ids)
		}
	})

	t.Run("id list rejects non strings", func(t *testing.T) {
		p := Params{"ids": []any{"a", 7.0}}
		if _, err := p.IDList("ids"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("absent id list is nil", func(t *testing.T) {
		ids, err := Params{}.IDList("ids")
		if err != nil || ids != nil {
			t.Errorf("expected nil, got %v (%v)", ids, err)
		}
	})

	t.Run("format defaults to compact", func(t *testing.T) {
		f, err := Params{}.Format()
		if err != nil || f != models.FormatCompact {
			t.Errorf("expected compact default, got %v (%v)", f, err)
		}
	})

	t.Run("invalid format fails", func(t *testing.T) {
		_, err := Params{"format": "verbose"}.Format()
		if !errors.Is(err, shared.ErrInvalidFormat) {
			t.Errorf("expected ErrInvalidFormat, got %v", err)
		}
	})
}

func TestToolFuncSignature(t *testing.T) {
	tool := Tool{
		Name: "echo",
		Handler: func(ctx context.Context, req Request) (any, error) {
			return req.Params.String("msg"), nil
		},
	}

	out, err := tool.Handler(context.Background(), Request{Params: Params{"msg": "hi"}})
	if err != nil || out != "hi" {
		t.Errorf("expected hi, got %v (%v)", out, err)
	}
}
