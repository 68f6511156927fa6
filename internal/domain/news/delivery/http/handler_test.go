package http

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Aldi0091/thinkone-news-backend/config"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/news/entities"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/news/usecase/business"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/metrics"
)

type fakeGateway struct {
	channels map[string]*domain.Channel
	messages map[int64][]domain.Message
}

func (f *fakeGateway) ResolveChannel(_ context.Context, identifier string) (*domain.Channel, error) {
	ch, ok := f.channels[identifier]
	if !ok {
		return nil, domain.NewChannelResolutionError(identifier, errors.New("no such channel"))
	}
	return ch, nil
}

func (f *fakeGateway) GetChannelMessages(_ context.Context, ch *domain.Channel, limit, offsetID int) ([]domain.Message, error) {
	msgs := f.messages[ch.ID]
	if limit < len(msgs) {
		msgs = msgs[:limit]
	}
	return msgs, nil
}

func newTestHandler(gw *fakeGateway, defaults []string) *Handler {
	newsCfg := &config.NewsConfig{
		DefaultChannels: defaults,
		FetchTimeout:    5 * time.Second,
	}
	uc := business.NewUseCase(gw, newsCfg, zerolog.Nop(), metrics.GetDefaultMetrics())
	return NewHandler(uc, newsCfg, zerolog.Nop())
}

func doRequest(handler fasthttp.RequestHandler, uri string) *fasthttp.RequestCtx {
	var req fasthttp.Request
	req.SetRequestURI(uri)
	req.Header.SetMethod(fasthttp.MethodGet)
	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	handler(ctx)
	return ctx
}

func TestHandleNewsReturnsItems(t *testing.T) {
	gw := &fakeGateway{
		channels: map[string]*domain.Channel{
			"technews": {ID: 100, Title: "Tech News", Username: "technews"},
		},
		messages: map[int64][]domain.Message{
			100: {
				{ID: 2, Text: "Second post", Date: time.Now().UTC()},
				{ID: 1, Text: "First post", Date: time.Now().UTC().Add(-time.Hour)},
			},
		},
	}
	handler := newTestHandler(gw, []string{"technews"})

	ctx := doRequest(handler.HandleNews, "/news")

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("Expected status 200, got %d", ctx.Response.StatusCode())
	}

	var list entities.NewsList
	if err := json.Unmarshal(ctx.Response.Body(), &list); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if list.Total != 2 {
		t.Errorf("Expected total 2, got %d", list.Total)
	}
	if len(ctx.Response.Header.Peek(errorsHeader)) != 0 {
		t.Errorf("Expected no %s header, got %q", errorsHeader, ctx.Response.Header.Peek(errorsHeader))
	}
}

func TestHandleNewsChannelsParamOverridesDefaults(t *testing.T) {
	gw := &fakeGateway{
		channels: map[string]*domain.Channel{
			"other": {ID: 200, Title: "Other", Username: "other"},
		},
		messages: map[int64][]domain.Message{
			200: {{ID: 1, Text: "Hello", Date: time.Now().UTC()}},
		},
	}
	handler := newTestHandler(gw, []string{"technews"})

	ctx := doRequest(handler.HandleNews, "/news?channels=other")

	var list entities.NewsList
	if err := json.Unmarshal(ctx.Response.Body(), &list); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("Expected total 1, got %d", list.Total)
	}
	if list.Items[0].Source != "Other" {
		t.Errorf("Expected source Other, got %q", list.Items[0].Source)
	}
}

func TestHandleNewsFailedChannelsHeader(t *testing.T) {
	gw := &fakeGateway{
		channels: map[string]*domain.Channel{
			"good": {ID: 100, Title: "Good", Username: "good"},
		},
		messages: map[int64][]domain.Message{
			100: {{ID: 1, Text: "Still here", Date: time.Now().UTC()}},
		},
	}
	handler := newTestHandler(gw, nil)

	ctx := doRequest(handler.HandleNews, "/news?channels=good,missing")

	if ctx.Response.StatusCode() != fasthttp.StatusOK {
		t.Fatalf("Expected status 200 on partial failure, got %d", ctx.Response.StatusCode())
	}

	header := string(ctx.Response.Header.Peek(errorsHeader))
	if !strings.HasPrefix(header, "missing:") {
		t.Errorf("Expected header naming the failed channel, got %q", header)
	}
	if !strings.Contains(header, "no such channel") {
		t.Errorf("Expected header to carry the failure reason, got %q", header)
	}

	var list entities.NewsList
	if err := json.Unmarshal(ctx.Response.Body(), &list); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if list.Total != 1 {
		t.Errorf("Expected surviving channel items, got total %d", list.Total)
	}
}

func TestHandleNewsValidation(t *testing.T) {
	handler := newTestHandler(&fakeGateway{}, nil)

	tests := []struct {
		name string
		uri  string
	}{
		{"limit not a number", "/news?limit=abc"},
		{"limit zero", "/news?limit=0"},
		{"limit too large", "/news?limit=1000"},
		{"negative offset", "/news?offset_id=-5"},
		{"offset not a number", "/news?offset_id=abc"},
		{"unknown sort", "/news?sort=sideways"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := doRequest(handler.HandleNews, tt.uri)
			if ctx.Response.StatusCode() != fasthttp.StatusBadRequest {
				t.Errorf("Expected status 400, got %d", ctx.Response.StatusCode())
			}
		})
	}
}

func TestHandleChannels(t *testing.T) {
	handler := newTestHandler(&fakeGateway{}, []string{"a", "b"})

	ctx := doRequest(handler.HandleChannels, "/channels")

	var resp ChannelsResponse
	if err := json.Unmarshal(ctx.Response.Body(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Channels) != 2 || resp.Channels[0] != "a" || resp.Channels[1] != "b" {
		t.Errorf("Unexpected channels: %v", resp.Channels)
	}
}

func TestHandleChannelsEmptyDefaults(t *testing.T) {
	handler := newTestHandler(&fakeGateway{}, nil)

	ctx := doRequest(handler.HandleChannels, "/channels")

	body := string(ctx.Response.Body())
	if body != `{"channels":[]}` {
		t.Errorf("Expected empty channels array, got %s", body)
	}
}
