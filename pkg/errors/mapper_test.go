package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Aldi0091/thinkone-news-backend/internal/domain"
)

func TestMapErrorToHTTP(t *testing.T) {
	mapper := NewMapper(zerolog.Nop())

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, fasthttp.StatusOK},
		{"resolution", domain.NewChannelResolutionError("badchan", stderrors.New("not found")), fasthttp.StatusBadRequest},
		{"wrapped resolution", fmt.Errorf("listing: %w", domain.NewChannelResolutionError("x", stderrors.New("boom"))), fasthttp.StatusBadRequest},
		{"media not found", domain.ErrMediaNotFound, fasthttp.StatusNotFound},
		{"not connected", domain.ErrNotConnected, fasthttp.StatusServiceUnavailable},
		{"validation", NewValidationError("bad limit"), fasthttp.StatusBadRequest},
		{"not found", NewNotFoundError("nope"), fasthttp.StatusNotFound},
		{"service unavailable", NewServiceUnavailableError("down"), fasthttp.StatusServiceUnavailable},
		{"internal", NewInternalError("boom"), fasthttp.StatusInternalServerError},
		{"unknown", stderrors.New("mystery"), fasthttp.StatusInternalServerError},
	}

	for _, tc := range cases {
		status, _ := mapper.MapErrorToHTTP(tc.err)
		if status != tc.want {
			t.Errorf("%s: expected %d, got %d", tc.name, tc.want, status)
		}
	}
}

func TestMapErrorToHTTP_MessageCarriesIdentifier(t *testing.T) {
	mapper := NewMapper(zerolog.Nop())

	_, msg := mapper.MapErrorToHTTP(domain.NewChannelResolutionError("mychan", stderrors.New("gone")))
	if msg == "" {
		t.Fatal("Expected non-empty message")
	}
	if want := `cannot resolve channel "mychan": gone`; msg != want {
		t.Errorf("Expected %q, got %q", want, msg)
	}
}
