package business

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aldi0091/thinkone-news-backend/config"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/news/deps"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/news/entities"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/metrics"
)

// Sort is the ordering applied to the merged page
type Sort string

const (
	SortNewest Sort = "newest"
	SortOldest Sort = "oldest"
	SortSource Sort = "source"
)

// ParseSort validates a sort query value, defaulting to newest for the
// empty string
func ParseSort(s string) (Sort, bool) {
	switch Sort(s) {
	case "":
		return SortNewest, true
	case SortNewest, SortOldest, SortSource:
		return Sort(s), true
	default:
		return "", false
	}
}

// UseCase implements the news aggregation business logic
type UseCase struct {
	gateway      deps.TelegramGateway
	fetchTimeout time.Duration
	logger       zerolog.Logger
	metrics      *metrics.Metrics
}

// NewUseCase creates a new news use case
func NewUseCase(
	gateway deps.TelegramGateway,
	newsCfg *config.NewsConfig,
	logger zerolog.Logger,
	m *metrics.Metrics,
) *UseCase {
	return &UseCase{
		gateway:      gateway,
		fetchTimeout: newsCfg.FetchTimeout,
		logger:       logger.With().Str("component", "news_usecase").Logger(),
		metrics:      m,
	}
}

// fetchResult is the per-channel task outcome: either zero-or-more
// normalized items or one error, never both
type fetchResult struct {
	channel string
	items   []entities.NewsItem
	err     error
}

// List resolves and fetches every requested channel concurrently, merges
// the normalized items, sorts and truncates them to limit, and computes the
// pagination cursor. Per-channel failures accumulate into the returned
// error list and never fail the request; a request where all channels fail
// still succeeds with an empty page.
func (u *UseCase) List(ctx context.Context, channels []string, limit, offsetID int, sortMode Sort) (entities.NewsList, []entities.ChannelError) {
	start := time.Now()

	if len(channels) == 0 {
		return entities.NewsList{Total: 0, Items: []entities.NewsItem{}}, nil
	}

	// Fan out: one task per channel, each settling into its own slot so no
	// shared state is mutated concurrently
	results := make([]fetchResult, len(channels))
	var wg sync.WaitGroup

	for i, channel := range channels {
		wg.Add(1)
		go func(slot int, name string) {
			defer wg.Done()
			results[slot] = u.fetchOne(ctx, name, limit, offsetID)
		}(i, channel)
	}

	wg.Wait()

	var items []entities.NewsItem
	var chErrors []entities.ChannelError
	for _, res := range results {
		if res.err != nil {
			u.logger.Warn().
				Str("channel", res.channel).
				Err(res.err).
				Msg("channel failed")
			u.metrics.RecordChannelFetchError(errorReason(res.err))
			chErrors = append(chErrors, entities.ChannelError{
				Channel: res.channel,
				Reason:  res.err.Error(),
			})
			continue
		}
		items = append(items, res.items...)
	}

	sortItems(items, sortMode)

	// The limit caps the merged page, not each channel
	if len(items) > limit {
		items = items[:limit]
	}
	if items == nil {
		items = []entities.NewsItem{}
	}

	list := entities.NewsList{
		Total:      len(items),
		Items:      items,
		NextOffset: nextOffset(items),
	}

	u.metrics.RecordNewsRequest(len(items), time.Since(start).Seconds())
	u.logger.Debug().
		Int("channels", len(channels)).
		Int("items", len(items)).
		Int("failed_channels", len(chErrors)).
		Msg("news listing completed")

	return list, chErrors
}

// fetchOne resolves one channel and fetches a page of its messages under
// the per-channel deadline. It never panics past this boundary: any failure
// becomes the task's error.
func (u *UseCase) fetchOne(ctx context.Context, channel string, limit, offsetID int) fetchResult {
	if u.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.fetchTimeout)
		defer cancel()
	}

	ch, err := u.gateway.ResolveChannel(ctx, channel)
	if err != nil {
		return fetchResult{channel: channel, err: err}
	}

	messages, err := u.gateway.GetChannelMessages(ctx, ch, limit, offsetID)
	if err != nil {
		return fetchResult{channel: channel, err: err}
	}

	items := make([]entities.NewsItem, 0, len(messages))
	for _, msg := range messages {
		if item := normalizeMessage(msg, ch); item != nil {
			items = append(items, *item)
		}
	}

	return fetchResult{channel: channel, items: items}
}

// sortItems orders the merged sequence in place
func sortItems(items []entities.NewsItem, mode Sort) {
	switch mode {
	case SortOldest:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PublishedAt.Before(items[j].PublishedAt)
		})
	case SortSource:
		// Sources grouped alphabetically-descending (case-insensitive),
		// newest first within a source
		sort.SliceStable(items, func(i, j int) bool {
			si, sj := strings.ToLower(items[i].Source), strings.ToLower(items[j].Source)
			if si != sj {
				return si > sj
			}
			return items[i].PublishedAt.After(items[j].PublishedAt)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].PublishedAt.After(items[j].PublishedAt)
		})
	}
}

// nextOffset is the minimum numeric item id in the page, used as the next
// request's upper-bound cursor. Absent when the page is empty or an id is
// not integer-parsable.
func nextOffset(items []entities.NewsItem) *int {
	if len(items) == 0 {
		return nil
	}

	min := 0
	for i, item := range items {
		id, err := strconv.Atoi(item.ID)
		if err != nil {
			return nil
		}
		if i == 0 || id < min {
			min = id
		}
	}

	return &min
}

// errorReason buckets a per-channel failure for metrics
func errorReason(err error) string {
	var resolution *domain.ChannelResolutionError
	switch {
	case errors.As(err, &resolution):
		return "resolution_failed"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	default:
		return "fetch_failed"
	}
}
