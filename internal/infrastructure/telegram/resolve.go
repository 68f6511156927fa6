package telegram

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"

	"github.com/Aldi0091/thinkone-news-backend/internal/domain"
)

// normalizeIdentifier strips surrounding whitespace, a leading t.me link
// prefix and a leading @ from a user-supplied channel identifier
func normalizeIdentifier(identifier string) string {
	s := strings.TrimSpace(identifier)
	s = strings.TrimPrefix(s, "https://t.me/")
	s = strings.TrimPrefix(s, "@")
	return s
}

// ResolveChannel maps a user-supplied identifier (handle, t.me URL fragment
// or numeric id) to a resolved channel. Lookup is attempted as a username
// first; on a bad-handle failure the identifier is retried as a numeric id.
// Every failure, including transport and auth errors, is wrapped into
// *domain.ChannelResolutionError so callers can catalog per-channel failures
// uniformly.
func (c *Client) ResolveChannel(ctx context.Context, identifier string) (*domain.Channel, error) {
	api, err := c.apiClient()
	if err != nil {
		return nil, domain.NewChannelResolutionError(identifier, err)
	}

	if err := c.waitRate(ctx); err != nil {
		return nil, domain.NewChannelResolutionError(identifier, err)
	}

	normalized := normalizeIdentifier(identifier)

	resolved, err := api.ContactsResolveUsername(ctx, normalized)
	if err == nil {
		ch, convErr := channelFromResolvedPeer(resolved)
		if convErr != nil {
			return nil, domain.NewChannelResolutionError(identifier, convErr)
		}
		return ch, nil
	}

	// A bad handle may still be a numeric id
	if tgerr.Is(err, "USERNAME_INVALID", "USERNAME_NOT_OCCUPIED") {
		id, parseErr := strconv.ParseInt(normalized, 10, 64)
		if parseErr != nil {
			return nil, domain.NewChannelResolutionError(identifier, err)
		}

		ch, idErr := c.resolveByID(ctx, api, id)
		if idErr != nil {
			return nil, domain.NewChannelResolutionError(identifier, idErr)
		}
		return ch, nil
	}

	c.logger.Error().Err(err).Str("identifier", identifier).Msg("failed to resolve channel")
	return nil, domain.NewChannelResolutionError(identifier, err)
}

// ResolveChannelByID resolves a channel purely by numeric id. This is the
// media proxy path; username lookup is never attempted.
func (c *Client) ResolveChannelByID(ctx context.Context, channelID int64) (*domain.Channel, error) {
	identifier := strconv.FormatInt(channelID, 10)

	api, err := c.apiClient()
	if err != nil {
		return nil, domain.NewChannelResolutionError(identifier, err)
	}

	if err := c.waitRate(ctx); err != nil {
		return nil, domain.NewChannelResolutionError(identifier, err)
	}

	ch, err := c.resolveByID(ctx, api, channelID)
	if err != nil {
		return nil, domain.NewChannelResolutionError(identifier, err)
	}
	return ch, nil
}

// resolveByID looks a channel up through channels.getChannels. The zero
// access hash is accepted by the backend for channels this session has
// already seen, which mirrors how the session's entity cache behaves.
func (c *Client) resolveByID(ctx context.Context, api *tg.Client, channelID int64) (*domain.Channel, error) {
	result, err := api.ChannelsGetChannels(ctx, []tg.InputChannelClass{
		&tg.InputChannel{ChannelID: channelID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get channel by id: %w", err)
	}

	for _, chat := range result.GetChats() {
		if channel, ok := chat.(*tg.Channel); ok && channel.ID == channelID {
			return &domain.Channel{
				ID:         channel.ID,
				AccessHash: channel.AccessHash,
				Title:      channel.Title,
				Username:   channel.Username,
			}, nil
		}
	}

	return nil, fmt.Errorf("no channel with id %d", channelID)
}

// channelFromResolvedPeer extracts a channel or personal peer from a
// contacts.resolveUsername result
func channelFromResolvedPeer(resolved *tg.ContactsResolvedPeer) (*domain.Channel, error) {
	for _, chat := range resolved.Chats {
		if channel, ok := chat.(*tg.Channel); ok {
			return &domain.Channel{
				ID:         channel.ID,
				AccessHash: channel.AccessHash,
				Title:      channel.Title,
				Username:   channel.Username,
			}, nil
		}
	}

	for _, user := range resolved.Users {
		if u, ok := user.(*tg.User); ok {
			return &domain.Channel{
				ID:         u.ID,
				AccessHash: u.AccessHash,
				FirstName:  u.FirstName,
				Username:   u.Username,
				IsUser:     true,
			}, nil
		}
	}

	return nil, fmt.Errorf("resolved peer is neither a channel nor a user")
}

// inputPeer builds the wire peer for a resolved channel
func inputPeer(ch *domain.Channel) tg.InputPeerClass {
	if ch.IsUser {
		return &tg.InputPeerUser{UserID: ch.ID, AccessHash: ch.AccessHash}
	}
	return &tg.InputPeerChannel{ChannelID: ch.ID, AccessHash: ch.AccessHash}
}
