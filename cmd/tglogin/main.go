// Command tglogin provisions the Telegram session file interactively.
// The backend itself never authenticates; run this once before starting it.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/gotd/td/telegram"
	"github.com/gotd/td/telegram/auth"
	"github.com/gotd/td/tg"
	"github.com/gotd/td/tgerr"

	"github.com/Aldi0091/thinkone-news-backend/config"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/logger"
	tginfra "github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)

	storage, err := tginfra.NewFileSessionStorage(cfg.Telegram.SessionFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create session storage")
	}

	client := telegram.NewClient(cfg.Telegram.APIID, cfg.Telegram.APIHash, telegram.Options{
		SessionStorage: storage,
	})

	ctx := context.Background()

	err = client.Run(ctx, func(ctx context.Context) error {
		status, err := client.Auth().Status(ctx)
		if err != nil {
			return fmt.Errorf("failed to check auth status: %w", err)
		}

		if !status.Authorized {
			phone, err := prompt("Enter phone number (international format): ")
			if err != nil {
				return err
			}

			flow := auth.NewFlow(
				auth.Constant(
					phone,
					"",
					auth.CodeAuthenticatorFunc(func(ctx context.Context, sentCode *tg.AuthSentCode) (string, error) {
						return prompt("Enter authentication code: ")
					}),
				),
				auth.SendCodeOptions{},
			)

			if err := client.Auth().IfNecessary(ctx, flow); err != nil {
				if !tgerr.Is(err, "SESSION_PASSWORD_NEEDED") {
					return fmt.Errorf("authentication failed: %w", err)
				}

				log.Info().Msg("2FA is enabled, requesting password")
				password, err := prompt("Enter 2FA password: ")
				if err != nil {
					return err
				}
				if _, err := client.Auth().Password(ctx, password); err != nil {
					return fmt.Errorf("2FA authentication failed: %w", err)
				}
			}
		}

		self, err := client.Self(ctx)
		if err != nil {
			return fmt.Errorf("failed to fetch self: %w", err)
		}

		log.Info().
			Str("first_name", self.FirstName).
			Str("username", self.Username).
			Str("session_file", storage.GetFilePath()).
			Msg("Session authorized and saved")

		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Login failed")
	}
}

// prompt reads a single trimmed line from stdin
func prompt(label string) (string, error) {
	fmt.Print(label)

	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}
