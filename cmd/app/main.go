// Package main provides the entry point for the application with CLI commands.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/katochrasik794/solitaire-markets-crm-backend-sub003/cmd/app/commands"
)

func main() {
	cmd := &cli.Command{
		Name:    "app",
		Usage:   "Credential-protection toolbox for the CRM backend",
		Version: "1.0.0",
		Commands: []*cli.Command{
			{
				Name:  "hash-password",
				Usage: "Hash a password with the configured one-way algorithm",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password to hash",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunHashPassword(ctx, cmd.String("password"), commands.DefaultIO())
				},
			},
			{
				Name:  "verify-password",
				Usage: "Verify a password against a stored hash",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password to verify",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "hash",
						Usage:    "Stored hash to verify against",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunVerifyPassword(
						ctx,
						cmd.String("password"),
						cmd.String("hash"),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "encrypt",
				Usage: "Encrypt a credential into the iv:tag:ciphertext wire form",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Usage:    "Credential value to encrypt",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunEncrypt(ctx, cmd.String("value"), commands.DefaultIO())
				},
			},
			{
				Name:  "decrypt",
				Usage: "Decrypt a stored credential value",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "value",
						Aliases:  []string{"v"},
						Usage:    "Encrypted value to decrypt",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunDecrypt(ctx, cmd.String("value"), commands.DefaultIO())
				},
			},
			{
				Name:  "generate-key",
				Usage: "Generate a fresh 256-bit credential encryption key",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateKey(commands.DefaultIO())
				},
			},
			{
				Name:  "generate-token",
				Usage: "Generate a password-reset token",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateToken(ctx, commands.DefaultIO())
				},
			},
			{
				Name:  "generate-password",
				Usage: "Generate a temporary password",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "length",
						Aliases: []string{"l"},
						Value:   0,
						Usage:   "Password length (default from configuration)",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGeneratePassword(
						ctx,
						int(cmd.Int("length")),
						commands.DefaultIO(),
					)
				},
			},
			{
				Name:  "generate-otp",
				Usage: "Generate a 6-digit one-time code",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunGenerateOTP(ctx, commands.DefaultIO())
				},
			},
			{
				Name:  "validate-email",
				Usage: "Validate an email address",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Email address to validate",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunValidateEmail(cmd.String("email"), commands.DefaultIO())
				},
			},
			{
				Name:  "validate-password",
				Usage: "Check a password against the strength policy",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Password to check",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunValidatePassword(cmd.String("password"), commands.DefaultIO())
				},
			},
			{
				Name:  "sanitize",
				Usage: "Strip SQL keywords, dangerous sequences, and HTML tags from input",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "Text to sanitize",
						Required: true,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunSanitize(cmd.String("input"), commands.DefaultIO())
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.Any("error", err))
		os.Exit(1)
	}
}
