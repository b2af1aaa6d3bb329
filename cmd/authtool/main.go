package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gamecatalog/backend/internal/config"
	"gamecatalog/backend/internal/logging"
	"gamecatalog/backend/pkg/jwt"

	"github.com/urfave/cli/v2"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		logging.Fatal().Err(err).Msg("authtool failed")
	}
}

// newApp builds the credential helper for the write guard. It mints bearer
// tokens signed with JWT_SECRET and hashes API keys for API_KEY_HASH.
func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "authtool",
		Usage:     "issue credentials for the catalog write guard",
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			{
				Name:      "token",
				Usage:     "sign a bearer token for SUBJECT with JWT_SECRET",
				ArgsUsage: "SUBJECT",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "ttl", Value: 24 * time.Hour, Usage: "token lifetime"},
					&cli.StringFlag{Name: "secret", EnvVars: []string{"JWT_SECRET"}, Usage: "signing secret, read from .env when unset"},
				},
				Action: func(c *cli.Context) error {
					subject := c.Args().First()
					if subject == "" {
						return errors.New("token: SUBJECT is required")
					}

					secret := c.String("secret")
					if secret == "" {
						cfg, err := config.LoadConfig()
						if err != nil {
							return err
						}
						secret = cfg.JWTSecret
					}
					if secret == "" {
						return errors.New("token: JWT_SECRET is not set")
					}

					token, err := jwt.GenerateToken([]byte(secret), subject, c.Duration("ttl"))
					if err != nil {
						return fmt.Errorf("sign token: %w", err)
					}
					_, err = fmt.Fprintln(c.App.Writer, token)
					return err
				},
			},
			{
				Name:      "hash",
				Usage:     "bcrypt-hash KEY for API_KEY_HASH",
				ArgsUsage: "KEY",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "cost", Value: bcrypt.DefaultCost, Usage: "bcrypt cost"},
				},
				Action: func(c *cli.Context) error {
					key := c.Args().First()
					if key == "" {
						return errors.New("hash: KEY is required")
					}

					hash, err := bcrypt.GenerateFromPassword([]byte(key), c.Int("cost"))
					if err != nil {
						return fmt.Errorf("hash key: %w", err)
					}
					_, err = fmt.Fprintln(c.App.Writer, string(hash))
					return err
				},
			},
		},
	}
}
