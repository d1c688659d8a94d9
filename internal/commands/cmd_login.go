package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"catalogctl/internal/core/session"
	"catalogctl/internal/printer"
	"catalogctl/internal/tui"
)

type LoginCmd struct {
	flags *Flags
}

// NewLoginCmd creates a new login command
func NewLoginCmd(flags *Flags) *LoginCmd {
	return &LoginCmd{flags: flags}
}

// Register adds the login command to the application
func (cmd *LoginCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "login",
		Usage:       "Authenticate with the catalog API",
		UsageText:   "catalogctl login <email>",
		Description: "Exchanges an email for an API token and saves the session.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "email",
				Usage: "email to authenticate as (alternative to the positional argument)",
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LoginCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	email := c.Args().First()
	if email == "" {
		email = c.String("email")
	}
	if email == "" {
		return fmt.Errorf("usage: catalogctl login <email>")
	}
	if err := tui.ValidateEmail(email); err != nil {
		return err
	}

	creds, err := cmd.flags.Gateway.Login(ctx, email)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	sess := session.Session{
		Token:     creds.Token,
		Email:     creds.Email,
		CreatedAt: time.Now(),
	}
	if err := cmd.flags.Sessions.Save(sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	p.Successf("Logged in as %s", email)
	return nil
}
