package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"catalogctl/internal/printer"
)

type LogoutCmd struct {
	flags *Flags
}

// NewLogoutCmd creates a new logout command
func NewLogoutCmd(flags *Flags) *LogoutCmd {
	return &LogoutCmd{flags: flags}
}

// Register adds the logout command to the application
func (cmd *LogoutCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "logout",
		Usage:       "Discard the saved session",
		UsageText:   "catalogctl logout",
		Description: "Removes the saved API token. Safe to run when not logged in.",
		Action:      cmd.run,
	})

	return app
}

func (cmd *LogoutCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	if err := cmd.flags.Sessions.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}

	p.Successf("Logged out")
	return nil
}
