package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/urfave/cli/v3"

	"catalogctl/internal/printer"
)

type RmCmd struct {
	flags *Flags
}

// NewRmCmd creates a new rm command
func NewRmCmd(flags *Flags) *RmCmd {
	return &RmCmd{flags: flags}
}

// Register adds the rm command to the application
func (cmd *RmCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "rm",
		Usage:       "Delete a product",
		UsageText:   "catalogctl rm <id>... [--yes]",
		Description: "Deletes one or more products by id after confirmation.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "yes",
				Aliases: []string{"y"},
				Usage:   "skip the confirmation prompt",
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *RmCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	args := c.Args().Slice()
	if len(args) == 0 {
		return fmt.Errorf("usage: catalogctl rm <id>...")
	}

	if !c.Bool("yes") {
		confirmed := false
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title(fmt.Sprintf("Delete %d product(s)? This cannot be undone.", len(args))).
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			return fmt.Errorf("confirm: %w", err)
		}
		if !confirmed {
			p.Infof("Aborted")
			return nil
		}
	}

	creds, err := cmd.flags.credentials()
	if err != nil {
		return err
	}

	for _, arg := range args {
		id, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid product id %q", arg)
		}

		if err := cmd.flags.Gateway.DeleteProduct(ctx, creds, id); err != nil {
			return fmt.Errorf("delete product %d: %w", id, err)
		}
		p.Successf("Deleted product %d", id)
	}

	return nil
}
