package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"

	"catalogctl/internal/core/catalog"
	"catalogctl/internal/printer"
)

type EditCmd struct {
	flags *Flags
}

// NewEditCmd creates a new edit command
func NewEditCmd(flags *Flags) *EditCmd {
	return &EditCmd{flags: flags}
}

// Register adds the edit command to the application
func (cmd *EditCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "edit",
		Usage:       "Update a product",
		UsageText:   "catalogctl edit <id> [options]",
		Description: "Fetches a product, applies the given flag values, and writes it back. Unset flags keep their current value.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "name",
				Usage: "product name",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "product description (markdown)",
			},
			&cli.FloatFlag{
				Name:  "price",
				Usage: "product price",
			},
			&cli.IntFlag{
				Name:  "stock",
				Usage: "stock count",
			},
			&cli.StringFlag{
				Name:  "category",
				Usage: "category name",
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *EditCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	idArg := c.Args().First()
	if idArg == "" {
		return fmt.Errorf("usage: catalogctl edit <id> [options]")
	}
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", idArg)
	}

	creds, err := cmd.flags.credentials()
	if err != nil {
		return err
	}

	current, err := cmd.flags.Gateway.GetProduct(ctx, creds, id)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}

	draft := catalog.Draft{
		Name:        current.Name,
		Description: current.Description,
		Price:       current.Price,
		Stock:       current.Stock,
		Category:    current.Category.Name,
		Images:      current.Images,
	}

	if c.IsSet("name") {
		draft.Name = c.String("name")
	}
	if c.IsSet("description") {
		draft.Description = c.String("description")
	}
	if c.IsSet("price") {
		draft.Price = c.Float("price")
	}
	if c.IsSet("stock") {
		draft.Stock = int(c.Int("stock"))
	}
	if c.IsSet("category") {
		draft.Category = c.String("category")
	}

	if err := draft.Validate(); err != nil {
		return err
	}

	updated, err := cmd.flags.Gateway.UpdateProduct(ctx, creds, id, draft)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}

	p.Successf("Updated product %d (%s)", updated.ID, updated.Name)
	return nil
}
