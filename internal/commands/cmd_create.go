package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"catalogctl/internal/core/catalog"
	"catalogctl/internal/printer"
)

type CreateCmd struct {
	flags *Flags

	draft  catalog.Draft
	images []string
}

// NewCreateCmd creates a new create command
func NewCreateCmd(flags *Flags) *CreateCmd {
	return &CreateCmd{flags: flags}
}

// Register adds the create command to the application
func (cmd *CreateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "create",
		Usage:       "Create a product",
		UsageText:   "catalogctl create --name <name> --price <price> [options]",
		Description: "Creates a product from flag values and prints the assigned id.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "name",
				Usage:       "product name",
				Required:    true,
				Destination: &cmd.draft.Name,
			},
			&cli.StringFlag{
				Name:        "description",
				Aliases:     []string{"d"},
				Usage:       "product description (markdown)",
				Destination: &cmd.draft.Description,
			},
			&cli.FloatFlag{
				Name:        "price",
				Usage:       "product price",
				Required:    true,
				Destination: &cmd.draft.Price,
			},
			&cli.IntFlag{
				Name:  "stock",
				Usage: "initial stock count",
			},
			&cli.StringFlag{
				Name:        "category",
				Usage:       "category name",
				Destination: &cmd.draft.Category,
			},
			&cli.StringSliceFlag{
				Name:        "image",
				Usage:       "image URL (repeatable)",
				Destination: &cmd.images,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *CreateCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	cmd.draft.Stock = int(c.Int("stock"))
	cmd.draft.Images = cmd.images

	if err := cmd.draft.Validate(); err != nil {
		return err
	}

	creds, err := cmd.flags.credentials()
	if err != nil {
		return err
	}

	product, err := cmd.flags.Gateway.CreateProduct(ctx, creds, cmd.draft)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}

	p.Successf("Created product %d (%s)", product.ID, product.Name)
	return nil
}
