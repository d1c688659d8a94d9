package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
)

type GetCmd struct {
	flags *Flags

	asJSON bool
}

// NewGetCmd creates a new get command
func NewGetCmd(flags *Flags) *GetCmd {
	return &GetCmd{flags: flags}
}

// Register adds the get command to the application
func (cmd *GetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "get",
		Usage:       "Show a single product",
		UsageText:   "catalogctl get <id>",
		Description: "Fetches one product by id and prints its details.",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "print the product as JSON",
				Destination: &cmd.asJSON,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *GetCmd) run(ctx context.Context, c *cli.Command) error {
	idArg := c.Args().First()
	if idArg == "" {
		return fmt.Errorf("usage: catalogctl get <id>")
	}
	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", idArg)
	}

	creds, err := cmd.flags.credentials()
	if err != nil {
		return err
	}

	product, err := cmd.flags.Gateway.GetProduct(ctx, creds, id)
	if err != nil {
		return fmt.Errorf("get product: %w", err)
	}

	out := c.Root().Writer

	if cmd.asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(product)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintf(w, "ID\t%d\n", product.ID)
	_, _ = fmt.Fprintf(w, "Name\t%s\n", product.Name)
	_, _ = fmt.Fprintf(w, "Slug\t%s\n", product.Slug)
	_, _ = fmt.Fprintf(w, "Price\t$%.2f\n", product.Price)
	_, _ = fmt.Fprintf(w, "Stock\t%d\n", product.Stock)
	_, _ = fmt.Fprintf(w, "Category\t%s\n", product.Category.Name)
	_, _ = fmt.Fprintf(w, "Description\t%s\n", product.Description)
	for i, img := range product.Images {
		label := ""
		if i == 0 {
			label = "Images"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\n", label, img)
	}
	if !product.CreatedAt.IsZero() {
		_, _ = fmt.Fprintf(w, "Created\t%s\n", product.CreatedAt.Format("2006-01-02 15:04"))
	}
	if !product.UpdatedAt.IsZero() {
		_, _ = fmt.Fprintf(w, "Updated\t%s\n", product.UpdatedAt.Format("2006-01-02 15:04"))
	}

	return w.Flush()
}
