package commands

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"catalogctl/internal/gateway"
	"catalogctl/internal/printer"
)

type LsCmd struct {
	flags *Flags

	page   int64
	search string
	all    bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:        "ls",
		Usage:       "List products",
		UsageText:   "catalogctl ls [options]",
		Description: "Displays a table of products with their id, name, price, stock, and category.",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:        "page",
				Usage:       "page to fetch",
				Value:       1,
				Destination: &cmd.page,
			},
			&cli.StringFlag{
				Name:        "search",
				Aliases:     []string{"s"},
				Usage:       "filter products by search term",
				Destination: &cmd.search,
			},
			&cli.BoolFlag{
				Name:        "all",
				Aliases:     []string{"a"},
				Usage:       "fetch every page",
				Destination: &cmd.all,
			},
		},
		Action: cmd.run,
	})

	return app
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	p := printer.Ctx(ctx)

	creds, err := cmd.flags.credentials()
	if err != nil {
		return err
	}

	pageSize := cmd.flags.Config.PageSize
	page := int(cmd.page)
	if page < 1 {
		page = 1
	}

	var items []gateway.ProductPage
	for {
		result, err := cmd.flags.Gateway.ListProducts(ctx, creds, gateway.ListQuery{
			Page:     page,
			PageSize: pageSize,
			Search:   cmd.search,
		})
		if err != nil {
			return fmt.Errorf("list products: %w", err)
		}
		items = append(items, result)

		if !cmd.all || len(result.Items) < pageSize {
			break
		}
		page++
	}

	total := 0
	for _, pg := range items {
		total += len(pg.Items)
	}
	if total == 0 {
		p.Infof("No products found")
		return nil
	}

	out := c.Root().Writer
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tPRICE\tSTOCK\tCATEGORY")

	for _, pg := range items {
		for _, product := range pg.Items {
			_, _ = fmt.Fprintf(w, "%d\t%s\t$%.2f\t%d\t%s\n",
				product.ID, product.Name, product.Price, product.Stock, product.Category.Name)
		}
	}

	return w.Flush()
}
