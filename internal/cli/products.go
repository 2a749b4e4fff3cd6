package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/shopforge/admin-api/internal/domain/model"
)

func (a *App) cmdProducts(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "usage: shopadminctl products list|get|create|delete")
		return errUsage
	}

	switch args[0] {
	case "list":
		return a.productsList(ctx, args[1:])
	case "get":
		return a.productsGet(ctx, args[1:])
	case "create":
		return a.productsCreate(ctx, args[1:])
	case "delete":
		return a.productsDelete(ctx, args[1:])
	default:
		fmt.Fprintf(a.errOut, "unknown products subcommand %q\n", args[0])
		return errUsage
	}
}

func (a *App) productsList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products list", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	limit := fs.Int("limit", 50, "maximum products to return")
	offset := fs.Int("offset", 0, "number of products to skip")
	filter := fs.String("filter", "", "JMESPath expression applied to the output")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	products, err := a.api.ListProducts(ctx, *limit, *offset)
	if err != nil {
		return err
	}
	return a.printJSON(products, *filter)
}

func (a *App) productsGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.errOut, "usage: shopadminctl products get <id>")
		return errUsage
	}

	product, err := a.api.GetProduct(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printJSON(product, "")
}

func (a *App) productsCreate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("products create", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	sku := fs.String("sku", "", "stock keeping unit (required)")
	name := fs.String("name", "", "display name (required)")
	priceCents := fs.Int64("price-cents", 0, "unit price in cents")
	stock := fs.Int("stock", 0, "units in stock")
	description := fs.String("description", "", "optional description")
	imageURL := fs.String("image-url", "", "optional image URL")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	req := model.CreateProductRequest{
		SKU:        *sku,
		Name:       *name,
		PriceCents: *priceCents,
		Stock:      *stock,
	}
	if *description != "" {
		req.Description = description
	}
	if *imageURL != "" {
		req.ImageURL = imageURL
	}

	product, err := a.api.CreateProduct(ctx, req)
	if err != nil {
		return err
	}
	return a.printJSON(product, "")
}

func (a *App) productsDelete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.errOut, "usage: shopadminctl products delete <id>")
		return errUsage
	}

	if err := a.api.DeleteProduct(ctx, args[0]); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "deleted product %s\n", args[0])
	return nil
}
