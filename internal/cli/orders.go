package cli

import (
	"context"
	"flag"
	"fmt"
)

func (a *App) cmdOrders(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.errOut, "usage: shopadminctl orders list|get|set-status")
		return errUsage
	}

	switch args[0] {
	case "list":
		return a.ordersList(ctx, args[1:])
	case "get":
		return a.ordersGet(ctx, args[1:])
	case "set-status":
		return a.ordersSetStatus(ctx, args[1:])
	default:
		fmt.Fprintf(a.errOut, "unknown orders subcommand %q\n", args[0])
		return errUsage
	}
}

func (a *App) ordersList(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("orders list", flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	limit := fs.Int("limit", 50, "maximum orders to return")
	offset := fs.Int("offset", 0, "number of orders to skip")
	filter := fs.String("filter", "", "JMESPath expression applied to the output")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	orders, err := a.api.ListOrders(ctx, *limit, *offset)
	if err != nil {
		return err
	}
	return a.printJSON(orders, *filter)
}

func (a *App) ordersGet(ctx context.Context, args []string) error {
	if len(args) != 1 {
		fmt.Fprintln(a.errOut, "usage: shopadminctl orders get <id>")
		return errUsage
	}

	order, err := a.api.GetOrder(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printJSON(order, "")
}

func (a *App) ordersSetStatus(ctx context.Context, args []string) error {
	if len(args) != 2 {
		fmt.Fprintln(a.errOut, "usage: shopadminctl orders set-status <id> <pending|paid|shipped|cancelled>")
		return errUsage
	}

	order, err := a.api.SetOrderStatus(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	return a.printJSON(order, "")
}
