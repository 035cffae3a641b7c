package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"github.com/DanEinstein/go_catalog/internal/api"
	"github.com/DanEinstein/go_catalog/internal/catalog"
	"github.com/DanEinstein/go_catalog/internal/term"
	"github.com/DanEinstein/go_catalog/internal/ui"
	"github.com/DanEinstein/go_catalog/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &cli.Command{
		Name:  "catalog",
		Usage: "manage products in a remote catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "api",
				Usage:   "base URL of the catalog backend",
				Value:   "http://localhost:8000",
				Sources: cli.EnvVars("CATALOG_API_URL"),
			},
			&cli.StringFlag{
				Name:  "env",
				Usage: "dotenv file to load before reading the environment",
				Value: ".env",
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "log output format: text or json",
				Value:   "text",
				Sources: cli.EnvVars("CATALOG_LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level: debug, info, warn, error",
				Value:   "info",
				Sources: cli.EnvVars("CATALOG_LOG_LEVEL"),
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "browse",
				Usage:  "interactive catalog session",
				Action: browseAction,
			},
			{
				Name:   "list",
				Usage:  "print all products",
				Action: listAction,
			},
			{
				Name:      "get",
				Usage:     "print one product",
				ArgsUsage: "<id>",
				Action:    getAction,
			},
			{
				Name:  "create",
				Usage: "create a product",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.FloatFlag{Name: "price", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.IntFlag{Name: "stock", Value: 0},
				},
				Action: createAction,
			},
			{
				Name:      "update",
				Usage:     "update a product, sending the full field set",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Required: true},
					&cli.FloatFlag{Name: "price", Required: true},
					&cli.StringFlag{Name: "description"},
					&cli.IntFlag{Name: "stock", Value: 0},
				},
				Action: updateAction,
			},
			{
				Name:      "delete",
				Usage:     "delete a product",
				ArgsUsage: "<id>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "yes", Usage: "skip the confirmation prompt"},
				},
				Action: deleteAction,
			},
			{
				Name:  "customers",
				Usage: "manage customers",
				Commands: []*cli.Command{
					{Name: "list", Usage: "print all customers", Action: listCustomersAction},
					{
						Name:  "create",
						Usage: "create a customer",
						Flags: []cli.Flag{
							&cli.StringFlag{Name: "first-name", Required: true},
							&cli.StringFlag{Name: "last-name", Required: true},
							&cli.StringFlag{Name: "email", Required: true},
							&cli.StringFlag{Name: "address"},
							&cli.StringFlag{Name: "phone"},
						},
						Action: createCustomerAction,
					},
					{
						Name:      "delete",
						Usage:     "delete a customer",
						ArgsUsage: "<id>",
						Action:    deleteCustomerAction,
					},
				},
			},
		},
	}

	if err := app.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func setup(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	// Missing dotenv files are fine: plain environment still applies.
	_ = godotenv.Load(cmd.String("env"))
	logger.New(logger.Config{
		Level:  logger.ParseLevel(cmd.String("log-level")),
		Format: cmd.String("log-format"),
	})
	return ctx, nil
}

func client(cmd *cli.Command) *api.Client {
	return api.New(cmd.String("api"))
}

func argID(cmd *cli.Command) (catalog.ID, error) {
	id := cmd.Args().First()
	if id == "" {
		return "", fmt.Errorf("missing product id argument")
	}
	return catalog.ID(id), nil
}

func browseAction(ctx context.Context, cmd *cli.Command) error {
	s := term.NewSession(client(cmd), os.Stdin, os.Stdout)
	return s.Run(ctx)
}

func listAction(ctx context.Context, cmd *cli.Command) error {
	products, err := client(cmd).ListProducts(ctx)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		fmt.Println("No products found.")
		return nil
	}
	for _, p := range products {
		fmt.Print(term.FormatCard(toCard(p)))
	}
	return nil
}

func getAction(ctx context.Context, cmd *cli.Command) error {
	id, err := argID(cmd)
	if err != nil {
		return err
	}
	p, err := client(cmd).GetProduct(ctx, id)
	if err != nil {
		return err
	}
	return json.NewEncoder(os.Stdout).Encode(p)
}

func createAction(ctx context.Context, cmd *cli.Command) error {
	id, err := client(cmd).CreateProduct(ctx, catalog.ProductInput{
		Name:        cmd.String("name"),
		Price:       cmd.Float("price"),
		Description: cmd.String("description"),
		Stock:       int(cmd.Int("stock")),
	})
	if err != nil {
		return err
	}
	fmt.Println("created product", id)
	return nil
}

func updateAction(ctx context.Context, cmd *cli.Command) error {
	id, err := argID(cmd)
	if err != nil {
		return err
	}
	err = client(cmd).UpdateProduct(ctx, id, catalog.ProductInput{
		Name:        cmd.String("name"),
		Price:       cmd.Float("price"),
		Description: cmd.String("description"),
		Stock:       int(cmd.Int("stock")),
	})
	if err != nil {
		return err
	}
	fmt.Println("updated product", id)
	return nil
}

func deleteAction(ctx context.Context, cmd *cli.Command) error {
	id, err := argID(cmd)
	if err != nil {
		return err
	}
	if !cmd.Bool("yes") {
		dialogs := term.NewPage(os.Stdin, os.Stdout).Dialogs
		if !dialogs.Confirm(fmt.Sprintf("Delete product %s? This cannot be undone.", id)) {
			return nil
		}
	}
	if err := client(cmd).DeleteProduct(ctx, id); err != nil {
		return err
	}
	fmt.Println("deleted product", id)
	return nil
}

func listCustomersAction(ctx context.Context, cmd *cli.Command) error {
	customers, err := client(cmd).ListCustomers(ctx)
	if err != nil {
		return err
	}
	for _, c := range customers {
		fmt.Printf("[%s] %s %s <%s>\n", c.ID, c.FirstName, c.LastName, c.Email)
	}
	return nil
}

func createCustomerAction(ctx context.Context, cmd *cli.Command) error {
	id, err := client(cmd).CreateCustomer(ctx, catalog.CustomerInput{
		FirstName: cmd.String("first-name"),
		LastName:  cmd.String("last-name"),
		Email:     cmd.String("email"),
		Address:   cmd.String("address"),
		Phone:     cmd.String("phone"),
	})
	if err != nil {
		return err
	}
	fmt.Println("created customer", id)
	return nil
}

func deleteCustomerAction(ctx context.Context, cmd *cli.Command) error {
	id := cmd.Args().First()
	if id == "" {
		return fmt.Errorf("missing customer id argument")
	}
	if err := client(cmd).DeleteCustomer(ctx, catalog.ID(id)); err != nil {
		return err
	}
	fmt.Println("deleted customer", id)
	return nil
}

func toCard(p catalog.Product) ui.Card {
	c := ui.Card{ID: p.ID, Name: p.Name, Price: p.Price, Stock: p.Stock}
	if p.Description != nil {
		c.Description = *p.Description
	}
	return c
}
