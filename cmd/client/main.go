package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/wempyhq/wempy-ordering/config"
	"github.com/wempyhq/wempy-ordering/internal/app/model"
	"github.com/wempyhq/wempy-ordering/internal/app/repository"
	"github.com/wempyhq/wempy-ordering/internal/app/service"
	"github.com/wempyhq/wempy-ordering/internal/app/view"
	"github.com/wempyhq/wempy-ordering/pkg/logger"
	"github.com/wempyhq/wempy-ordering/pkg/orderintake"
)

const (
	pageMenu = "menu"
	pageCart = "cart"
)

// app holds the wired client and the current page, so cart mutations can
// re-render whichever page is active.
type app struct {
	menuView *view.MenuView
	cartView *view.CartView
	hud      *view.HUD
	carts    service.CartService
	checkout service.CheckoutService
	page     string
	in       *bufio.Scanner
	out      *os.File
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logger.Initialize(logger.Config{
		Level:  "warn", // keep the terminal free for the views
		Format: "console",
	})

	ctx := context.Background()

	// Catalog
	catalogRepo := repository.NewHTTPCatalogRepository(cfg.Client.CatalogBaseURL)
	catalogService := service.NewCatalogService(catalogRepo)
	menu, err := catalogService.LoadMenu(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Could not load the menu. Check that the catalog service is reachable.")
		os.Exit(1)
	}

	// Cart persistence backend
	cartRepo, err := newCartRepository(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize cart storage", err)
	}

	// Services
	cartService := service.NewCartService(cartRepo)
	pricingService := service.NewPricingService(catalogRepo)
	intakeClient, err := orderintake.NewClient(orderintake.Config{
		BaseURL: cfg.Client.OrderServiceURL,
	})
	if err != nil {
		logger.Fatal("Failed to initialize order-intake client", err)
	}
	checkoutService := service.NewCheckoutService(cartService, pricingService, intakeClient)

	// Views
	a := &app{
		menuView: view.NewMenuView(menu, pricingService, os.Stdout),
		cartView: view.NewCartView(pricingService, os.Stdout),
		hud:      view.NewHUD(pricingService, os.Stdout),
		carts:    cartService,
		checkout: checkoutService,
		page:     pageMenu,
		in:       bufio.NewScanner(os.Stdin),
		out:      os.Stdout,
	}

	// Every mutation refreshes the badge and the active page.
	cartService.Subscribe(a.hud)
	cartService.Subscribe(view.ObserverFunc(func(cart model.Cart) {
		if a.page == pageCart {
			a.cartView.Render(cart)
		}
	}))

	a.run()
}

func newCartRepository(cfg *config.Config) (repository.CartRepository, error) {
	switch cfg.Client.CartBackend {
	case "redis":
		client, err := repository.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return repository.NewRedisCartRepository(client, cfg.Client.CartKey), nil
	case "file":
		return repository.NewFileCartRepository(cfg.Client.CartPath), nil
	default:
		return nil, fmt.Errorf("unknown cart backend %q", cfg.Client.CartBackend)
	}
}

func (a *app) run() {
	a.showMenu()
	a.hud.Render(a.carts.Cart())
	fmt.Fprintln(a.out, `Type "help" for commands.`)

	for {
		fmt.Fprint(a.out, "> ")
		if !a.in.Scan() {
			return
		}
		fields := strings.Fields(a.in.Text())
		if len(fields) == 0 {
			continue
		}

		command, args := fields[0], fields[1:]
		switch command {
		case "help":
			a.showHelp()
		case "menu":
			a.showMenu()
		case "cart":
			a.showCart()
		case "plus":
			a.withItem(args, a.menuView.IncreasePending)
		case "minus":
			a.withItem(args, a.menuView.DecreasePending)
		case "size", "type":
			a.selectVariant(args)
		case "add":
			a.addToCart(args)
		case "inc":
			a.adjustLine(args, +1)
		case "dec":
			a.adjustLine(args, -1)
		case "remove":
			a.removeLine(args)
		case "checkout":
			a.runCheckout()
		case "quit", "exit":
			return
		default:
			fmt.Fprintf(a.out, "Unknown command %q. Type \"help\" for commands.\n", command)
		}
	}
}

func (a *app) showHelp() {
	fmt.Fprintln(a.out, `Commands:
  menu                    show the menu
  cart                    show the cart
  plus <item>             increase the picker quantity
  minus <item>            decrease the picker quantity
  size <item> <variant>   choose a size or type
  add <item>              add the picked quantity to the cart
  inc <item> [variant]    increase a cart line
  dec <item> [variant]    decrease a cart line (zero removes it)
  remove <item> [variant] remove a cart line
  checkout                submit the order
  quit                    leave`)
}

func (a *app) showMenu() {
	a.page = pageMenu
	a.menuView.Render()
}

func (a *app) showCart() {
	a.page = pageCart
	a.cartView.Render(a.carts.Cart())
}

// withItem runs a single-argument picker mutation and re-renders the menu.
func (a *app) withItem(args []string, fn func(itemID string) error) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: <command> <item>")
		return
	}
	if err := fn(args[0]); err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	a.showMenu()
}

func (a *app) selectVariant(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(a.out, "Usage: size <item> <variant>")
		return
	}
	if err := a.menuView.SelectVariant(args[0], strings.Join(args[1:], " ")); err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	a.showMenu()
}

func (a *app) addToCart(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(a.out, "Usage: add <item>")
		return
	}

	line, err := a.menuView.Commit(args[0])
	if err != nil {
		fmt.Fprintln(a.out, err)
		return
	}
	if err := a.carts.AddLine(line); err != nil {
		fmt.Fprintln(a.out, "Could not add the item to the cart.")
		return
	}
	fmt.Fprintf(a.out, "Added %dx %s\n", line.Quantity, line.Name)
}

// lineKey builds the composite key from an item id and optional variant.
func lineKey(args []string) model.LineKey {
	key := model.LineKey{ItemID: args[0]}
	if len(args) > 1 {
		key.Variant = strings.Join(args[1:], " ")
	}
	return key
}

func (a *app) adjustLine(args []string, delta int) {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: inc|dec <item> [variant]")
		return
	}
	if err := a.carts.AdjustQuantity(lineKey(args), delta); err != nil {
		fmt.Fprintln(a.out, "Could not update the cart.")
	}
}

func (a *app) removeLine(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(a.out, "Usage: remove <item> [variant]")
		return
	}
	if err := a.carts.Remove(lineKey(args)); err != nil {
		fmt.Fprintln(a.out, "Could not update the cart.")
	}
}

func (a *app) runCheckout() {
	if a.carts.Cart().IsEmpty() {
		fmt.Fprintln(a.out, "Your cart is empty. Add something first.")
		return
	}

	customer := orderintake.Customer{
		Name:    a.prompt("Name: "),
		Phone:   a.prompt("Phone: "),
		Address: a.prompt("Address: "),
		Notes:   a.prompt("Notes: "),
	}

	resp, err := a.checkout.Submit(context.Background(), customer)
	if err != nil {
		a.reportCheckoutError(err)
		return
	}

	fmt.Fprintf(a.out, "Order #%d accepted. Thank you!\n", resp.OrderID)
	a.showMenu()
}

func (a *app) reportCheckoutError(err error) {
	var apiErr *orderintake.APIError
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		fmt.Fprintln(a.out, "Your cart is empty. Add something first.")
	case errors.As(err, &apiErr):
		fmt.Fprintf(a.out, "The order was not accepted: %s\n", apiErr.Detail)
	case errors.Is(err, orderintake.ErrServiceUnreachable):
		fmt.Fprintln(a.out, "Could not submit the order. Check that the service is reachable.")
	default:
		fmt.Fprintln(a.out, "Could not submit the order. Please try again.")
	}
}

func (a *app) prompt(label string) string {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}
