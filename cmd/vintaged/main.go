// Command vintaged is the interactive console for the marketplace engine.
// It is a thin collaborator: every action is a plain call into the
// aggregate, and snapshots go through the persist store when a database is
// configured.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sudo-init-do/vintage/internal/config"
	"github.com/sudo-init-do/vintage/internal/market"
	"github.com/sudo-init-do/vintage/internal/persist"
	"github.com/sudo-init-do/vintage/internal/product"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	m := market.New(market.Config{
		BaseSmall:  cfg.BaseSmall,
		BaseMedium: cfg.BaseMedium,
		BaseBig:    cfg.BaseBig,
		OrderFee:   cfg.OrderFee,
	})

	var store *persist.Store
	if cfg.DatabaseURL != "" {
		store, err = persist.Open(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("snapshot store: %v", err)
		}
		defer store.Close()
	}

	app := &app{m: m, store: store, in: bufio.NewScanner(os.Stdin)}
	app.run()
}

type app struct {
	m     *market.Market
	store *persist.Store
	in    *bufio.Scanner
}

func (a *app) run() {
	fmt.Println("vintage marketplace console — type 'help' for commands")
	for {
		fmt.Print("> ")
		if !a.in.Scan() {
			return
		}
		line := strings.TrimSpace(a.in.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]
		if cmd == "quit" || cmd == "exit" {
			return
		}
		if err := a.dispatch(cmd, args); err != nil {
			fmt.Println("error:", err)
		}
	}
}

func (a *app) dispatch(cmd string, args []string) error {
	switch cmd {
	case "help":
		fmt.Print(`commands:
  register-user <email> <name> <address> <tax-number>
  register-company <name> <profit-margin> [premium-tax]
  publish <seller-id> <company-id>      (prompts for product fields)
  products | companies
  cart <user-id> | cart-add <user-id> <product-id> | cart-remove <user-id> <product-id>
  checkout <user-id>
  expedite <order-id> | deliver <order-id> | return <order-id>
  returnable <user-id>
  order <order-id>
  advance <duration>                    (e.g. 48h, 30m)
  stats
  save | load
  quit
`)
		return nil
	case "register-user":
		if len(args) < 4 {
			return errors.New("usage: register-user <email> <name> <address> <tax-number>")
		}
		id, err := a.m.RegisterUser(args[0], args[1], args[2], args[3])
		if err != nil {
			return err
		}
		fmt.Println("user", id)
		return nil
	case "register-company":
		if len(args) < 2 {
			return errors.New("usage: register-company <name> <profit-margin> [premium-tax]")
		}
		margin, err := decimal.NewFromString(args[1])
		if err != nil {
			return err
		}
		if len(args) >= 3 {
			tax, err := decimal.NewFromString(args[2])
			if err != nil {
				return err
			}
			fmt.Println("company", a.m.RegisterPremiumCompany(args[0], margin, tax))
			return nil
		}
		fmt.Println("company", a.m.RegisterCompany(args[0], margin))
		return nil
	case "publish":
		if len(args) < 2 {
			return errors.New("usage: publish <seller-id> <company-id>")
		}
		return a.publish(args[0], args[1])
	case "products":
		for _, p := range a.m.Products() {
			fmt.Printf("%s  %-9s %s %s — %s (owners: %d, %s)\n",
				p.ID, p.Details.Kind(), p.Brand, p.Description,
				p.Price(a.m.Now()).StringFixed(2), p.PreviousOwners, p.Condition)
		}
		return nil
	case "companies":
		for _, c := range a.m.Companies() {
			kind := "standard"
			if c.Premium {
				kind = "premium"
			}
			fmt.Printf("%s  %s (%s) revenue %s\n", c.ID, c.Name, kind, c.Revenue.StringFixed(2))
		}
		return nil
	case "cart":
		if len(args) < 1 {
			return errors.New("usage: cart <user-id>")
		}
		items, err := a.m.Cart(args[0])
		if err != nil {
			return err
		}
		for _, p := range items {
			fmt.Printf("%s  %s %s — %s\n", p.ID, p.Brand, p.Description, p.Price(a.m.Now()).StringFixed(2))
		}
		return nil
	case "cart-add":
		if len(args) < 2 {
			return errors.New("usage: cart-add <user-id> <product-id>")
		}
		return a.m.AddToCart(args[0], args[1])
	case "cart-remove":
		if len(args) < 2 {
			return errors.New("usage: cart-remove <user-id> <product-id>")
		}
		return a.m.RemoveFromCart(args[0], args[1])
	case "checkout":
		if len(args) < 1 {
			return errors.New("usage: checkout <user-id>")
		}
		orders, err := a.m.Checkout(args[0])
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("order %s: %d item(s), products %s + shipping %s + fees %s = %s\n",
				o.ID, len(o.Products), o.ProductsCost.StringFixed(2), o.ShippingCost.StringFixed(2),
				o.MarketplaceFees.StringFixed(2), o.TotalCost.StringFixed(2))
		}
		return nil
	case "expedite":
		if len(args) < 1 {
			return errors.New("usage: expedite <order-id>")
		}
		return a.m.ExpediteOrder(args[0])
	case "deliver":
		if len(args) < 1 {
			return errors.New("usage: deliver <order-id>")
		}
		return a.m.DeliverOrder(args[0])
	case "return":
		if len(args) < 1 {
			return errors.New("usage: return <order-id>")
		}
		return a.m.ReturnOrder(args[0])
	case "returnable":
		if len(args) < 1 {
			return errors.New("usage: returnable <user-id>")
		}
		orders, err := a.m.ReturnableOrders(args[0])
		if err != nil {
			return err
		}
		for _, o := range orders {
			fmt.Printf("%s delivered %s total %s\n", o.ID, o.DeliveredAt.Format(time.RFC3339), o.TotalCost.StringFixed(2))
		}
		return nil
	case "order":
		if len(args) < 1 {
			return errors.New("usage: order <order-id>")
		}
		o, err := a.m.Order(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s %s buyer=%s seller=%s carrier=%s total=%s\n",
			o.ID, o.Status, o.BuyerID, o.SellerID, o.CompanyID, o.TotalCost.StringFixed(2))
		return nil
	case "advance":
		if len(args) < 1 {
			return errors.New("usage: advance <duration>")
		}
		d, err := time.ParseDuration(args[0])
		if err != nil {
			return err
		}
		a.m.AdvanceTime(d)
		fmt.Println("now:", a.m.Now().Format(time.RFC3339))
		return nil
	case "stats":
		fmt.Println("marketplace revenue:", a.m.Revenue().StringFixed(2))
		if top, ok := a.m.UserWithMostRevenue(); ok {
			fmt.Printf("top seller: %s (%s) %s\n", top.Name, top.UserID, top.Amount.StringFixed(2))
		}
		if id, rev, ok := a.m.CompanyWithMostRevenue(); ok {
			fmt.Printf("top carrier: %s %s\n", id, rev.StringFixed(2))
		}
		return nil
	case "save":
		if a.store == nil {
			return errors.New("no DATABASE_URL configured")
		}
		id, err := a.store.Save(context.Background(), a.m.Snapshot())
		if err != nil {
			return err
		}
		fmt.Println("snapshot", id)
		return nil
	case "load":
		if a.store == nil {
			return errors.New("no DATABASE_URL configured")
		}
		snap, err := a.store.LoadLatest(context.Background())
		if err != nil {
			return err
		}
		m, err := market.FromSnapshot(snap, nil)
		if err != nil {
			return err
		}
		a.m = m
		fmt.Println("restored snapshot taken at", snap.TakenAt.Format(time.RFC3339))
		return nil
	default:
		return fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
}

// publish walks the seller through the category-specific fields.
func (a *app) publish(sellerID, companyID string) error {
	kind := a.prompt("kind (footwear/apparel/handbag)")
	p := product.Product{
		CompanyID:   companyID,
		Description: a.prompt("description"),
		Brand:       a.prompt("brand"),
	}
	var err error
	if p.BasePrice, err = decimal.NewFromString(a.prompt("base price")); err != nil {
		return err
	}
	if p.PreviousOwners, err = strconv.Atoi(a.prompt("previous owners")); err != nil {
		return err
	}
	grade, err := strconv.Atoi(a.prompt("condition grade (0 pristine .. 4 worn)"))
	if err != nil {
		return err
	}
	p.Condition = product.Condition(grade)

	premium := strings.EqualFold(a.prompt("premium? (y/n)"), "y")
	switch kind {
	case "footwear":
		f := product.Footwear{Color: a.prompt("color")}
		if f.Size, err = strconv.Atoi(a.prompt("size")); err != nil {
			return err
		}
		f.Laces = strings.EqualFold(a.prompt("laces? (y/n)"), "y")
		if f.CollectionYear, err = strconv.Atoi(a.prompt("collection year")); err != nil {
			return err
		}
		rate, err := decimal.NewFromString(a.prompt("discount / appreciation rate"))
		if err != nil {
			return err
		}
		if premium {
			p.Details = product.PremiumFootwear{Footwear: f, Appreciation: rate}
		} else {
			f.Discount = rate
			p.Details = f
		}
	case "apparel":
		p.Details = product.Apparel{
			Size:    product.ApparelSize(a.prompt("size (XS/S/M/L/XL)")),
			Pattern: product.Pattern(a.prompt("pattern (plain/stripes/palm_trees)")),
		}
	case "handbag":
		h := product.Handbag{Material: product.Material(a.prompt("material"))}
		if h.Dimension, err = decimal.NewFromString(a.prompt("dimension (liters)")); err != nil {
			return err
		}
		if h.CollectionYear, err = strconv.Atoi(a.prompt("collection year")); err != nil {
			return err
		}
		if premium {
			rate, err := decimal.NewFromString(a.prompt("appreciation rate"))
			if err != nil {
				return err
			}
			p.Details = product.PremiumHandbag{Handbag: h, Appreciation: rate}
		} else {
			p.Details = h
		}
	default:
		return fmt.Errorf("unknown kind %q", kind)
	}

	id, err := a.m.Publish(sellerID, p)
	if err != nil {
		return err
	}
	fmt.Println("product", id)
	return nil
}

func (a *app) prompt(label string) string {
	fmt.Printf("%s: ", label)
	if !a.in.Scan() {
		return ""
	}
	return strings.TrimSpace(a.in.Text())
}
