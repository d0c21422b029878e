// Command shopfront is an interactive terminal storefront over the
// inventory service REST API. It is the view layer only; catalog and
// cart/checkout logic live in internal/catalog and internal/cart.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/rmello/shopfront/internal/api"
	"github.com/rmello/shopfront/internal/cart"
	"github.com/rmello/shopfront/internal/catalog"
	"github.com/rmello/shopfront/internal/config"
	"github.com/rmello/shopfront/internal/models"
	"github.com/rmello/shopfront/internal/view"
)

type app struct {
	client   *api.Client
	catalog  *catalog.Catalog
	checkout *cart.Checkout
	renderer *view.Renderer
	log      *logrus.Logger
	criteria catalog.Criteria
}

func main() {
	_ = godotenv.Load()

	log := logrus.New()
	log.SetLevel(logrus.WarnLevel) // keep the storefront quiet unless asked

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("could not load configuration")
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout, log)
	a := &app{
		client:   client,
		catalog:  catalog.New(client, cfg.PageSize),
		checkout: cart.New(client),
		renderer: view.NewRenderer(os.Stdout, cfg.Currency),
		log:      log,
	}
	a.criteria.Categories = make(map[string]bool)

	// Stock may have changed after a successful order; refresh the snapshot.
	a.checkout.OnOrderPlaced(func() {
		if err := a.catalog.Load(context.Background()); err != nil {
			log.WithError(err).Warn("catalog refresh after order failed")
		}
	})
	a.checkout.OnChange(func(ev cart.Event) {
		switch ev.Kind {
		case cart.EventCartOpened:
			fmt.Println("-- cart --")
			a.renderer.Cart(a.checkout)
		case cart.EventStepChanged:
			fmt.Printf("-- checkout step: %s --\n", ev.Step)
		case cart.EventOrderPlaced:
			fmt.Printf("Order placed successfully! Order ID: %s\n", ev.OrderID)
		}
	})

	if err := a.catalog.Load(context.Background()); err != nil {
		fmt.Println("Could not load products:", err)
	}

	fmt.Println("shopfront — type 'help' for commands")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}
		a.dispatch(line)
	}
}

func (a *app) dispatch(line string) {
	ctx := context.Background()
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "help":
		printHelp()
	case "list":
		a.renderer.Products(a.catalog.FilteredView())
	case "reload":
		if err := a.catalog.Load(ctx); err != nil {
			fmt.Println("Could not load products:", err)
			return
		}
		fmt.Printf("%d products loaded\n", a.catalog.Len())
	case "search":
		a.criteria.Search = strings.Join(args, " ")
		a.applyFilter()
	case "category":
		if len(args) == 0 {
			fmt.Println("usage: category <name>")
			return
		}
		name := strings.Join(args, " ")
		if a.criteria.Categories[name] {
			delete(a.criteria.Categories, name)
		} else {
			a.criteria.Categories[name] = true
		}
		a.applyFilter()
	case "categories":
		for _, c := range a.catalog.Categories() {
			marker := " "
			if a.criteria.Categories[c] {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, c)
		}
	case "price":
		a.setPriceBounds(args)
	case "instock":
		a.criteria.InStockOnly = !a.criteria.InStockOnly
		a.applyFilter()
	case "clearfilter":
		a.criteria = catalog.Criteria{Categories: make(map[string]bool)}
		a.applyFilter()
	case "view":
		a.viewProduct(ctx, args)
	case "add":
		a.addToCart(args)
	case "remove":
		if id, ok := parseID(args); ok {
			a.checkout.RemoveItem(id)
			a.renderer.Cart(a.checkout)
		}
	case "cart":
		a.renderer.Cart(a.checkout)
	case "checkout", "next":
		if err := a.checkout.Next(); err != nil {
			fmt.Println(err)
		}
	case "back":
		a.checkout.Back()
	case "dismiss":
		a.checkout.Dismiss()
	case "pay":
		if len(args) != 1 {
			fmt.Println("usage: pay <ONLINE|COD>")
			return
		}
		a.checkout.PaymentMethod = strings.ToUpper(args[0])
	case "card":
		if len(args) != 3 {
			fmt.Println("usage: card <number> <expiry> <cvc>")
			return
		}
		a.checkout.Card = cart.CardDetails{Number: args[0], Expiry: args[1], CVC: args[2]}
	case "email":
		a.checkout.CustomerEmail = strings.Join(args, " ")
	case "address":
		a.checkout.ShippingAddress = strings.Join(args, " ")
	case "submit":
		if _, err := a.checkout.SubmitOrder(ctx); err != nil {
			fmt.Println(err)
		}
	case "orders":
		if len(args) != 1 {
			fmt.Println("usage: orders <email>")
			return
		}
		orders, err := a.client.MyOrders(ctx, args[0])
		if err != nil {
			fmt.Println("Error fetching orders:", err)
			return
		}
		a.renderer.Orders(orders)
	case "trending":
		entries, err := a.client.Trending(ctx)
		if err != nil {
			fmt.Println("Error loading trending:", err)
			return
		}
		for _, p := range a.catalog.TrendingProducts(entries, 4) {
			a.renderer.ProductDetail(p)
		}
	case "review":
		a.postReview(ctx, args)
	default:
		fmt.Println("unknown command; type 'help'")
	}
}

func (a *app) applyFilter() {
	a.catalog.SetFilter(a.criteria)
	a.renderer.Products(a.catalog.FilteredView())
}

func (a *app) setPriceBounds(args []string) {
	if len(args) != 2 {
		fmt.Println("usage: price <min> <max>  (use - for no bound)")
		return
	}
	parse := func(s string) *float64 {
		if s == "-" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &v
	}
	a.criteria.MinPrice = parse(args[0])
	a.criteria.MaxPrice = parse(args[1])
	a.applyFilter()
}

func (a *app) viewProduct(ctx context.Context, args []string) {
	id, ok := parseID(args)
	if !ok {
		return
	}
	p, found := a.catalog.Product(id)
	if !found {
		fmt.Println("product not in the loaded snapshot")
		return
	}
	a.renderer.ProductDetail(p)
	a.client.LogActivity(ctx, models.ActivityEvent{
		ProductID: p.ID,
		UserID:    "guest_user",
		Action:    models.ActionProductView,
		Metadata:  map[string]string{"page": "storefront"},
	})
	reviews, err := a.client.Reviews(ctx, p.ID)
	if err != nil {
		fmt.Println("Failed to load reviews.")
		return
	}
	a.renderer.Reviews(reviews)
}

func (a *app) addToCart(args []string) {
	id, ok := parseID(args)
	if !ok {
		return
	}
	p, found := a.catalog.Product(id)
	if !found {
		fmt.Println("product not in the loaded snapshot")
		return
	}
	if !p.InStock() {
		fmt.Println("Out of stock")
		return
	}
	err := a.checkout.AddItem(p.ID, p.Name, p.Price, p.Quantity, p.ImageURL)
	if errors.Is(err, cart.ErrStockExceeded) {
		fmt.Println("No more stock available!")
	}
}

func (a *app) postReview(ctx context.Context, args []string) {
	if len(args) < 2 {
		fmt.Println("usage: review <id> <rating 1-5> [text...]")
		return
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("invalid product ID")
		return
	}
	rating, err := strconv.Atoi(args[1])
	if err != nil || rating < 1 || rating > 5 {
		fmt.Println("rating must be between 1 and 5")
		return
	}
	review := models.Review{UserID: "guest_user", Rating: rating, ReviewText: strings.Join(args[2:], " ")}
	if err := a.client.PostReview(ctx, id, review); err != nil {
		fmt.Println("Failed to submit review:", err)
		return
	}
	fmt.Println("Review submitted.")
}

func parseID(args []string) (int, bool) {
	if len(args) != 1 {
		fmt.Println("expected a product ID")
		return 0, false
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("invalid product ID")
		return 0, false
	}
	return id, true
}

func printHelp() {
	fmt.Print(`browsing:
  list                  show the filtered product list
  reload                re-fetch the product snapshot
  search <term>         free-text filter on name/category
  category <name>       toggle a category filter
  categories            list categories (active marked *)
  price <min> <max>     price bounds, '-' for unbounded
  instock               toggle in-stock-only
  clearfilter           reset all filters
  view <id>             product details, reviews
  trending              most viewed products
cart & checkout:
  add <id> / remove <id> / cart
  checkout              advance a step (cart -> payment -> address)
  back / dismiss
  pay <ONLINE|COD>, card <num> <exp> <cvc>
  email <addr>, address <text>
  submit                place the order
other:
  orders <email>        order history
  review <id> <rating> [text]
  quit
`)
}
