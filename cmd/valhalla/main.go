package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	match "github.com/valhallaex/matching-engine"
	"github.com/valhallaex/matching-engine/console"
	"github.com/valhallaex/matching-engine/fixedpoint"
)

// seedOrder is one demo order placed at startup to give the book some shape.
type seedOrder struct {
	side     match.Side
	price    string
	quantity string
}

var seedOrders = []seedOrder{
	{match.Buy, "995", "15"},
	{match.Buy, "990", "25"},
	{match.Buy, "985", "35"},
	{match.Buy, "980", "45"},
	{match.Sell, "1005", "20"},
	{match.Sell, "1010", "30"},
	{match.Sell, "1015", "40"},
	{match.Sell, "1020", "50"},
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := initLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()
	match.SetLogger(logger)

	agg := match.NewAggregatedBook()
	engine := match.NewEngine(cfg.Symbol,
		match.WithPublisher(agg),
		match.WithScales(fixedpoint.Scale(cfg.PriceScale), fixedpoint.Scale(cfg.QuantityScale)),
	)

	logger.Info("engine started",
		zap.String("version", match.EngineVersion),
		zap.String("symbol", cfg.Symbol),
	)

	if cfg.Seed {
		seed(engine, logger)
	}

	renderer := &console.Renderer{
		Symbol:        cfg.Symbol,
		PriceScale:    engine.PriceScale(),
		QuantityScale: engine.QuantityScale(),
		TapeLimit:     cfg.TapeLimit,
	}

	repl(engine, renderer, cfg, logger)
}

func initLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func seed(engine *match.Engine, logger *zap.Logger) {
	for _, s := range seedOrders {
		price, _ := decimal.NewFromString(s.price)
		quantity, _ := decimal.NewFromString(s.quantity)

		if _, err := engine.PlaceOrder(s.side, price, quantity); err != nil {
			logger.Warn("seed order rejected",
				zap.String("side", s.side.String()),
				zap.String("price", s.price),
				zap.Error(err))
		}
	}

	logger.Info("market seeded", zap.Int("orders", len(seedOrders)))
}

func repl(engine *match.Engine, renderer *console.Renderer, cfg *Config, logger *zap.Logger) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Print(renderer.View(engine.Book().Depth(cfg.DepthLimit), engine.Tape().Recent(cfg.TapeLimit)))
	fmt.Println(`commands: buy <price> <qty> | sell <price> <qty> | book | exit`)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch strings.ToLower(fields[0]) {
		case "exit", "quit", "q":
			fmt.Println("bye")
			return
		case "book", "depth":
			fmt.Print(renderer.View(engine.Book().Depth(cfg.DepthLimit), engine.Tape().Recent(cfg.TapeLimit)))
		case "buy", "b", "sell", "s":
			placeOrder(engine, renderer, logger, fields)
			fmt.Print(renderer.View(engine.Book().Depth(cfg.DepthLimit), engine.Tape().Recent(cfg.TapeLimit)))
		default:
			fmt.Printf("unknown command %q\n", fields[0])
		}
	}
}

func placeOrder(engine *match.Engine, renderer *console.Renderer, logger *zap.Logger, fields []string) {
	if len(fields) != 3 {
		fmt.Println("usage: buy|sell <price> <qty>")
		return
	}

	side, err := console.ParseSide(fields[0])
	if err != nil {
		fmt.Println(err)
		return
	}

	price, err := decimal.NewFromString(fields[1])
	if err != nil {
		fmt.Printf("invalid price %q\n", fields[1])
		return
	}

	quantity, err := decimal.NewFromString(fields[2])
	if err != nil {
		fmt.Printf("invalid quantity %q\n", fields[2])
		return
	}

	placement, err := engine.PlaceOrder(side, price, quantity)
	if err != nil {
		logger.Warn("order rejected", zap.String("side", side.String()), zap.Error(err))
		fmt.Printf("order rejected: %v\n", err)
		return
	}

	fmt.Printf("order #%d: %s %s @ $%s\n", placement.OrderID, side, quantity.StringFixed(4), price.StringFixed(2))

	if len(placement.Trades) == 0 {
		fmt.Println("order added to book (no matches)")
		return
	}

	for i, trade := range placement.Trades {
		fmt.Printf("trade #%d: %s\n", i+1, renderer.FormatTrade(trade))
	}
	if placement.Resting != nil {
		fmt.Printf("remaining %s rests in the book\n",
			engine.QuantityScale().FromUnits(placement.Resting.Quantity).StringFixed(4))
	}
}
