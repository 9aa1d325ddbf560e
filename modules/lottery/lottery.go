package lottery

import (
	"context"
	"strings"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/cockroachdb/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/samber/do/v2"
	"github.com/shopspring/decimal"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/internal/config"
	"github.com/solotto/draw-engine/internal/postgres"
	lotteryapi "github.com/solotto/draw-engine/modules/lottery/api"
	"github.com/solotto/draw-engine/modules/lottery/datagateway"
	"github.com/solotto/draw-engine/modules/lottery/draw"
	lotterymemory "github.com/solotto/draw-engine/modules/lottery/repository/memory"
	lotterypostgres "github.com/solotto/draw-engine/modules/lottery/repository/postgres"
	"github.com/solotto/draw-engine/modules/lottery/scheduler"
	"github.com/solotto/draw-engine/modules/lottery/tickethash"
	"github.com/solotto/draw-engine/modules/lottery/usecase"
	"github.com/solotto/draw-engine/pkg/entropy"
	"github.com/solotto/draw-engine/pkg/logger"
)

const Version = "v1.0.0"

// Module holds the wired lottery service. Scheduler is nil when automatic
// draws are disabled.
type Module struct {
	Usecase   *usecase.Usecase
	Scheduler *scheduler.Scheduler

	cleanupFuncs []func(context.Context) error
}

// Close releases resources held by the module.
func (m *Module) Close(ctx context.Context) error {
	for _, cleanup := range m.cleanupFuncs {
		if err := cleanup(ctx); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func New(injector do.Injector) (*Module, error) {
	ctx := do.MustInvoke[context.Context](injector)
	conf := do.MustInvoke[config.Config](injector)

	var (
		ticketDg     datagateway.TicketDataGateway
		drawDg       datagateway.DrawDataGateway
		cleanupFuncs []func(context.Context) error
	)
	database := strings.ToLower(conf.Database)
	if conf.Ephemeral {
		database = "memory"
	}
	switch database {
	case "postgresql", "postgres", "pg":
		pg, err := postgres.NewPool(ctx, conf.Postgres)
		if err != nil {
			if errors.Is(err, errs.InvalidArgument) {
				return nil, errors.Wrap(err, "invalid Postgres configuration")
			}
			return nil, errors.Wrap(err, "can't create Postgres connection pool")
		}
		cleanupFuncs = append(cleanupFuncs, func(ctx context.Context) error {
			pg.Close()
			return nil
		})
		repo := lotterypostgres.NewRepository(pg)
		ticketDg = repo
		drawDg = repo
	case "memory":
		repo := lotterymemory.NewRepository()
		ticketDg = repo
		drawDg = repo
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q database is not supported", conf.Database)
	}

	var entropySource entropy.Source
	switch strings.ToLower(conf.EntropySource) {
	case "bitcoin-node":
		btcClient := do.MustInvoke[*rpcclient.Client](injector)
		entropySource = entropy.NewBitcoinSource(btcClient)
	case "static":
		if conf.StaticSeed == "" {
			return nil, errors.Wrap(errs.InvalidArgument, "static entropy source requires static_seed")
		}
		entropySource = entropy.Static(conf.StaticSeed)
	default:
		return nil, errors.Wrapf(errs.Unsupported, "%q entropy source is not supported", conf.EntropySource)
	}

	unitPrice, err := decimal.NewFromString(conf.Lottery.UnitTicketPriceOrDefault())
	if err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid unit ticket price %q", conf.Lottery.UnitTicketPrice)
	}
	prizes, err := draw.NewPrizeTable(conf.Lottery.PrizeTiersOrDefault())
	if err != nil {
		return nil, errors.Wrap(err, "invalid prize tier configuration")
	}

	hasher := tickethash.New()
	engine := draw.NewEngine(hasher, prizes)
	lotteryUsecase := usecase.New(ticketDg, drawDg, engine, hasher, entropySource, unitPrice)

	// Mount API
	httpServer := do.MustInvoke[*fiber.App](injector)
	lotteryHTTPHandler := lotteryapi.NewHTTPHandler(lotteryUsecase)
	if err := lotteryHTTPHandler.Mount(httpServer); err != nil {
		return nil, errors.Wrap(err, "can't mount lottery API")
	}
	logger.InfoContext(ctx, "Mounted lottery HTTP handler")

	module := &Module{
		Usecase:      lotteryUsecase,
		cleanupFuncs: cleanupFuncs,
	}
	if conf.Lottery.Scheduler.Enabled {
		module.Scheduler = scheduler.New(lotteryUsecase, conf.Lottery.Scheduler.CronSpecOrDefault())
	}
	return module, nil
}
