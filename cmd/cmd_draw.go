package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/samber/do/v2"
	"github.com/solotto/draw-engine/internal/config"
	"github.com/solotto/draw-engine/modules/lottery"
	"github.com/spf13/cobra"
)

type drawCmdOptions struct {
	Seed string
}

func NewDrawCommand() *cobra.Command {
	opts := &drawCmdOptions{}

	cmd := &cobra.Command{
		Use:     "draw",
		Short:   "Conduct a draw over the current ledger and print the result",
		Example: `solotto draw --seed 00000000000000000002c0cc73626b56fb3ee1ce605b0ce125cc4fb58775a0a9`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return drawHandler(opts, cmd)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Seed, "seed", "", "Entropy seed override. When set, the Bitcoin node is not contacted.")

	return cmd
}

func drawHandler(opts *drawCmdOptions, cmd *cobra.Command) error {
	conf := config.Load()
	ctx := cmd.Context()

	// A seed override makes the draw fully self-contained.
	if opts.Seed != "" {
		conf.EntropySource = "static"
		conf.StaticSeed = opts.Seed
	}

	injector := do.New()
	do.ProvideValue(injector, conf)
	do.ProvideValue(injector, ctx)
	do.Provide(injector, bitcoinRPCClientProvider)
	do.Provide(injector, httpServerProvider)

	module, err := lottery.New(injector)
	if err != nil {
		return errors.Wrap(err, "can't init lottery module")
	}
	defer func() {
		_ = module.Close(ctx)
	}()

	result, err := module.Usecase.ConductDraw(ctx, opts.Seed)
	if err != nil {
		return errors.Wrap(err, "can't conduct draw")
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return errors.Wrap(err, "can't marshal draw result")
	}
	fmt.Println(string(out))
	return nil
}
