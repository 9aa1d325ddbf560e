package cmd

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/modules/lottery"
	"github.com/spf13/cobra"
)

// Version of the draw engine binary.
const Version = "v1.0.0"

var versions = map[string]string{
	"":        Version,
	"lottery": lottery.Version,
}

type versionCmdOptions struct {
	Module string
}

func NewVersionCommand() *cobra.Command {
	opts := &versionCmdOptions{}

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show draw engine version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return versionHandler(opts, cmd, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Module, "module", "", `Show version of a specific module. E.g. "lottery"`)

	return cmd
}

func versionHandler(opts *versionCmdOptions, _ *cobra.Command, _ []string) error {
	version, ok := versions[opts.Module]
	if !ok {
		return errors.Wrap(errs.Unsupported, "Invalid module name")
	}
	fmt.Println(version)
	return nil
}
