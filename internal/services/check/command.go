package check

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"cadastro/internal/core/brdoc"
	"cadastro/internal/core/version"
	perr "cadastro/internal/platform/errors"
	"cadastro/internal/platform/logger"
	pnet "cadastro/internal/platform/net"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// stdinName labels results read from stdin
const stdinName = "-"

// newRunID tags one invocation; logger.C picks it up as request_id
var newRunID = uuid.NewString

// runContext keeps an id already on ctx, otherwise attaches a fresh one
func runContext(ctx context.Context) context.Context {
	if pnet.RequestID(ctx) != "" {
		return ctx
	}
	return pnet.WithRequest(ctx, newRunID())
}

// NewRootCommand builds the cadastro-check command tree
func NewRootCommand() *cobra.Command {
	var opt Options

	root := &cobra.Command{
		Use:           "cadastro-check",
		Short:         "Validate CPFs, mobile phones and display names line by line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&opt.JSON, "json", false, "print one JSON object per line")
	root.PersistentFlags().BoolVar(&opt.InvalidOnly, "invalid-only", false, "print only invalid records")
	root.PersistentFlags().BoolVar(&opt.Strict, "strict", false, "exit with status 1 when any record is invalid")

	for _, k := range []struct {
		kind  Kind
		short string
	}{
		{KindCPF, "Validate CPFs, one per line"},
		{KindPhone, "Validate mobile phones with area code, one per line"},
		{KindName, "Validate display names, one per line"},
	} {
		root.AddCommand(&cobra.Command{
			Use:   string(k.kind) + " [files...]",
			Short: k.short,
			Long:  "Reads the given files, or stdin when none are given, and prints value, formatted value and reason per line.",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runKind(cmd, k.kind, args, opt)
			},
		})
	}

	root.AddCommand(&cobra.Command{
		Use:   "gen <base>",
		Short: "Complete a 9 digit CPF base with its check digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd.OutOrStdout(), args[0], opt)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Info()
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s)\n", info.Service, info.Version, info.Commit, info.Date)
			return err
		},
	})

	return root
}

func runKind(cmd *cobra.Command, kind Kind, files []string, opt Options) error {
	ctx := runContext(cmd.Context())
	out := cmd.OutOrStdout()
	log := logger.C(ctx).With().Str("component", "check").Str("kind", string(kind)).Logger()

	var sum Summary
	if len(files) == 0 {
		s, err := Run(ctx, kind, stdinName, cmd.InOrStdin(), out, opt)
		sum.Add(s)
		if err != nil {
			return err
		}
	}
	for _, path := range files {
		s, err := runFile(ctx, cmd, kind, path, opt)
		sum.Add(s)
		if err != nil {
			return err
		}
	}

	log.Debug().Int("total", sum.Total).Int("invalid", sum.Invalid).Msg("check done")
	if opt.Strict && sum.Invalid > 0 {
		return ErrInvalid
	}
	return nil
}

func runFile(ctx context.Context, cmd *cobra.Command, kind Kind, path string, opt Options) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "open %s", path)
	}
	defer func() {
		if err := f.Close(); err != nil {
			logger.C(ctx).Warn().Err(err).Str("path", path).Msg("close input")
		}
	}()
	return Run(ctx, kind, path, f, cmd.OutOrStdout(), opt)
}

func runGen(w io.Writer, base string, opt Options) error {
	dv, err := brdoc.CPFCheckDigits(base)
	if err != nil {
		return err
	}
	cpf := brdoc.NormalizeDigits(base) + dv
	if opt.JSON {
		return json.NewEncoder(w).Encode(map[string]string{
			"base":         brdoc.NormalizeDigits(base),
			"check_digits": dv,
			"cpf":          cpf,
			"formatted":    brdoc.FormatCPFMask(cpf),
		})
	}
	_, err = fmt.Fprintf(w, "%s\t%s\n", cpf, brdoc.FormatCPFMask(cpf))
	return err
}
