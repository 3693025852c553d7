package main

import (
	"context"
	"cryptometrics/api"
	"cryptometrics/internal/domain"
	"cryptometrics/internal/export"
	"cryptometrics/internal/service"
	"cryptometrics/internal/util"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

type cliDeps struct {
	Db             *sql.DB
	MetricsService service.MetricsService
}

type loadDepsFn func() (*cliDeps, error)

func newRootCmd(loadDeps loadDepsFn) *cobra.Command {
	root := &cobra.Command{
		Use:           "cryptometrics",
		Short:         "Rolling return, volatility and portfolio metrics for daily crypto data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAssetsCmd(loadDeps))
	root.AddCommand(newMetricsCmd(loadDeps))
	return root
}

func newAssetsCmd(loadDeps loadDepsFn) *cobra.Command {
	return &cobra.Command{
		Use:   "assets",
		Short: "List assets available in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := loadDeps()
			if err != nil {
				return err
			}

			return withReadTx(cmd.Context(), deps.Db, func(ctx context.Context, tx *sql.Tx) error {
				assets, err := deps.MetricsService.ListAssets(ctx, tx)
				if err != nil {
					return err
				}
				for _, a := range assets {
					fmt.Fprintln(cmd.OutOrStdout(), a)
				}
				return nil
			})
		},
	}
}

type metricsFlags struct {
	assets             string
	start              string
	end                string
	format             string
	portfolioMinAssets int
}

func newMetricsCmd(loadDeps loadDepsFn) *cobra.Command {
	flags := metricsFlags{}

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Compute per-asset features and the equal-weighted portfolio",
		Long: `Compute per-asset features and the equal-weighted portfolio.

Assets and dates default to the first five assets and the last 30 days of
available data.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch flags.format {
			case "json", "csv", "portfolio-csv":
			default:
				return fmt.Errorf("unknown format %q, expected json, csv or portfolio-csv", flags.format)
			}

			deps, err := loadDeps()
			if err != nil {
				return err
			}

			return withReadTx(cmd.Context(), deps.Db, func(ctx context.Context, tx *sql.Tx) error {
				input, err := resolveInput(ctx, tx, deps.MetricsService, flags)
				if err != nil {
					return err
				}

				result, err := deps.MetricsService.Compute(ctx, tx, *input)
				if err != nil {
					return fmt.Errorf("failed to compute metrics: %w", err)
				}
				if result.Profile != nil {
					result.Profile.End()
				}

				return writeResult(cmd.OutOrStdout(), flags.format, result)
			})
		},
	}

	cmd.Flags().StringVar(&flags.assets, "assets", "", "comma separated assets, e.g. BTC,ETH")
	cmd.Flags().StringVar(&flags.start, "start", "", "start date, YYYY-MM-DD")
	cmd.Flags().StringVar(&flags.end, "end", "", "end date, YYYY-MM-DD")
	cmd.Flags().StringVar(&flags.format, "format", "json", "output format: json, csv or portfolio-csv")
	cmd.Flags().IntVar(&flags.portfolioMinAssets, "portfolio-min-assets", 2, "minimum assets before a portfolio is built")

	return cmd
}

// resolveInput fills unset flags from the default dashboard selection
func resolveInput(ctx context.Context, tx *sql.Tx, metricsService service.MetricsService, flags metricsFlags) (*service.MetricsInput, error) {
	input := &service.MetricsInput{
		Assets:             splitAssets(flags.assets),
		PortfolioMinAssets: flags.portfolioMinAssets,
	}

	if len(input.Assets) == 0 || flags.start == "" || flags.end == "" {
		selection, err := metricsService.DefaultSelection(ctx, tx)
		if err != nil {
			return nil, fmt.Errorf("failed to get default selection: %w", err)
		}
		if len(input.Assets) == 0 {
			input.Assets = selection.Assets
		}
		input.Start = selection.Start
		input.End = selection.End
	}

	var err error
	if flags.start != "" {
		input.Start, err = util.ParseDate(flags.start)
		if err != nil {
			return nil, err
		}
	}
	if flags.end != "" {
		input.End, err = util.ParseDate(flags.end)
		if err != nil {
			return nil, err
		}
	}

	return input, nil
}

func splitAssets(s string) []string {
	out := []string{}
	for _, a := range strings.Split(s, ",") {
		a = strings.TrimSpace(a)
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

func writeResult(w io.Writer, format string, result *domain.MetricsResult) error {
	switch format {
	case "csv":
		return export.WriteFeatureRows(w, result.Rows)
	case "portfolio-csv":
		if result.Portfolio == nil {
			return fmt.Errorf("portfolio needs at least two assets with data")
		}
		return export.WritePortfolio(w, result.Portfolio)
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "    ")
	return encoder.Encode(api.NewMetricsResponse(result))
}

func withReadTx(ctx context.Context, db *sql.DB, fn func(context.Context, *sql.Tx) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	profile, endProfile := domain.NewProfile()
	defer endProfile()
	ctx = context.WithValue(ctx, domain.ContextProfileKey, profile)

	tx, err := db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	defer tx.Rollback()

	return fn(ctx, tx)
}
