package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-budget/cmd/httpserver"
	"github.com/go-petr/pet-budget/internal/domain"
	"github.com/go-petr/pet-budget/internal/exportservice"
	"github.com/go-petr/pet-budget/internal/middleware"
	"github.com/go-petr/pet-budget/pkg/configpkg"
)

// Export formats.
const (
	formatCSV    = "csv"
	formatBackup = "backup"
)

type exportOptions struct {
	ownerID string
	format  string
	out     string
	from    string
	to      string
}

func newExportCommand(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the data of one owner from the configured storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := configpkg.Load(root.configPath)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if opts.out != "" && opts.out != "-" {
				f, err := os.Create(opts.out)
				if err != nil {
					return err
				}
				defer f.Close()

				w = f
			}

			return runExport(cmd, config, opts, w)
		},
	}

	cmd.Flags().StringVar(&opts.ownerID, "owner", "", "owner id to export")
	cmd.Flags().StringVar(&opts.format, "format", formatCSV, "export format (csv|backup)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&opts.from, "from", "", "first transaction date, YYYY-MM-DD")
	cmd.Flags().StringVar(&opts.to, "to", "", "last transaction date, YYYY-MM-DD")

	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func runExport(cmd *cobra.Command, config configpkg.Config, opts *exportOptions, w io.Writer) error {
	var f domain.TransactionFilter

	for _, d := range []struct {
		flag  string
		value string
		dst   *domain.Date
	}{{"from", opts.from, &f.From}, {"to", opts.to, &f.To}} {
		if d.value == "" {
			continue
		}

		date, err := domain.ParseDate(d.value)
		if err != nil {
			return fmt.Errorf("--%s must be a date formatted as YYYY-MM-DD", d.flag)
		}

		*d.dst = date
	}

	logger := middleware.GetLogger(config)
	ctx := logger.WithContext(cmd.Context())

	repos, err := httpserver.OpenRepos(ctx, config)
	if err != nil {
		return err
	}
	defer repos.Close()

	s := exportservice.New(repos.Transactions, repos.Categories, repos.Budgets, repos.Users, repos.Companies)

	switch opts.format {
	case formatCSV:
		return s.WriteTransactionsCSV(ctx, opts.ownerID, f, w)
	case formatBackup:
		res := s.Backup(ctx, opts.ownerID)
		if !res.Success {
			return res.Cause
		}

		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")

		return enc.Encode(res.Data)
	}

	return fmt.Errorf("unknown format %q", opts.format)
}
