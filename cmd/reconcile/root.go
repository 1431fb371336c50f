package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/parishledger/bank-importer/pkg/importer"
	"github.com/parishledger/bank-importer/pkg/matcher"
	"github.com/parishledger/bank-importer/pkg/parser"
	"github.com/parishledger/bank-importer/pkg/printer"
	"github.com/parishledger/bank-importer/pkg/processor"
	"github.com/parishledger/bank-importer/pkg/repo"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reconcile",
		Short:         "Import bank statements and match contributions",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newImportCmd())
	root.AddCommand(newMatchCmd())

	return root
}

func openProcessor() (*processor.Processor, error) {
	dsn := os.Getenv("POSTGRES_CONNECTION_STRING")
	if dsn == "" {
		return nil, errors.New("POSTGRES_CONNECTION_STRING is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get postgres")
	}

	if err = repo.Migrate(db); err != nil {
		return nil, errors.Wrap(err, "failed to migrate")
	}

	dataRepo := repo.NewPostgres(db)

	return processor.NewProcessor(&processor.Config{
		Parser:   parser.NewHSBC(),
		Importer: importer.NewImporter(dataRepo),
		Matcher:  matcher.NewMatcher(dataRepo),
		Printer:  printer.NewPrinter(),
	}), nil
}

func newImportCmd() *cobra.Command {
	var uploadedBy string

	cmd := &cobra.Command{
		Use:   "import <statement-file>",
		Short: "Parse a statement export and store new credit transactions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "failed to read %s", args[0])
			}

			svc, err := openProcessor()
			if err != nil {
				return err
			}

			summary, err := svc.ImportStatement(cmd.Context(), processor.Upload{
				FileName:   args[0],
				Data:       data,
				UploadedBy: uploadedBy,
			})
			if err != nil {
				return err
			}

			fmt.Println(printer.NewPrinter().ImportSummary(
				cmd.Context(), summary.FileName, summary.Parse, summary.Import))

			return nil
		},
	}

	cmd.Flags().StringVar(&uploadedBy, "uploaded-by", "cli", "user recorded on created rows")

	return cmd
}

func newMatchCmd() *cobra.Command {
	var requestedBy string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match stored transactions to members and create contributions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := openProcessor()
			if err != nil {
				return err
			}

			result, err := svc.RunMatching(cmd.Context(), requestedBy)
			if err != nil {
				return err
			}

			fmt.Println(printer.NewPrinter().MatchSummary(cmd.Context(), result))

			return nil
		},
	}

	cmd.Flags().StringVar(&requestedBy, "requested-by", "cli", "user recorded on created rows")

	return cmd
}
