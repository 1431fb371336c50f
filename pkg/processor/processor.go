package processor

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/parishledger/bank-importer/pkg/importer"
	"github.com/parishledger/bank-importer/pkg/matcher"
)

type Config struct {
	Parser          StatementParser
	Importer        TransactionImporter
	Matcher         ContributionMatcher
	Printer         Printer
	NotificationSvc NotificationSvc
}

type Processor struct {
	cfg *Config
}

func NewProcessor(cfg *Config) *Processor {
	return &Processor{
		cfg: cfg,
	}
}

// ImportStatement parses one uploaded statement and stores the new credit
// transactions. Structural parse failures come back on the summary, not as an
// error: the uploader needs the exact messages to correct the file.
func (p *Processor) ImportStatement(
	ctx context.Context,
	upload Upload,
) (*ImportSummary, error) {
	batchID := uuid.NewString()

	log := zerolog.Ctx(ctx).With().
		Str("batch_id", batchID).
		Str("file", upload.FileName).
		Logger()
	ctx = log.WithContext(ctx)

	parseResult := p.cfg.Parser.ParseFile(ctx, upload.FileName, upload.Data)

	summary := &ImportSummary{
		BatchID:  batchID,
		FileName: upload.FileName,
		Parse:    parseResult,
	}

	if parseResult.TotalRows == 0 && len(parseResult.Errors) > 0 {
		summary.Import = &importer.Result{}

		log.Warn().Strs("errors", parseResult.Errors).Msg("statement rejected")

		return summary, nil
	}

	importResult, err := p.cfg.Importer.Import(ctx, parseResult.Transactions, upload.UploadedBy)
	summary.Import = importResult
	if err != nil {
		return summary, errors.Wrapf(err, "failed to import statement %s", upload.FileName)
	}

	p.notify(ctx, p.cfg.Printer.ImportSummary(ctx, upload.FileName, parseResult, importResult))

	return summary, nil
}

// RunMatching triggers one matcher pass over the stored unprocessed
// transactions.
func (p *Processor) RunMatching(
	ctx context.Context,
	requestedBy string,
) (*matcher.Result, error) {
	result, err := p.cfg.Matcher.MatchAndCreateContributions(ctx, requestedBy)
	if err != nil {
		return result, err
	}

	p.notify(ctx, p.cfg.Printer.MatchSummary(ctx, result))

	return result, nil
}

// notify failures are logged, never surfaced: a missing webhook must not fail
// an otherwise committed import.
func (p *Processor) notify(ctx context.Context, text string) {
	if p.cfg.NotificationSvc == nil {
		return
	}

	if err := p.cfg.NotificationSvc.SendMessage(ctx, text); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to send notification")
	}
}
