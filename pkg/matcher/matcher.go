package matcher

import (
	"context"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/parishledger/bank-importer/pkg/database"
)

// EmptyReferenceMarker is what the unmatched report shows for transactions
// whose description carried no usable payment reference.
const EmptyReferenceMarker = "[EMPTY]"

type Matcher struct {
	repo Repo
}

func NewMatcher(repo Repo) *Matcher {
	return &Matcher{
		repo: repo,
	}
}

type Result struct {
	Success             bool
	TotalProcessed      int
	MatchedCount        int
	UnmatchedCount      int
	TotalAmount         decimal.Decimal
	UnmatchedReferences []string
	Errors              []string
}

// MatchAndCreateContributions scans the stored, unprocessed credit
// transactions, matches them to members by normalized bank reference and
// creates one Transfer contribution per match. Contributions and processed
// flags are committed in a single atomic save, so a crash mid-run never
// leaves a transaction credited without being flagged (or the reverse).
// Safe to re-run: already-processed and already-contributed transactions are
// skipped.
func (m *Matcher) MatchAndCreateContributions(
	ctx context.Context,
	uploadedBy string,
) (*Result, error) {
	result := &Result{
		TotalAmount: decimal.Zero,
	}

	pending, err := m.repo.GetUnprocessedTransactions(ctx)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result, errors.Wrap(err, "failed to load unprocessed transactions")
	}

	if len(pending) == 0 {
		result.Success = true
		return result, nil
	}

	members, err := m.repo.GetActiveMembers(ctx)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result, errors.Wrap(err, "failed to load member references")
	}

	memberByReference := make(map[string]uint, len(members))
	for _, member := range members {
		reference := normalizeReference(member.BankReference)
		if reference == "" {
			continue
		}

		memberByReference[reference] = member.ID
	}

	contributed, err := m.repo.GetContributedTransactionIDs(ctx)
	if err != nil {
		result.Errors = append(result.Errors, err.Error())
		return result, errors.Wrap(err, "failed to load contributed transaction ids")
	}

	alreadyContributed := make(map[uint]struct{}, len(contributed))
	for _, id := range contributed {
		alreadyContributed[id] = struct{}{}
	}

	now := time.Now().UTC()

	var contributions []*database.ContributionRecord
	var processedIDs []uint
	var unmatched []string

	for _, tx := range pending {
		if err = ctx.Err(); err != nil {
			return result, errors.WithStack(err)
		}

		if _, ok := alreadyContributed[tx.ID]; ok {
			// stale isProcessed flag; the contribution exists, never credit twice
			zerolog.Ctx(ctx).Warn().
				Uint("transaction_id", tx.ID).
				Msg("transaction already has a contribution, skipping")
			continue
		}

		result.TotalProcessed++

		reference := normalizeReference(tx.Reference)
		if reference == "" {
			result.UnmatchedCount++
			unmatched = append(unmatched, EmptyReferenceMarker)
			continue
		}

		memberID, ok := memberByReference[reference]
		if !ok {
			result.UnmatchedCount++
			unmatched = append(unmatched, tx.Reference)
			continue
		}

		contributions = append(contributions, &database.ContributionRecord{
			MemberID:            memberID,
			Amount:              tx.MoneyIn,
			Date:                tx.Date,
			TransactionRef:      tx.Reference,
			Description:         tx.Description,
			ContributionTypeID:  database.ContributionTypeTransfer,
			SourceTransactionID: tx.ID,
			CreatedBy:           uploadedBy,
			CreatedDateTime:     now,
		})
		processedIDs = append(processedIDs, tx.ID)

		result.MatchedCount++
		result.TotalAmount = result.TotalAmount.Add(tx.MoneyIn)
	}

	if len(contributions) > 0 {
		if err = m.repo.SaveContributions(ctx, contributions, processedIDs); err != nil {
			result.Errors = append(result.Errors, err.Error())
			return result, errors.Wrap(err, "failed to save contributions")
		}
	}

	result.UnmatchedReferences = lo.Uniq(unmatched)
	result.Success = true

	zerolog.Ctx(ctx).Info().
		Int("matched", result.MatchedCount).
		Int("unmatched", result.UnmatchedCount).
		Str("total_amount", result.TotalAmount.StringFixed(2)).
		Msg("contribution matching finished")

	return result, nil
}

func normalizeReference(reference string) string {
	return strings.ToLower(strings.TrimSpace(reference))
}
