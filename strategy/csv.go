package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// CSVImport materializes externally-parsed (reviewer email, team name) rows
// into pairs.
//
// CSV data is inherently partial and untrusted: rows whose reviewer or team
// does not resolve, or that fail the shared preconditions, are skipped
// rather than errored. The skip count is surfaced through Skipped so the
// caller can report it.
//
// The strategy never opens files or handles encodings; it consumes rows the
// caller already parsed.
type CSVImport struct {
	core
	rows    []types.CSVRow
	skipped int
}

var _ types.BulkStrategy = (*CSVImport)(nil)

// NewCSVImport creates a new CSV-driven strategy over the given rows.
//
// Parameters:
//   - p: Shared strategy dependencies; Rows holds the parsed input
//
// Returns:
//   - *CSVImport: Initialized strategy
func NewCSVImport(p Params) *CSVImport {
	return &CSVImport{core: newCore(p), rows: p.Rows}
}

// Kind returns types.StrategyCSV.
func (s *CSVImport) Kind() types.StrategyKind {
	return types.StrategyCSV
}

// Skipped returns the number of rows dropped by the most recent Pairs call:
// unresolvable reviewers or teams plus rows failing a precondition.
func (s *CSVImport) Skipped() int {
	return s.skipped
}

// Pairs resolves each row against the roster and yields the pairs where
// both sides resolve and the preconditions hold.
//
// Reviewer emails match case-insensitively; team names match exactly.
//
// Returns:
//   - []types.Pair: Pairs in row order
//   - error: Only a propagated lookup failure; unresolvable rows are
//     counted, not raised
func (s *CSVImport) Pairs(ctx context.Context) ([]types.Pair, error) {
	s.skipped = 0

	reviewers, err := s.eligibleReviewers(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.roster.Teams(ctx, s.assignment)
	if err != nil {
		return nil, fmt.Errorf("load teams for %s: %w", s.assignment, err)
	}

	byEmail := make(map[string]types.Reviewer, len(reviewers))
	for _, r := range reviewers {
		byEmail[strings.ToLower(r.Email)] = r
	}
	byName := make(map[string]types.Team, len(teams))
	for _, t := range teams {
		byName[t.Name] = t
	}

	pairs := make([]types.Pair, 0, len(s.rows))
	for _, row := range s.rows {
		reviewer, rok := byEmail[strings.ToLower(row.ReviewerEmail)]
		team, tok := byName[row.TeamName]
		if !rok || !tok {
			s.skipped++
			s.metrics.RecordPairSkipped(s.Kind(), skipUnresolved)
			s.log.Debug("csv row did not resolve",
				"assignment", s.assignment.String(),
				"reviewerEmail", row.ReviewerEmail,
				"teamName", row.TeamName,
			)

			continue
		}

		ok, err := s.admissible(ctx, s.Kind(), reviewer, team)
		if err != nil {
			return nil, err
		}
		if !ok {
			s.skipped++
			continue
		}

		pairs = append(pairs, types.Pair{Reviewer: reviewer, Reviewee: team})
		s.metrics.RecordPairProduced(s.Kind())
	}

	return pairs, nil
}
