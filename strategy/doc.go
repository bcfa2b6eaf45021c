// Package strategy provides the built-in review-assignment strategies.
//
// A strategy maps reviewers to reviewee teams for one assignment, honoring
// the shared preconditions: the reviewer must currently hold review
// permission, must not be a member of the reviewee team, and must not already
// be mapped to the reviewee.
//
// The package includes five strategies:
//
//   - RoundRobin: Pairs each reviewee with the next reviewer from an
//     infinitely-cycling rotation. Deterministic given fixed input order.
//   - Random: Independently shuffles reviewers and reviewees and samples one
//     reviewer per reviewee with replacement. Deterministic only with an
//     injected seeded random source.
//   - FewestReviews: On-demand allocation of the reviewee team with the
//     minimum existing review count.
//   - TopicFairness: On-demand allocation within the least-reviewed sign-up
//     topics, bounded by a fairness threshold k.
//   - CSVImport: Materializes externally-parsed (reviewer email, team name)
//     rows, silently skipping rows that do not resolve and surfacing the
//     skip count.
//
// # Strategy Selection Guide
//
// RoundRobin:
//   - Use for bulk assignment where every reviewee should get one reviewer
//   - Predictable, restartable with identical output
//
// Random:
//   - Use for bulk assignment where rotation order should not correlate with
//     roster order
//   - A reviewer may receive several reviewees while another receives none;
//     sampling is with replacement
//
// FewestReviews:
//   - Use when reviewers pull work on demand and review counts should stay
//     even across teams
//
// TopicFairness:
//   - Use for topic-based assignments where review coverage should stay even
//     across topics first, teams second
//
// CSVImport:
//   - Use when an administrator supplies explicit pairs
//
// Custom strategies can be implemented by satisfying types.BulkStrategy or
// types.OnDemandStrategy.
package strategy
