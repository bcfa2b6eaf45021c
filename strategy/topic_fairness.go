package strategy

import (
	"context"
	"fmt"
	"sort"

	"github.com/expertiza/reimplementation-back-end-sub003/types"
)

// DefaultFairnessThreshold is the topic-fairness k applied when the caller
// does not configure one.
const DefaultFairnessThreshold = 1

// TopicFairness allocates one pair on demand inside the least-reviewed
// sign-up topics.
//
// Teams are grouped by their signed-up topic; topics whose total review
// count is within the fairness threshold k of the minimum stay eligible, and
// the lowest topic identifier among them is tried first. Within a topic the
// fewest-reviews selection applies.
type TopicFairness struct {
	core
	threshold int
}

var _ types.OnDemandStrategy = (*TopicFairness)(nil)

// NewTopicFairness creates a new topic-fairness strategy.
//
// Parameters:
//   - p: Shared strategy dependencies; FairnessThreshold below 1 defaults
//     to DefaultFairnessThreshold
//
// Returns:
//   - *TopicFairness: Initialized strategy
func NewTopicFairness(p Params) *TopicFairness {
	threshold := p.FairnessThreshold
	if threshold < 1 {
		threshold = DefaultFairnessThreshold
	}

	return &TopicFairness{core: newCore(p), threshold: threshold}
}

// Kind returns types.StrategyTopicFairness.
func (s *TopicFairness) Kind() types.StrategyKind {
	return types.StrategyTopicFairness
}

// Threshold returns the fairness threshold k in effect.
func (s *TopicFairness) Threshold() int {
	return s.threshold
}

// AssignOne selects a reviewee team for the reviewer from the least-reviewed
// eligible topics.
//
// Deterministic: candidate topics are visited in ascending identifier order,
// and within a topic ties break toward the team first encountered. Teams
// without a sign-up topic are outside this strategy's scope.
//
// Returns:
//   - types.Pair: The selected pair
//   - error: types.ErrNotPermitted when the reviewer lacks review
//     permission; types.ErrNoEligibleTopic when no team has a topic;
//     types.ErrNoEligibleReviewee when every candidate topic's teams are
//     excluded for this reviewer; or a propagated lookup failure
func (s *TopicFairness) AssignOne(ctx context.Context, reviewer types.Reviewer) (types.Pair, error) {
	ok, err := s.permitted(ctx, reviewer)
	if err != nil {
		return types.Pair{}, err
	}
	if !ok {
		s.metrics.RecordPairSkipped(s.Kind(), skipNotPermitted)
		return types.Pair{}, fmt.Errorf("%w: reviewer %s on %s", types.ErrNotPermitted, reviewer.ID, s.assignment)
	}

	teams, err := s.roster.Teams(ctx, s.assignment)
	if err != nil {
		return types.Pair{}, fmt.Errorf("load teams for %s: %w", s.assignment, err)
	}
	counts, err := s.roster.ExistingMappingCounts(ctx, s.assignment)
	if err != nil {
		return types.Pair{}, fmt.Errorf("load mapping counts for %s: %w", s.assignment, err)
	}

	teamsByTopic, err := s.groupByTopic(ctx, teams)
	if err != nil {
		return types.Pair{}, err
	}
	if len(teamsByTopic) == 0 {
		return types.Pair{}, fmt.Errorf("%w: no team on %s has a sign-up topic", types.ErrNoEligibleTopic, s.assignment)
	}

	for _, topic := range s.candidateTopics(teamsByTopic, counts) {
		team, found, err := s.leastReviewed(ctx, s.Kind(), reviewer, teamsByTopic[topic], counts)
		if err != nil {
			return types.Pair{}, err
		}
		if found {
			s.metrics.RecordPairProduced(s.Kind())
			s.log.Debug("topic selected",
				"assignment", s.assignment.String(),
				"topic", topic,
				"team", team.ID,
			)

			return types.Pair{Reviewer: reviewer, Reviewee: team}, nil
		}
	}

	return types.Pair{}, fmt.Errorf("%w: reviewer %s on %s", types.ErrNoEligibleReviewee, reviewer.ID, s.assignment)
}

// groupByTopic buckets teams under their signed-up topic, preserving team
// order within each bucket. Teams without a topic are dropped.
func (s *TopicFairness) groupByTopic(ctx context.Context, teams []types.Team) (map[string][]types.Team, error) {
	grouped := make(map[string][]types.Team)
	for _, team := range teams {
		topic, err := s.roster.TopicOf(ctx, team.ID)
		if err != nil {
			return nil, fmt.Errorf("load topic of team %s: %w", team.ID, err)
		}
		if topic == "" {
			continue
		}
		grouped[topic] = append(grouped[topic], team)
	}

	return grouped, nil
}

// candidateTopics returns the topics whose total review count is within the
// threshold of the minimum, sorted by topic identifier.
func (s *TopicFairness) candidateTopics(teamsByTopic map[string][]types.Team, counts map[string]int) []string {
	topicCounts := make(map[string]int, len(teamsByTopic))
	minCount := 0
	first := true
	for topic, topicTeams := range teamsByTopic {
		total := 0
		for _, team := range topicTeams {
			total += counts[team.ID]
		}
		topicCounts[topic] = total
		if first || total < minCount {
			minCount = total
			first = false
		}
	}

	candidates := make([]string, 0, len(topicCounts))
	for topic, total := range topicCounts {
		if total <= minCount+s.threshold {
			candidates = append(candidates, topic)
		}
	}
	sort.Strings(candidates)

	return candidates
}
