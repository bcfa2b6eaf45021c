package peerassign

import "github.com/expertiza/reimplementation-back-end-sub003/types"

// Re-export types from the types subpackage.
//
// This file provides a stable public API for the library's core types and
// interfaces via type aliases. Subpackages depend on the types package
// directly, which keeps the root package free of import cycles while users
// can write peerassign.Deadline, peerassign.Right, etc.
type (
	Right        = types.Right
	ActivityType = types.ActivityType
	DeadlineType = types.DeadlineType
	StrategyKind = types.StrategyKind
	ParentKind   = types.ParentKind
	ParentRef    = types.ParentRef

	Deadline       = types.Deadline
	RightSet       = types.RightSet
	ScheduleReport = types.ScheduleReport

	Reviewer = types.Reviewer
	Team     = types.Team
	Pair     = types.Pair
	Mapping  = types.Mapping
	CSVRow   = types.CSVRow
)

// Re-export interfaces for convenience.
type (
	RosterProvider       = types.RosterProvider
	DeadlineSource       = types.DeadlineSource
	DeadlineStore        = types.DeadlineStore
	MappingStore         = types.MappingStore
	Strategy             = types.Strategy
	BulkStrategy         = types.BulkStrategy
	OnDemandStrategy     = types.OnDemandStrategy
	EligibilityPredicate = types.EligibilityPredicate
	Logger               = types.Logger
	MetricsCollector     = types.MetricsCollector
	Hooks                = types.Hooks
)

// Re-export enum constants.
const (
	RightNo   = types.RightNo
	RightLate = types.RightLate
	RightOK   = types.RightOK

	ActivitySubmission     = types.ActivitySubmission
	ActivityReview         = types.ActivityReview
	ActivityTeammateReview = types.ActivityTeammateReview
	ActivityQuiz           = types.ActivityQuiz
	ActivityMetareview     = types.ActivityMetareview

	StrategyRoundRobin    = types.StrategyRoundRobin
	StrategyRandom        = types.StrategyRandom
	StrategyFewestReviews = types.StrategyFewestReviews
	StrategyTopicFairness = types.StrategyTopicFairness
	StrategyCSV           = types.StrategyCSV

	ParentAssignment  = types.ParentAssignment
	ParentSignUpTopic = types.ParentSignUpTopic
)

// AssignmentRef builds a ParentRef for an assignment.
func AssignmentRef(id string) ParentRef { return types.AssignmentRef(id) }

// TopicRef builds a ParentRef for a sign-up topic.
func TopicRef(id string) ParentRef { return types.TopicRef(id) }
