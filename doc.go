// Package peerassign assigns reviewers to reviewees for peer-evaluation
// workflows and gates every time-sensitive activity behind a
// deadline/permission model.
//
// The library combines two tightly coupled subsystems:
//
//   - The deadline permission engine decides whether an activity
//     (submission, review, quiz, teammate review, metareview) is currently
//     allowed for an assignment or sign-up topic, either fully, with a
//     lateness penalty, or not at all.
//   - The review assignment engine allocates reviewer→reviewee pairs under a
//     pluggable strategy, honoring deadline-derived eligibility,
//     no-self-review, no-duplicate-assignment, and review-count fairness.
//
// # Quick Start
//
//	roster := source.NewStaticRoster()
//	deadlines := source.NewStaticDeadlines(schedule...)
//	mappings := store.NewMemory()
//
//	engine, err := peerassign.New(nil, roster, deadlines, mappings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	assignment := peerassign.AssignmentRef("42")
//	strat, err := engine.BuildStrategy(peerassign.StrategyRoundRobin, assignment)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := engine.AssignAll(ctx, strat.(peerassign.BulkStrategy), 1)
//
// # Architecture
//
// Data flows one direction: deadline state → eligibility → assignment
// strategies → produced mappings. The engine is stateless between
// invocations; every call recomputes eligibility and fairness counts from
// the current persisted state. Concurrent allocation is made safe by the
// mapping store's uniqueness constraint at creation time, not by the
// counting step; callers retry selection on a duplicate conflict.
//
// # Advanced Usage
//
// Custom ambient stack with options:
//
//	engine, err := peerassign.New(&cfg, roster, deadlines, mappings,
//	    peerassign.WithLogger(logger),
//	    peerassign.WithMetrics(collector),
//	    peerassign.WithClock(func() time.Time { return fixedNow }),
//	)
//
// External collaborators (rosters, deadline rows, persisted mappings) are
// supplied through the interfaces in the types package; the source and store
// packages ship ready-made implementations.
package peerassign
