// Package deadline implements the deadline permission engine.
//
// The engine decides whether a time-gated activity (submission, review, quiz,
// teammate review, metareview) is currently allowed for a parent entity (an
// assignment or a sign-up topic) by selecting the applicable deadline and
// resolving its per-activity right.
//
// # Selection Rule
//
// Among the parent's deadlines of the activity's type, the current deadline
// is the one with the smallest DueAt at or after the reference time; when all
// have passed, it is the most recently passed one. A parent with no deadline
// of the type resolves to the safe default: denied.
//
// # Determinism
//
// Every operation takes an explicit reference time (the ...At variants) or
// uses the engine's injected clock. There is no implicit global clock access,
// so permission decisions are reproducible in tests and audits.
//
// # Failure Semantics
//
// Absent parents, absent deadlines, and absent rights resolve to RightNo;
// permission checks never fail on missing data. Transient data-source
// failures propagate wrapped in types.ErrUnavailable without retries.
package deadline
