// Package store provides MappingStore implementations.
//
// The store owns the correctness contract of concurrent allocation: fairness
// counts are recomputed per call and can race, so the uniqueness constraint
// enforced at mapping-creation time is the single serialization point. Both
// implementations reject a duplicate (reviewer, reviewee, assignment) triple
// atomically:
//
//   - Memory: process-local store on a concurrent map; LoadOrStore is the
//     atomic create.
//   - NATS: durable store on a JetStream KeyValue bucket; kv.Create is the
//     atomic first-writer-wins create, so uniqueness holds across processes.
package store
