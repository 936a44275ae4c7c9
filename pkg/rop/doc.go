// Package rop provides explicit outcome values: a success or failure with a
// status code, an optional message and an optional cause.
//
// - Outcome: a valueless outcome with And/Or composition
// - Result[T]: an outcome carrying an optional value of type T
// - OnSuccess/OnFailure/Else: branch on the status; Else runs when the
//   branch tested just before it was skipped
// - Map/Bind/Tee/Match: transform and collapse results
// - Builder: assemble an outcome before creating it
//
// Outcomes are immutable. Branch methods return copies, so the shared Ok()
// and Failed() instances are never modified.
package rop
