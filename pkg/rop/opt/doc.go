// Package opt provides Option[T], a small presence/absence container used to
// move values in and out of rop.Result without nil checks.
//
// - Some/None: construct an Option
// - FromOk/FromPtr: adapt comma-ok pairs and pointers
// - Get/IsSome/IsNone/OrElse: read it back
package opt
