// Package record defines the generic key-value record consumed by the list
// query engine, and the alias table used to resolve semantically equivalent
// fields across record kinds (posts, events, ventures, members).
//
// Records coming from different collections name the same concept
// differently: a post has "titulo", an event "nombre", a member "name".
// Resolution is first-non-empty-wins over an ordered list of candidate keys
// per concept. The table lives in one place ([DefaultAliases]) and can be
// overridden from configuration with [Aliases.Merge].
package record
