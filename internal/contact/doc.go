// Package contact is a small sample aggregate built on domainkit. A Person
// holds every kind of child the engine supports: required and optional
// value objects, a nested Address entity, a collection of Tag flags and a
// collection of Address entities.
//
// The cmd/domaincheck tool uses it to validate documents, and its tests
// double as end-to-end tests of the engine.
package contact
