// Package vo provides the concrete leaf value objects used to build
// entities: text, e-mail, numbers, flags, identifiers, UUIDs, dates, URLs,
// phone numbers and opaque objects.
//
// Every leaf is generic over a spec type that does two jobs. It tags the
// leaf nominally, so two leaves with the same representation but a
// different domain meaning never unify, and it supplies the per-kind knobs
// through methods. Spec types usually embed the matching defaults struct
// and override what they need:
//
//	type personName struct{ vo.TextDefaults }
//
//	func (personName) MaxLength() int { return 50 }
//
//	type PersonName = vo.Text[personName]
//
//	name := vo.NewText[personName]("Ada")
//
// Leaves satisfy domainkit.Leaf, so they can be placed in entity field
// tables, in collections and in domainkit.Optional for nullable fields.
// Validation never fails loudly: GetErrors reports failures as data using
// the rules in pkg/validator.
package vo
