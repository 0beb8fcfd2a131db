// Package validator provides small declarative validation rules for the
// primitive inputs behind the leaf value types in pkg/vo.
//
// Every exported rule constructor returns a Rule: a deferred boolean Check
// paired with the ValidationError it reports. Nothing is evaluated until a
// combinator runs the rules, so a rule list can be assembled up front and
// guarded with When.
//
// # Combinators
//
//   - Failures runs every rule and returns all failures in order.
//   - FirstFailure stops at the first failure, so later rules may assume
//     earlier ones held (a length check after a required check).
//   - Apply runs every rule and returns the failures as an error.
//
// # Usage
//
//	errs := validator.FirstFailure(
//	    validator.Required("name", name),
//	    validator.MaxLen("name", name, 50),
//	)
//	for _, e := range errs {
//	    fmt.Println(e.Field, e.Message, e.Code)
//	}
//
// # Messages
//
// Messages are fixed English strings (for example "field is required" or
// "must be a valid email address"). Code carries a stable identifier such as
// "validation.required" for callers that need to translate or branch.
//
// The package is stateless and safe for concurrent use.
package validator
