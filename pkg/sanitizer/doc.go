// Package sanitizer provides small normalisation helpers for user input
// such as e-mail addresses, phone numbers, URLs and postal codes, plus
// generic numeric clamping.
//
// Normalisers never fail: input they cannot make sense of is returned
// unchanged (apart from trimming) so no data is lost. Validation is left
// to pkg/validator.
//
// The higher-order Apply and Compose helpers build pipelines:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.ToLower,
//	)
//	tag := clean("  Team   Lead ") // "team lead"
//
// The package is stateless and safe for concurrent use.
package sanitizer
