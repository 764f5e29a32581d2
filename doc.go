package valedictory

// Package valedictory validates and normalizes loosely-typed structured data
// (for example, decoded JSON) against a declared schema. A successful Clean
// returns the normalized values; a failed Clean returns an ErrorTree that
// addresses every violation by path instead of stopping at the first one.
//
// Design policy:
//   - Keep the public contracts (Field, Schema, Validator, ErrorTree) in the
//     root package; put leaf field implementations under field/.
//   - Schemas are immutable templates. Each Validator instance owns a deep copy
//     of the schema's field set, so per-instance reconfiguration never leaks
//     into the schema or sibling instances.
//   - Validation is exhaustive: containers collect child failures and re-key
//     them under their own path segment rather than failing fast.
//
// Typical usage:
//
//	payment := valedictory.New("Payment").
//		Field("amount", field.Int().Min(1)).
//		Field("card", field.CreditCard()).
//		MustBuild()
//
//	v := payment.New()
//	out, err := valedictory.CleanJSON(ctx, v, body)
//	if tree, ok := valedictory.AsTree(err); ok {
//		// tree enumerates every failing path
//	}
