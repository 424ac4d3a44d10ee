// Package validators enforces business rules on user input before it reaches
// the sync engine. The Validator interface supports optional field-level
// scoping so an update touching one field does not re-validate the rest.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
