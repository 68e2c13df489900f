package domain

import (
	"maps"

	"github.com/go-playground/validator/v10"
)

// validate is the package-level validator instance used for struct validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// cloneMetadata creates a shallow copy of a metadata map to prevent aliasing.
// Returns an empty map for nil input so results always carry a usable map.
func cloneMetadata(m map[string]any) map[string]any {
	result := make(map[string]any, len(m))
	maps.Copy(result, m)
	return result
}
