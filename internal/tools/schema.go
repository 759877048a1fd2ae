package tools

import "github.com/invopop/jsonschema"

// GenerateSchema derives a JSON schema from a tool input struct. Inline,
// no $refs, no extra properties.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	return reflector.Reflect(v)
}
