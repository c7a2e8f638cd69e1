package domain

// SchemaType names a JSON value kind in a response-shape constraint.
type SchemaType string

const (
	TypeObject  SchemaType = "object"
	TypeArray   SchemaType = "array"
	TypeString  SchemaType = "string"
	TypeInteger SchemaType = "integer"
	TypeNumber  SchemaType = "number"
	TypeBoolean SchemaType = "boolean"
)

// Schema describes the JSON shape expected from the completion service, or
// the params accepted by an action. It marshals as a JSON Schema subset.
type Schema struct {
	Type        SchemaType         `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Required    []string           `json:"required,omitempty"`
	Nullable    bool               `json:"nullable,omitempty"`
}

// Object builds an object schema.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: props, Required: required}
}

// ArrayOf builds an array schema with the given item shape.
func ArrayOf(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

func String() *Schema  { return &Schema{Type: TypeString} }
func Integer() *Schema { return &Schema{Type: TypeInteger} }
func Number() *Schema  { return &Schema{Type: TypeNumber} }
func Boolean() *Schema { return &Schema{Type: TypeBoolean} }

// Describe sets the description and returns the schema for chaining.
func (s *Schema) Describe(desc string) *Schema {
	s.Description = desc
	return s
}
