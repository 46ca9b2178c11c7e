package models

// Category is a user-defined grouping of personas (e.g. 가족, 직장).
// Server-owned; the client may create new ones but never invents IDs.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Persona is a tracked relationship record. CategoryID is a weak reference
// to Category.ID; the server may return personas whose category no longer
// exists and the rollup simply skips them.
type Persona struct {
	ID               string      `json:"id"`
	Name             string      `json:"name"`
	CategoryID       string      `json:"category_id"`
	RelationshipTemp Temperature `json:"relationship_temp"`
}
