package model

// Catalog is a read-only snapshot of the known transaction methods and tags,
// each in creation order.
type Catalog struct {
	methods []string
	tags    []string
}

// NewCatalog copies methods and tags into a new snapshot.
func NewCatalog(methods, tags []string) Catalog {
	return Catalog{
		methods: append([]string(nil), methods...),
		tags:    append([]string(nil), tags...),
	}
}

// TxMethods returns the known transaction method names.
func (c Catalog) TxMethods() []string {
	return append([]string(nil), c.methods...)
}

// Tags returns the known tag names.
func (c Catalog) Tags() []string {
	return append([]string(nil), c.tags...)
}
