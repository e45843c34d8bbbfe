package frameschema

// Request identifies one schema to generate.
type Request struct {
	SchemaType string // services, briefs, brief-responses, ...
	Name       string // human title; the schema title is "<Name> Schema"
	Framework  string
	Lot        string
}

// String renders the request the way output files are named, without extension.
func (r Request) String() string {
	return r.SchemaType + "-" + r.Framework + "-" + r.Lot
}
