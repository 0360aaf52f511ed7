package console

// ResultSet is the tabular result of an operator query.
type ResultSet struct {
	Columns   []string
	Rows      [][]any
	Statement string
}

// WriteResult reports a mutating statement and the exact text that ran.
type WriteResult struct {
	Affected  int64
	Statement string
}

// Column describes one column of a table as reported by the store.
type Column struct {
	Name     string
	Type     string
	Nullable bool
	Key      string
	Default  string
}
