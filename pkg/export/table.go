package export

// Table defines tabular export content. Rows are keyed by header.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// Heading is printed above the table in documents that support it.
type Heading struct {
	Title string
	Lines []string
}
