package jobscrape

// Extraction holds raw field values pulled from a page by an adapter.
// Empty strings mean the field was not found.
type Extraction struct {
	Title       string
	Company     string
	Location    string
	Salary      string
	Description string

	// Matched maps a field name to the strategy that produced its value.
	Matched map[string]string
}

// Field names used as Extraction.Matched keys.
const (
	FieldTitle       = "title"
	FieldCompany     = "company"
	FieldLocation    = "location"
	FieldSalary      = "salary"
	FieldDescription = "description"
)

// Adapter extracts job fields from the HTML of one site family.
type Adapter interface {
	// Extract parses html fetched from pageURL and returns the field values.
	// Returns EPARSE if the HTML cannot be parsed at all.
	Extract(html string, pageURL string) (*Extraction, error)

	// Site returns the adapter's identifier.
	Site() Site
}

// AdapterRegistry maps URLs to adapters.
type AdapterRegistry interface {
	// Lookup returns the adapter whose domain patterns match rawURL.
	// Falls back to the generic adapter if nothing matches.
	Lookup(rawURL string) Adapter

	// Generic returns the last-resort adapter.
	Generic() Adapter

	// List returns the registered sites in registration order.
	List() []Site

	// Domains returns the domain patterns registered for a site.
	Domains(site Site) []string
}

// ExtractResult holds main content pulled out of a page by a readability-style
// extractor.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// Text is the main content as plain text with boilerplate removed.
	Text string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the main content as text.
	Extract(html string) (*ExtractResult, error)
}
