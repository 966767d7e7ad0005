package slog

import (
	"log/slog"
	"time"

	"github.com/akmandhania/jobscrape"
)

// Ensure LoggingRegistry implements jobscrape.AdapterRegistry.
var _ jobscrape.AdapterRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an AdapterRegistry so that URL classification and
// every extraction of the returned adapters are logged.
type LoggingRegistry struct {
	next   jobscrape.AdapterRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next jobscrape.AdapterRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Lookup logs the site chosen for rawURL and returns a logging adapter.
func (r *LoggingRegistry) Lookup(rawURL string) jobscrape.Adapter {
	a := r.next.Lookup(rawURL)
	r.logger.Debug("classify",
		"url", rawURL,
		"site", a.Site(),
	)
	return NewLoggingAdapter(a, r.logger)
}

// Generic returns the wrapped registry's generic adapter with logging.
func (r *LoggingRegistry) Generic() jobscrape.Adapter {
	return NewLoggingAdapter(r.next.Generic(), r.logger)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []jobscrape.Site {
	return r.next.List()
}

// Domains delegates to the wrapped registry.
func (r *LoggingRegistry) Domains(site jobscrape.Site) []string {
	return r.next.Domains(site)
}

// Ensure LoggingAdapter implements jobscrape.Adapter.
var _ jobscrape.Adapter = (*LoggingAdapter)(nil)

// LoggingAdapter logs which strategy produced each field.
type LoggingAdapter struct {
	next   jobscrape.Adapter
	logger *slog.Logger
}

// NewLoggingAdapter creates a new LoggingAdapter.
func NewLoggingAdapter(next jobscrape.Adapter, logger *slog.Logger) *LoggingAdapter {
	return &LoggingAdapter{next: next, logger: logger}
}

// Extract delegates to the wrapped adapter and logs the matched strategies.
func (a *LoggingAdapter) Extract(html string, pageURL string) (ex *jobscrape.Extraction, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"site", a.next.Site(),
			"url", pageURL,
			"duration", time.Since(begin),
		}
		if ex != nil {
			attrs = append(attrs, "description_len", len([]rune(ex.Description)))
			for _, field := range []string{
				jobscrape.FieldTitle,
				jobscrape.FieldCompany,
				jobscrape.FieldLocation,
				jobscrape.FieldSalary,
				jobscrape.FieldDescription,
			} {
				if name, ok := ex.Matched[field]; ok {
					attrs = append(attrs, field, name)
				}
			}
		}
		attrs = append(attrs, "err", err)
		a.logger.Debug("extract", attrs...)
	}(time.Now())
	return a.next.Extract(html, pageURL)
}

// Site delegates to the wrapped adapter.
func (a *LoggingAdapter) Site() jobscrape.Site {
	return a.next.Site()
}
