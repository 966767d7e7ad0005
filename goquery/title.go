package goquery

import "strings"

// splitTitle splits a page title into job title and company using the
// layouts job boards put in <title>:
//
//	Acme hiring Software Engineer in Austin, TX | LinkedIn
//	Software Engineer at Acme | LinkedIn
//	Software Engineer - Acme - Austin, TX - Indeed.com
//
// Either part may be empty.
func splitTitle(title string) (job, company string) {
	title = stripSiteSuffix(title)

	if c, rest, ok := strings.Cut(title, " hiring "); ok {
		job, _, _ = strings.Cut(rest, " in ")
		return strings.TrimSpace(job), strings.TrimSpace(c)
	}
	if j, c, ok := strings.Cut(title, " at "); ok {
		return strings.TrimSpace(j), strings.TrimSpace(c)
	}
	if parts := strings.Split(title, " - "); len(parts) > 1 {
		return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
	}
	return strings.TrimSpace(title), ""
}

// companyAt returns the company of a "<Title> at <Company>" page title.
func companyAt(title string) string {
	_, c, ok := strings.Cut(stripSiteSuffix(title), " at ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(c)
}

// stripSiteSuffix drops a trailing " | Site" segment.
func stripSiteSuffix(title string) string {
	if i := strings.LastIndex(title, " | "); i > 0 {
		return title[:i]
	}
	return title
}
