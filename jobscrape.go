// Package jobscrape extracts structured job postings from job-board pages.
// It fetches a listing URL, picks a site-specific extraction adapter for the
// host, pulls title, company, location, salary and description out of
// unstable markup, cleans the text and validates that the description is
// usable before handing a JobPosting to the caller.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, sqlite/).
package jobscrape
