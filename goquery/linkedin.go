package goquery

import "github.com/akmandhania/jobscrape"

// NewLinkedInSpec returns the adapter spec for LinkedIn job pages.
//
// Logged-out job pages use the "top-card-layout" and "show-more-less-html"
// markup; logged-in pages use "jobs-unified-top-card" and
// "jobs-description". Both are covered. Page titles follow
// "Acme hiring Engineer in City | LinkedIn" or "Engineer at Acme | LinkedIn".
func NewLinkedInSpec() AdapterSpec {
	return AdapterSpec{
		Site:    jobscrape.SiteLinkedIn,
		Domains: []string{"linkedin.com"},
		Title: []Strategy{
			Text(`[data-testid="job-details-jobs-unified-top-card-job-title"]`),
			Text(`[class*="jobs-unified-top-card__job-title"]`),
			Text(`h1.top-card-layout__title`),
			Text(`h1[class*="job-title"]`),
			JSONLD(LDTitle),
			TitleJob(),
		},
		Company: []Strategy{
			Text(`[data-testid="job-details-jobs-unified-top-card-company-name"]`),
			Text(`[class*="jobs-unified-top-card__company-name"]`),
			Text(`a.topcard__org-name-link`),
			Text(`[class*="topcard__org-name"]`),
			JSONLD(LDCompany),
			TitleCompany(),
		},
		Location: []Strategy{
			Text(`[class*="jobs-unified-top-card__bullet"]`),
			Text(`span.topcard__flavor--bullet`),
			JSONLD(LDLocation),
		},
		Salary: []Strategy{
			Text(`[class*="compensation__salary"]`),
			Text(`[class*="salary-main-rail"]`),
			JSONLD(LDSalary),
			SalaryPattern(),
		},
		Description: []Strategy{
			Block(`[class*="jobs-description__content"]`, `[class*="jobs-box__html-content"]`),
			Block(`[class*="jobs-description-content__text"]`),
			Block(`.show-more-less-html__markup`, `.show-more-less-html`),
			Block(`[class*="description__text"]`),
			Block(`[data-testid="job-description"]`),
			JSONLD(LDDescription),
		},
	}
}
