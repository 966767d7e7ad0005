package goquery

import "github.com/akmandhania/jobscrape"

// NewCareerBuilderSpec returns the adapter spec for CareerBuilder job
// details pages.
func NewCareerBuilderSpec() AdapterSpec {
	return AdapterSpec{
		Site:    jobscrape.SiteCareerBuilder,
		Domains: []string{"careerbuilder.com"},
		Title: []Strategy{
			Text(`h2.jdp_title_header`),
			Text(`h1[class*="title"]`),
			Text(`[data-testid="job-title"]`),
			JSONLD(LDTitle),
			TitleJob(),
		},
		Company: []Strategy{
			Text(`.data-details > span:first-child`),
			Text(`[class*="company-name"]`),
			JSONLD(LDCompany),
			TitleCompany(),
		},
		Location: []Strategy{
			Text(`.data-details > span:nth-child(2)`),
			Text(`[class*="job-location"]`),
			JSONLD(LDLocation),
		},
		Salary: []Strategy{
			Text(`[class*="salary"]`),
			JSONLD(LDSalary),
			SalaryPattern(),
		},
		Description: []Strategy{
			Block(`#jdp_description`, `.jdp-description-details`),
			Block(`[class*="job-description"]`),
			JSONLD(LDDescription),
		},
	}
}
