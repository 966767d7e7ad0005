package goquery

import "github.com/akmandhania/jobscrape"

// NewIndeedSpec returns the adapter spec for Indeed "viewjob" pages.
func NewIndeedSpec() AdapterSpec {
	return AdapterSpec{
		Site:    jobscrape.SiteIndeed,
		Domains: []string{"indeed.com", "indeed.co.uk", "indeed.ca"},
		Title: []Strategy{
			Text(`h1[data-testid="jobsearch-JobInfoHeader-title"]`),
			Text(`h1[class*="jobsearch-JobInfoHeader-title"]`),
			JSONLD(LDTitle),
			Text(`h1[class*="title"]`),
			Text(`[data-testid="job-title"]`),
			TitleJob(),
		},
		Company: []Strategy{
			Text(`[data-testid="inlineHeader-companyName"]`),
			Text(`[data-testid="jobsearch-JobInfoHeader-companyName"]`),
			Text(`[data-company-name]`),
			Text(`[class*="company-name"]`),
			JSONLD(LDCompany),
			TitleCompany(),
		},
		Location: []Strategy{
			Text(`[data-testid="inlineHeader-companyLocation"]`),
			Text(`[data-testid="jobsearch-JobInfoHeader-companyLocation"]`),
			Text(`[data-testid="job-location"]`),
			JSONLD(LDLocation),
		},
		Salary: []Strategy{
			Text(`#salaryInfoAndJobType`),
			Text(`[data-testid*="salary"]`),
			JSONLD(LDSalary),
			SalaryPattern(),
		},
		Description: []Strategy{
			Block(`#jobDescriptionText`),
			Block(`[data-testid="jobsearch-JobComponent-description"]`),
			Block(`[class*="jobsearch-JobComponent-description"]`),
			Block(`[class*="job-description"]`, `[data-testid="job-description"]`),
			JSONLD(LDDescription),
		},
	}
}
