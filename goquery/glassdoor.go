package goquery

import "github.com/akmandhania/jobscrape"

// NewGlassdoorSpec returns the adapter spec for Glassdoor job listings.
// Class names carry build hashes (JobDetails_jobTitle__x1y2z), hence the
// substring matches.
func NewGlassdoorSpec() AdapterSpec {
	return AdapterSpec{
		Site:    jobscrape.SiteGlassdoor,
		Domains: []string{"glassdoor.com", "glassdoor.co.uk", "glassdoor.ca"},
		Title: []Strategy{
			Text(`[data-test="job-title"]`),
			Text(`h1[class*="JobDetails_jobTitle"]`),
			Text(`h1[class*="job-title"]`),
			JSONLD(LDTitle),
			TitleJob(),
		},
		Company: []Strategy{
			Text(`[data-test="employer-name"]`),
			Text(`[class*="EmployerProfile_employerName"]`),
			Text(`[class*="employer-name"]`),
			JSONLD(LDCompany),
			TitleCompany(),
		},
		Location: []Strategy{
			Text(`[data-test="location"]`),
			Text(`[class*="JobDetails_location"]`),
			JSONLD(LDLocation),
		},
		Salary: []Strategy{
			Text(`[data-test="detailSalary"]`),
			Text(`[class*="SalaryEstimate_averageEstimate"]`),
			JSONLD(LDSalary),
			SalaryPattern(),
		},
		Description: []Strategy{
			Block(`[class*="JobDetails_jobDescription"]`),
			Block(`#JobDescriptionContainer`, `[class*="jobDescriptionContent"]`),
			Block(`[class*="job-description"]`),
			JSONLD(LDDescription),
		},
	}
}
