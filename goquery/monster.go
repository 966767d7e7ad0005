package goquery

import "github.com/akmandhania/jobscrape"

// NewMonsterSpec returns the adapter spec for Monster job pages.
func NewMonsterSpec() AdapterSpec {
	return AdapterSpec{
		Site:    jobscrape.SiteMonster,
		Domains: []string{"monster.com", "monster.co.uk", "monster.ca"},
		Title: []Strategy{
			Text(`[data-testid="jobTitle"]`),
			Text(`h1[class*="JobViewTitle"]`),
			Text(`h1[class*="title"]`),
			JSONLD(LDTitle),
			TitleJob(),
		},
		Company: []Strategy{
			Text(`[data-testid="company"]`),
			Text(`[class*="JobViewHeaderCompany"]`),
			Text(`[class*="company-name"]`),
			JSONLD(LDCompany),
			TitleCompany(),
		},
		Location: []Strategy{
			Text(`[data-testid="jobDetailLocation"]`),
			Text(`[class*="job-location"]`),
			JSONLD(LDLocation),
		},
		Salary: []Strategy{
			Text(`[data-testid="jobDetailSalary"]`),
			Text(`[class*="salary"]`),
			JSONLD(LDSalary),
			SalaryPattern(),
		},
		Description: []Strategy{
			Block(`[data-testid="svx-description-container-inner"]`),
			Block(`[class*="DescriptionContainer"]`, `#JobDescription`),
			Block(`[class*="job-description"]`),
			JSONLD(LDDescription),
		},
	}
}
