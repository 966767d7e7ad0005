package goquery_test

import (
	"testing"

	"github.com/akmandhania/jobscrape"
	"github.com/akmandhania/jobscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultRegistry(t *testing.T) *goquery.Registry {
	t.Helper()
	r, err := goquery.NewDefaultRegistry(goquery.NewGenericAdapter())
	require.NoError(t, err)
	return r
}

func TestRegistry_Lookup(t *testing.T) {
	t.Parallel()

	r := newDefaultRegistry(t)

	tests := []struct {
		url  string
		want jobscrape.Site
	}{
		{"https://www.linkedin.com/jobs/view/123", jobscrape.SiteLinkedIn},
		{"https://linkedin.com/jobs/view/123", jobscrape.SiteLinkedIn},
		{"https://uk.linkedin.com/jobs/view/123", jobscrape.SiteLinkedIn},
		{"https://WWW.LINKEDIN.COM/jobs/view/123", jobscrape.SiteLinkedIn},
		{"https://www.indeed.com/viewjob?jk=abc", jobscrape.SiteIndeed},
		{"https://uk.indeed.com/viewjob?jk=abc", jobscrape.SiteIndeed},
		{"https://www.indeed.co.uk/viewjob?jk=abc", jobscrape.SiteIndeed},
		{"https://www.glassdoor.com/job-listing/x", jobscrape.SiteGlassdoor},
		{"https://www.monster.com/job-openings/x", jobscrape.SiteMonster},
		{"https://www.careerbuilder.com/job/x", jobscrape.SiteCareerBuilder},
		{"https://notlinkedin.com/jobs/1", jobscrape.SiteGeneric},
		{"https://jobs.acme.com/1", jobscrape.SiteGeneric},
		{"not a url at all", jobscrape.SiteGeneric},
		{"://bad", jobscrape.SiteGeneric},
		{"", jobscrape.SiteGeneric},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, r.Lookup(tt.url).Site())
		})
	}
}

func TestRegistry_Lookup_IsDeterministic(t *testing.T) {
	t.Parallel()

	r := newDefaultRegistry(t)
	for range 20 {
		assert.Equal(t, jobscrape.SiteIndeed, r.Lookup("https://ca.indeed.com/viewjob").Site())
	}
}

func TestRegistry_Generic(t *testing.T) {
	t.Parallel()

	generic := goquery.NewGenericAdapter()
	r, err := goquery.NewRegistry(generic)
	require.NoError(t, err)

	assert.Same(t, generic, r.Generic())
	assert.Same(t, generic, r.Lookup("https://www.linkedin.com/jobs/view/1"), "no specs registered")
}

func TestRegistry_List(t *testing.T) {
	t.Parallel()

	r := newDefaultRegistry(t)

	assert.Equal(t, []jobscrape.Site{
		jobscrape.SiteLinkedIn,
		jobscrape.SiteIndeed,
		jobscrape.SiteGlassdoor,
		jobscrape.SiteMonster,
		jobscrape.SiteCareerBuilder,
	}, r.List())
}

func TestRegistry_Domains(t *testing.T) {
	t.Parallel()

	r := newDefaultRegistry(t)

	assert.Equal(t, []string{"linkedin.com"}, r.Domains(jobscrape.SiteLinkedIn))
	assert.Nil(t, r.Domains(jobscrape.SiteGeneric))
}

func TestNewRegistry(t *testing.T) {
	t.Parallel()

	t.Run("requires generic adapter", func(t *testing.T) {
		t.Parallel()
		_, err := goquery.NewRegistry(nil)
		assert.Equal(t, jobscrape.ECONFIG, jobscrape.ErrorCode(err))
	})

	t.Run("rejects domain claimed twice", func(t *testing.T) {
		t.Parallel()
		other := goquery.NewIndeedSpec()
		other.Site = "indeed-clone"
		_, err := goquery.NewRegistry(goquery.NewGenericAdapter(), goquery.NewIndeedSpec(), other)
		assert.Equal(t, jobscrape.ECONFIG, jobscrape.ErrorCode(err))
	})

	t.Run("rejects site registered twice", func(t *testing.T) {
		t.Parallel()
		other := goquery.NewMonsterSpec()
		other.Domains = []string{"monster.example"}
		_, err := goquery.NewRegistry(goquery.NewGenericAdapter(), goquery.NewMonsterSpec(), other)
		assert.Equal(t, jobscrape.ECONFIG, jobscrape.ErrorCode(err))
	})

	t.Run("rejects invalid spec", func(t *testing.T) {
		t.Parallel()
		spec := goquery.NewLinkedInSpec()
		spec.Domains = []string{"https://linkedin.com/"}
		_, err := goquery.NewRegistry(goquery.NewGenericAdapter(), spec)
		assert.Equal(t, jobscrape.ECONFIG, jobscrape.ErrorCode(err))
	})
}
