package readability_test

import (
	"testing"

	"github.com/akmandhania/jobscrape"
	"github.com/akmandhania/jobscrape/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements jobscrape.Extractor at compile time.
var _ jobscrape.Extractor = (*readability.Extractor)(nil)

const jobPage = `<!DOCTYPE html>
<html>
<head>
<title>Senior Backend Engineer - Initech Careers</title>
<meta property="og:title" content="Senior Backend Engineer">
</head>
<body>
<nav class="site-nav">
<ul>
<li><a href="/">Home</a></li>
<li><a href="/careers">Careers</a></li>
<li><a href="/about">About us</a></li>
</ul>
</nav>
<article>
<h1>Senior Backend Engineer</h1>
<p>Initech is looking for a senior backend engineer to join the payments team. You will design and operate the services that move money for thousands of small businesses every day.</p>
<p>You will work closely with product managers and designers, own services from design to production, and take part in a humane on-call rotation shared across the whole team.</p>
<h2>Requirements</h2>
<p>Five or more years building distributed systems in Go or a similar language, solid knowledge of relational databases, and experience running services in production.</p>
<p>We offer a competitive salary, remote-friendly working hours, a yearly learning budget and generous parental leave for every member of the team.</p>
</article>
<footer>
<p>Copyright 2026 Initech Corporation. Unrelated footer words.</p>
</footer>
</body>
</html>`

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(jobPage)

		require.NoError(t, err)
		assert.Contains(t, result.Title, "Senior Backend Engineer")
	})

	t.Run("extracts main content as text", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(jobPage)

		require.NoError(t, err)
		assert.Contains(t, result.Text, "join the payments team")
		assert.Contains(t, result.Text, "generous parental leave")
		assert.NotContains(t, result.Text, "<p>")
	})

	t.Run("drops navigation and footer", func(t *testing.T) {
		t.Parallel()

		result, err := readability.NewExtractor().Extract(jobPage)

		require.NoError(t, err)
		assert.NotContains(t, result.Text, "About us")
		assert.NotContains(t, result.Text, "Unrelated footer words")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := readability.NewExtractor().Extract("  ")

		require.Error(t, err)
		assert.Equal(t, jobscrape.EPARSE, jobscrape.ErrorCode(err))
	})
}
