package jobscrape_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/akmandhania/jobscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDefaultCleaner(t *testing.T) *jobscrape.Cleaner {
	t.Helper()
	c, err := jobscrape.NewCleaner(jobscrape.DefaultDenylist(), jobscrape.DefaultMaxDescriptionChars)
	require.NoError(t, err)
	return c
}

func TestCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("strips boilerplate and collapses whitespace", func(t *testing.T) {
		t.Parallel()
		c := newDefaultCleaner(t)

		got := c.Clean("We use cookies to improve your experience.  Senior   Engineer\n\n\n\nShow more")

		assert.Equal(t, "Senior Engineer", got)
	})

	t.Run("keeps single blank line between paragraphs", func(t *testing.T) {
		t.Parallel()
		c := newDefaultCleaner(t)

		got := c.Clean("  About the role  \n\n\n\n\t Responsibilities \n")

		assert.Equal(t, "About the role\n\nResponsibilities", got)
	})

	t.Run("removes sign-in prompts case-insensitively", func(t *testing.T) {
		t.Parallel()
		c := newDefaultCleaner(t)

		got := c.Clean("SIGN IN TO CONTINUE\nBuild reliable systems.")

		assert.Equal(t, "Build reliable systems.", got)
	})

	t.Run("normalizes compatibility characters", func(t *testing.T) {
		t.Parallel()
		c := newDefaultCleaner(t)

		got := c.Clean("ﬁnance team")

		assert.Equal(t, "finance team", got)
	})

	t.Run("is idempotent", func(t *testing.T) {
		t.Parallel()
		c := newDefaultCleaner(t)

		inputs := []string{
			"We use cookies.\n\nJoin now or sign in\n  Senior Engineer at Acme  \n\n\nShow less",
			"Skip to main content\tPrivacy Policy Terms of Service\nBuild things",
			"© 2024 Acme Inc. All rights reserved.\nPowered by Workday",
			strings.Repeat("word ", 2000),
			"Great cafeskip to main content\u0301 role",
		}
		for _, in := range inputs {
			once := c.Clean(in)
			assert.Equal(t, once, c.Clean(once), "input %q", in[:min(len(in), 40)])
		}
	})

	t.Run("composes marks exposed by stripping", func(t *testing.T) {
		t.Parallel()
		c := newDefaultCleaner(t)

		got := c.Clean("Great cafeskip to main content\u0301 role")

		assert.Equal(t, "Great caf\u00e9 role", got)
	})

	t.Run("truncates at word boundary", func(t *testing.T) {
		t.Parallel()
		c, err := jobscrape.NewCleaner(nil, 12)
		require.NoError(t, err)

		assert.Equal(t, "alpha beta", c.Clean("alpha beta gamma"))
		assert.Equal(t, "alpha beta", c.Clean("alpha beta   gamma"))
	})

	t.Run("respects default character budget", func(t *testing.T) {
		t.Parallel()
		c := newDefaultCleaner(t)

		got := c.Clean(strings.Repeat("lorem ipsum ", 1000))

		assert.LessOrEqual(t, utf8.RuneCountInString(got), jobscrape.DefaultMaxDescriptionChars)
		assert.False(t, strings.HasSuffix(got, " "))
	})

	t.Run("zero budget disables truncation", func(t *testing.T) {
		t.Parallel()
		c, err := jobscrape.NewCleaner(nil, 0)
		require.NoError(t, err)

		in := strings.TrimSpace(strings.Repeat("x ", 6000))
		assert.Equal(t, in, c.Clean(in))
	})
}

func TestCleaner_CleanLine(t *testing.T) {
	t.Parallel()
	c := newDefaultCleaner(t)

	assert.Equal(t, "Senior Software Engineer", c.CleanLine("\n  Senior \t Software\nEngineer  "))
}

func TestNewCleaner(t *testing.T) {
	t.Parallel()

	t.Run("rejects invalid pattern", func(t *testing.T) {
		t.Parallel()
		_, err := jobscrape.NewCleaner([]string{"(unclosed"}, 0)
		assert.Equal(t, jobscrape.ECONFIG, jobscrape.ErrorCode(err))
	})

	t.Run("rejects negative budget", func(t *testing.T) {
		t.Parallel()
		_, err := jobscrape.NewCleaner(nil, -1)
		assert.Equal(t, jobscrape.ECONFIG, jobscrape.ErrorCode(err))
	})
}
