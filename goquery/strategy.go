package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strategy is a named rule producing a candidate value for one field.
// An empty result means the rule did not apply.
type Strategy struct {
	Name    string
	Extract func(p *Page) string
}

// Text returns the single-line text of the first element matching css that
// has any text.
func Text(css string) Strategy {
	return Strategy{
		Name: "css:" + css,
		Extract: func(p *Page) string {
			var out string
			p.Doc.Find(css).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
				out = squash(sel.Text())
				return out == ""
			})
			return out
		},
	}
}

// Meta returns the content of the first matching <meta> name or property.
func Meta(keys ...string) Strategy {
	return Strategy{
		Name: "meta:" + strings.Join(keys, ","),
		Extract: func(p *Page) string {
			return p.Meta(keys...)
		},
	}
}

// PageTitle returns the whole <title> text.
func PageTitle() Strategy {
	return Strategy{
		Name:    "title",
		Extract: func(p *Page) string { return p.Title() },
	}
}

// TitleJob returns the job title part of the <title> text.
func TitleJob() Strategy {
	return Strategy{
		Name: "title:job",
		Extract: func(p *Page) string {
			job, _ := splitTitle(p.Title())
			return job
		},
	}
}

// TitleCompany returns the company part of the <title> text.
func TitleCompany() Strategy {
	return Strategy{
		Name: "title:company",
		Extract: func(p *Page) string {
			_, company := splitTitle(p.Title())
			return company
		},
	}
}

// JSON-LD JobPosting properties understood by JSONLD.
const (
	LDTitle       = "title"
	LDCompany     = "hiringOrganization"
	LDLocation    = "jobLocation"
	LDSalary      = "baseSalary"
	LDDescription = "description"
)

// JSONLD returns a property of the first embedded JobPosting that has it.
// HTML in the description property is reduced to block text.
func JSONLD(property string) Strategy {
	return Strategy{
		Name: "jsonld:" + property,
		Extract: func(p *Page) string {
			for _, posting := range p.JobPostings() {
				if v := jsonLDValue(posting, property); v != "" {
					return v
				}
			}
			return ""
		},
	}
}

func jsonLDValue(posting map[string]any, property string) string {
	v := posting[property]
	switch property {
	case LDCompany:
		return orgName(v)
	case LDLocation:
		if loc := parseLocation(v); loc != "" {
			return loc
		}
		if stringField(posting["jobLocationType"]) == "TELECOMMUTE" {
			return "Remote"
		}
		return ""
	case LDSalary:
		if s := parseSalary(v); s != "" {
			return s
		}
		return parseSalary(posting["estimatedSalary"])
	case LDDescription:
		raw := stringField(v)
		if raw == "" {
			return ""
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
		if err != nil {
			return raw
		}
		return BlockText(doc.Find("body"))
	default:
		return stringField(v)
	}
}

var salaryPattern = regexp.MustCompile(
	`[$£€]\s?\d[\d,.]*\s?[kK]?` +
		`(?:\s?(?:-|–|to)\s?[$£€]?\s?\d[\d,.]*\s?[kK]?)?` +
		`(?:\s?(?:/|per)\s?(?:hour|hr|year|yr|annum|month|mo)\b)?`)

// SalaryPattern finds the first currency amount or range in the body text,
// such as "$120,000 - $150,000", "$50/hr" or "£40k".
func SalaryPattern() Strategy {
	return Strategy{
		Name: "salary:pattern",
		Extract: func(p *Page) string {
			return strings.TrimSpace(salaryPattern.FindString(squash(BlockText(p.Doc.Find("body")))))
		},
	}
}

// Block returns the multi-line text of the element with the most text among
// all elements matching any of the selectors. Selectors such as
// [class*="description"] often match small labels before the real
// container, so size decides.
func Block(css ...string) Strategy {
	joined := strings.Join(css, ", ")
	return Strategy{
		Name: "block:" + joined,
		Extract: func(p *Page) string {
			return longestBlock(p.Doc.Find(joined))
		},
	}
}

func longestBlock(sel *goquery.Selection) string {
	var best string
	bestLen := 0
	sel.Each(func(_ int, s *goquery.Selection) {
		text := BlockText(s)
		if n := textLen(text); n > bestLen {
			best, bestLen = text, n
		}
	})
	return best
}
