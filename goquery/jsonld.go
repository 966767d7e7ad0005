package goquery

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// findJobPostings decodes every application/ld+json script and collects the
// objects typed as schema.org JobPosting, including those nested in @graph.
func findJobPostings(doc *goquery.Document) []map[string]any {
	var out []map[string]any
	doc.Find(`script[type="application/ld+json"]`).Each(func(_ int, sel *goquery.Selection) {
		var payload any
		if err := json.Unmarshal([]byte(strings.TrimSpace(sel.Text())), &payload); err != nil {
			return
		}
		collectJobPostings(payload, &out)
	})
	return out
}

func collectJobPostings(payload any, out *[]map[string]any) {
	switch t := payload.(type) {
	case map[string]any:
		if isJobPostingType(t["@type"]) {
			*out = append(*out, t)
		}
		if graph, ok := t["@graph"].([]any); ok {
			for _, item := range graph {
				collectJobPostings(item, out)
			}
		}
	case []any:
		for _, item := range t {
			collectJobPostings(item, out)
		}
	}
}

func isJobPostingType(t any) bool {
	switch v := t.(type) {
	case string:
		return v == "JobPosting"
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "JobPosting" {
				return true
			}
		}
	}
	return false
}

func stringField(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case map[string]any:
		if s, ok := t["@value"].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func orgName(v any) string {
	if name := stringField(v); name != "" {
		return name
	}
	if org, ok := v.(map[string]any); ok {
		return stringField(org["name"])
	}
	return ""
}

func parseLocation(v any) string {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case []any:
		for _, item := range t {
			if loc := parseLocation(item); loc != "" {
				return loc
			}
		}
	case map[string]any:
		if addr, ok := t["address"].(map[string]any); ok {
			return joinParts(
				stringField(addr["addressLocality"]),
				stringField(addr["addressRegion"]),
				orgName(addr["addressCountry"]),
			)
		}
		if name := stringField(t["name"]); name != "" {
			return name
		}
	}
	return ""
}

// parseSalary renders a MonetaryAmount such as
// {"currency":"USD","value":{"minValue":100000,"maxValue":150000,"unitText":"YEAR"}}
// as "USD 100000-150000 per YEAR".
func parseSalary(v any) string {
	if s := stringField(v); s != "" {
		return s
	}
	amount, ok := v.(map[string]any)
	if !ok {
		return ""
	}
	currency := stringField(amount["currency"])

	var value, unit string
	switch q := amount["value"].(type) {
	case map[string]any:
		unit = stringField(q["unitText"])
		lo, hi := stringField(q["minValue"]), stringField(q["maxValue"])
		switch {
		case lo != "" && hi != "" && lo != hi:
			value = lo + "-" + hi
		case lo != "":
			value = lo
		case hi != "":
			value = hi
		default:
			value = stringField(q["value"])
		}
	default:
		value = stringField(q)
	}
	if value == "" {
		return ""
	}

	out := joinWords(currency, value)
	if unit != "" {
		out = fmt.Sprintf("%s per %s", out, unit)
	}
	return out
}

func joinParts(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ", ")
}

func joinWords(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
