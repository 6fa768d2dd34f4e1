// Package selector maps job-posting URLs to the container rules used to
// locate the description element on each ATS platform.
package selector

import "strings"

// ContainerRule locates one candidate description container: an element with
// the given tag whose attribute equals Value. An empty Attr matches the first
// element with that tag regardless of attributes (Workday's bare <section>).
// Class rules use token containment, so `class="job posting"` satisfies
// {Tag: "div", Attr: "class", Value: "job"}.
type ContainerRule struct {
	Tag   string
	Attr  string
	Value string
}

// DomainRules binds a domain marker substring to its ordered rule list.
type DomainRules struct {
	Marker string
	Rules  []ContainerRule
}

// Table is consulted in declaration order; the first marker found in the
// lowercased URL wins and no later entries are considered. Rules within an
// entry are tried in order until one matches an element.
var Table = []DomainRules{
	{
		Marker: "icims.com",
		Rules: []ContainerRule{
			{Tag: "div", Attr: "id", Value: "jobcontent"},
		},
	},
	{
		Marker: "myworkdayjobs.com",
		Rules: []ContainerRule{
			{Tag: "div", Attr: "data-automation-id", Value: "jobPostingDescription"},
			{Tag: "div", Attr: "data-automation-id", Value: "richTextArea"},
			{Tag: "div", Attr: "role", Value: "text"},
			{Tag: "section"},
		},
	},
	{
		Marker: "greenhouse.io",
		Rules: []ContainerRule{
			{Tag: "div", Attr: "class", Value: "job"},
		},
	},
	{
		Marker: "ashbyhq.com",
		Rules: []ContainerRule{
			{Tag: "div", Attr: "data-testid", Value: "JobDescription"},
		},
	},
	{
		Marker: "lever.co",
		Rules: []ContainerRule{
			{Tag: "div", Attr: "class", Value: "posting"},
		},
	},
	{
		Marker: "smartrecruiters.com",
		Rules: []ContainerRule{
			{Tag: "div", Attr: "class", Value: "job-sections"},
		},
	},
	{
		Marker: "bamboohr.com",
		Rules: []ContainerRule{
			{Tag: "div", Attr: "id", Value: "content"},
		},
	},
}

// Lookup returns the rule list for the first domain marker contained in the
// lowercased URL, or nil when no platform matches (generic fallback applies).
func Lookup(url string) []ContainerRule {
	domain := strings.ToLower(url)
	for _, entry := range Table {
		if strings.Contains(domain, entry.Marker) {
			return entry.Rules
		}
	}
	return nil
}
