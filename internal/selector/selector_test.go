package selector

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantRules int
		wantFirst ContainerRule
	}{
		{
			name:      "icims",
			url:       "https://careers.icims.com/jobs/12345/login",
			wantRules: 1,
			wantFirst: ContainerRule{Tag: "div", Attr: "id", Value: "jobcontent"},
		},
		{
			name:      "workday has four rules in order",
			url:       "https://allegion.wd5.myworkdayjobs.com/en-US/careers/job/x",
			wantRules: 4,
			wantFirst: ContainerRule{Tag: "div", Attr: "data-automation-id", Value: "jobPostingDescription"},
		},
		{
			name:      "marker match is case insensitive",
			url:       "https://boards.GREENHOUSE.io/acme/jobs/1",
			wantRules: 1,
			wantFirst: ContainerRule{Tag: "div", Attr: "class", Value: "job"},
		},
		{
			name:      "lever",
			url:       "https://jobs.lever.co/acme/abc",
			wantRules: 1,
			wantFirst: ContainerRule{Tag: "div", Attr: "class", Value: "posting"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := Lookup(tt.url)
			assert.Len(t, rules, tt.wantRules)
			assert.Equal(t, tt.wantFirst, rules[0])
		})
	}
}

func TestLookupUnknownDomain(t *testing.T) {
	assert.Nil(t, Lookup("https://example.com/jobs/1"))
}

func TestLookupFirstMarkerWins(t *testing.T) {
	// A URL containing two markers resolves to the earlier table entry.
	rules := Lookup("https://careers.icims.com/?ref=greenhouse.io")
	assert.Equal(t, "jobcontent", rules[0].Value)
}

func TestWorkdaySectionFallbackHasNoAttr(t *testing.T) {
	rules := Lookup("https://x.myworkdayjobs.com/job")
	last := rules[len(rules)-1]
	assert.Equal(t, "section", last.Tag)
	assert.Empty(t, last.Attr)
}
