package urltemplate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCatalogKeysAndOrder(t *testing.T) {
	template := "https://catalog.example.com/search?start={eop:startDate?}&instrument={eop:instrument?}"

	c := BuildCatalog(template, nil)
	require.Equal(t, 2, c.Len())

	descriptors := c.Descriptors()
	assert.Equal(t, "eop_startDate", descriptors[0].Key)
	assert.Equal(t, "eop:startDate", descriptors[0].CleanTag)
	assert.Equal(t, "{eop:startDate?}", descriptors[0].FullTag)
	assert.Equal(t, "eop_instrument", descriptors[1].Key)
	assert.Equal(t, "{eop:instrument?}", descriptors[1].FullTag)
}

func TestBuildCatalogDuplicatesCollapse(t *testing.T) {
	template := "https://e.com/s?a={searchTerms}&b={searchTerms}"

	c := BuildCatalog(template, nil)
	assert.Equal(t, 1, c.Len())
}

func TestBuildCatalogInferredTypes(t *testing.T) {
	template := "https://e.com/s?start={time:start?}&q={searchTerms?}"

	c := BuildCatalog(template, nil)

	d, ok := c.Get("time_start")
	require.True(t, ok)
	assert.Equal(t, TypeDate, d.Type)

	d, ok = c.Get("searchTerms")
	require.True(t, ok)
	assert.Equal(t, TypeText, d.Type)
}

func TestBuildCatalogMatchedParameter(t *testing.T) {
	template := "https://e.com/s?start={eop:startDate?}"
	params := []TemplateParameter{
		{
			Name:         "start",
			Value:        "{eop:startDate} start time",
			Title:        "Start of the acquisition window",
			Pattern:      `\d{4}-\d{2}-\d{2}`,
			MinInclusive: "2014-01-01",
			MaxInclusive: "2024-12-31",
		},
	}

	c := BuildCatalog(template, params)

	d, ok := c.Get("eop_startDate")
	require.True(t, ok)
	assert.Equal(t, TypeDate, d.Type) // value mentions "time"
	assert.Equal(t, "Start of the acquisition window", d.Title)
	assert.Equal(t, `\d{4}-\d{2}-\d{2}`, d.Pattern)
	assert.Equal(t, "2014-01-01", d.MinInclusive)
	assert.Equal(t, "2024-12-31", d.MaxInclusive)

	assert.Equal(t, map[string]string{"start": "eop_startDate"}, c.ParamNames())
}

func TestBuildCatalogSelectOptions(t *testing.T) {
	template := "https://e.com/s?instrument={eop:instrument?}"
	params := []TemplateParameter{
		{
			Name:  "instrument",
			Value: "{eop:instrument}",
			Options: []Option{
				{Label: "Synthetic Aperture Radar", Value: "SAR"},
				{Value: "OLCI"},
			},
		},
	}

	c := BuildCatalog(template, params)

	d, ok := c.Get("eop_instrument")
	require.True(t, ok)
	assert.Equal(t, TypeSelect, d.Type)
	require.Len(t, d.Options, 2)
	assert.Equal(t, Option{Label: "Synthetic Aperture Radar", Value: "SAR"}, d.Options[0])
	// label falls back to the value when absent
	assert.Equal(t, Option{Label: "OLCI", Value: "OLCI"}, d.Options[1])
}

func TestBuildCatalogFirstMatchingNodeWins(t *testing.T) {
	template := "https://e.com/s?q={searchTerms}"
	params := []TemplateParameter{
		{Name: "q", Value: "{searchTerms}", Title: "first"},
		{Name: "query", Value: "{searchTerms}", Title: "second"},
	}

	c := BuildCatalog(template, params)

	d, ok := c.Get("searchTerms")
	require.True(t, ok)
	assert.Equal(t, "first", d.Title)

	names := c.ParamNames()
	assert.Equal(t, "searchTerms", names["q"])
	assert.NotContains(t, names, "query")
}

func TestBuildCatalogUnmatchedFallsBackToSelf(t *testing.T) {
	template := "https://e.com/s?q={searchTerms}"
	params := []TemplateParameter{
		{Name: "bbox", Value: "{geo:box}"},
		{Name: "broken"}, // no value attribute, cannot match
	}

	c := BuildCatalog(template, params)

	_, ok := c.Get("searchTerms")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"searchTerms": "searchTerms"}, c.ParamNames())
}

func TestBuildCatalogEmptyTemplate(t *testing.T) {
	c := BuildCatalog("", nil)
	assert.Equal(t, 0, c.Len())
	assert.Empty(t, c.ParamNames())
}
