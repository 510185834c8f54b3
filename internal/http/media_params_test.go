package httpserver

import (
	"net/url"
	"testing"
)

func TestBuildMediaListParams(t *testing.T) {
	values, _ := url.ParseQuery("page=3&limit=25&search= nolan &type=MOVIE&year= 2010 ")

	params, err := buildMediaListParams(values)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Page != 3 {
		t.Fatalf("page not parsed: %d", params.Page)
	}
	if params.Limit != 25 {
		t.Fatalf("limit not parsed: %d", params.Limit)
	}
	if params.Search != "nolan" {
		t.Fatalf("search not trimmed: %q", params.Search)
	}
	if params.Type != "MOVIE" {
		t.Fatalf("type parse failed: %q", params.Type)
	}
	if params.Year != "2010" {
		t.Fatalf("year not trimmed: %q", params.Year)
	}
}

func TestBuildMediaListParams_Defaults(t *testing.T) {
	params, err := buildMediaListParams(url.Values{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if params.Page != 1 || params.Limit != 10 {
		t.Fatalf("defaults = page %d limit %d, want 1/10", params.Page, params.Limit)
	}
	if params.Search != "" || params.Type != "" || params.Year != "" {
		t.Fatalf("filters should default empty: %+v", params)
	}
}

func TestBuildMediaListParams_InvalidValues(t *testing.T) {
	cases := []string{
		"page=abc",
		"page=0",
		"page=-1",
		"limit=abc",
		"limit=0",
	}
	for _, raw := range cases {
		values, _ := url.ParseQuery(raw)
		if _, err := buildMediaListParams(values); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func FuzzBuildMediaListParams(f *testing.F) {
	seeds := []string{
		"search=Inception&type=MOVIE&year=2010",
		"page=abc",
		"limit=200",
		"type=ALL",
		"",
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		values, err := url.ParseQuery(raw)
		if err != nil {
			return
		}
		_, _ = buildMediaListParams(values)
	})
}
