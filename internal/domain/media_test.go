package domain

import "testing"

func TestParseMediaType(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want MediaType
	}{
		{"canonical movie", "MOVIE", MediaTypeMovie},
		{"canonical tv show", "TV_SHOW", MediaTypeTVShow},
		{"lowercase", "movie", MediaTypeMovie},
		{"mixed case with spaces", " Tv_Show ", MediaTypeTVShow},
		{"unknown passthrough", "DOCUMENTARY", MediaType("DOCUMENTARY")},
		{"empty", "", MediaType("")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseMediaType(tt.raw); got != tt.want {
				t.Fatalf("ParseMediaType(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestMediaTypeKnown(t *testing.T) {
	if !MediaTypeMovie.Known() || !MediaTypeTVShow.Known() {
		t.Fatalf("canonical types should be known")
	}
	if MediaType("DOCUMENTARY").Known() {
		t.Fatalf("passthrough type should not be known")
	}
}

func TestMediaInputTrimmed(t *testing.T) {
	in := MediaInput{
		Title:    "  Dune ",
		Type:     "movie",
		Director: " Denis Villeneuve ",
		Budget:   " $165M ",
		Location: " Jordan ",
		Duration: " 155 min ",
		YearTime: " 2021 ",
	}

	got := in.Trimmed()
	if got.Title != "Dune" {
		t.Fatalf("Title = %q, want %q", got.Title, "Dune")
	}
	if got.Type != "MOVIE" {
		t.Fatalf("Type = %q, want canonical MOVIE", got.Type)
	}
	if got.Director != "Denis Villeneuve" || got.YearTime != "2021" {
		t.Fatalf("fields not trimmed: %+v", got)
	}
}

func TestMediaInputFieldValues(t *testing.T) {
	in := MediaInput{Title: "Dune", Type: "MOVIE", YearTime: "2021"}
	values := in.FieldValues()
	if values["title"] != "Dune" || values["type"] != "MOVIE" || values["yearTime"] != "2021" {
		t.Fatalf("unexpected field values: %+v", values)
	}
	if _, ok := values["director"]; !ok {
		t.Fatalf("director key missing even when empty")
	}
}
