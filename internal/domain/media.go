package domain

import (
	"strings"
	"time"
)

// MediaType categorises a record. Two values are canonical, but the store
// accepts arbitrary text so older rows with free-form types keep working.
type MediaType string

const (
	MediaTypeMovie  MediaType = "MOVIE"
	MediaTypeTVShow MediaType = "TV_SHOW"
)

// ParseMediaType canonicalises the two known categories case-insensitively
// and passes any other value through unchanged.
func ParseMediaType(raw string) MediaType {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case string(MediaTypeMovie):
		return MediaTypeMovie
	case string(MediaTypeTVShow):
		return MediaTypeTVShow
	default:
		return MediaType(strings.TrimSpace(raw))
	}
}

// Known reports whether the type is one of the canonical categories.
func (t MediaType) Known() bool {
	return t == MediaTypeMovie || t == MediaTypeTVShow
}

// MediaRecord represents the canonical media entity in the database/service.
type MediaRecord struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Type      MediaType `json:"type"`
	Director  string    `json:"director"`
	Budget    string    `json:"budget"`
	Location  string    `json:"location"`
	Duration  string    `json:"duration"`
	YearTime  string    `json:"yearTime"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MediaInput carries the writable fields of a record, without identifier or
// timestamps. Create and full-record update both consume it.
type MediaInput struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Director string `json:"director"`
	Budget   string `json:"budget"`
	Location string `json:"location"`
	Duration string `json:"duration"`
	YearTime string `json:"yearTime"`
}

// FieldValues exposes the input as a field/value map for schema validation.
// Keys match the JSON wire names.
func (in MediaInput) FieldValues() map[string]string {
	return map[string]string{
		"title":    in.Title,
		"type":     in.Type,
		"director": in.Director,
		"budget":   in.Budget,
		"location": in.Location,
		"duration": in.Duration,
		"yearTime": in.YearTime,
	}
}

// Trimmed returns a copy with surrounding whitespace removed from every
// field and the type canonicalised.
func (in MediaInput) Trimmed() MediaInput {
	return MediaInput{
		Title:    strings.TrimSpace(in.Title),
		Type:     string(ParseMediaType(in.Type)),
		Director: strings.TrimSpace(in.Director),
		Budget:   strings.TrimSpace(in.Budget),
		Location: strings.TrimSpace(in.Location),
		Duration: strings.TrimSpace(in.Duration),
		YearTime: strings.TrimSpace(in.YearTime),
	}
}
