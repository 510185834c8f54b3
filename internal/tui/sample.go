package tui

import (
	"time"

	"github.com/mediashelf/mediashelf/internal/domain"
)

// sampleRecords is the demonstration fallback shown when the very first
// load fails with nothing on screen yet.
func sampleRecords() []domain.MediaRecord {
	now := time.Now().UTC()
	return []domain.MediaRecord{
		{
			ID:        1,
			Title:     "Inception",
			Type:      domain.MediaTypeMovie,
			Director:  "Christopher Nolan",
			Budget:    "$160M",
			Location:  "LA, Paris",
			Duration:  "148 min",
			YearTime:  "2010",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        2,
			Title:     "Breaking Bad",
			Type:      domain.MediaTypeTVShow,
			Director:  "Vince Gilligan",
			Budget:    "$3M/ep",
			Location:  "Albuquerque",
			Duration:  "49 min/ep",
			YearTime:  "2008-2013",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}
