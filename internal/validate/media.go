package validate

// Media is the schema applied before every mutating media operation. All
// seven writable fields are required.
var Media = NewSchema(
	Required("title", "Title"),
	Required("type", "Type"),
	Required("director", "Director"),
	Required("budget", "Budget"),
	Required("location", "Location"),
	Required("duration", "Duration"),
	Required("yearTime", "Year/Time"),
)
