package global

var (
	NoColor bool
	NoStyle bool
	Verbose bool
)
