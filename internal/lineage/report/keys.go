package report

// Message keys rendered through the x/text message printer.
const (
	TotalKey            = "report.total"
	DecadeLineKey       = "report.decade_line"
	DuplicatesHeaderKey = "report.duplicates_header"
	DuplicateLineKey    = "report.duplicate_line"

	ReadingFilesKey = "startup.reading_files"
	GeneratingKey   = "startup.generating"

	MenuPromptKey   = "menu.prompt"
	MenuInvalidKey  = "menu.invalid"
	MenuShutdownKey = "menu.shutdown"
)
