package picker

// Mode is the active view of a picker session. Exactly one is active.
type Mode int

const (
	Calendar   Mode = iota // month grid
	YearPicker             // year grid
	TextEntry              // typed date
)

func (m Mode) String() string {
	switch m {
	case Calendar:
		return "calendar"
	case YearPicker:
		return "year_picker"
	case TextEntry:
		return "text_entry"
	default:
		return "unknown"
	}
}
