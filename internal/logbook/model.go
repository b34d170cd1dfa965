package logbook

import "time"

// Keywords that mark the semantic kind of a row when they lead its description.
const (
	KeywordStart      = "START"
	KeywordStop       = "STOP"
	KeywordPauseStart = "PAUSE_START"
	KeywordPauseStop  = "PAUSE_STOP"
	KeywordPause      = "PAUSE"
)

const (
	// EmptyDescription stands in for a missing description so every row keeps three fields.
	EmptyDescription = "-"
	// Separator is written on its own line whenever the log crosses into a new day.
	Separator = "-----"
)

// Row is a single parsed line of the log file.
type Row struct {
	Date     time.Time
	Category string
	Desc     string

	// Kind, Label and Span are derived from Desc by Classify.
	Kind  Kind
	Label string
	// Span holds the parsed duration of a KindPauseSingle row. It is nil for
	// every other kind and when the duration token is invalid.
	Span *TimeSpan
}

// Kind expresses what a row means for time accounting.
type Kind uint8

const (
	// KindPlain is an ordinary log entry.
	KindPlain Kind = iota
	// KindActivityStart opens a named activity.
	KindActivityStart
	// KindActivityStop closes a named activity.
	KindActivityStop
	// KindPauseStart opens a pause interval.
	KindPauseStart
	// KindPauseStop closes the pending pause interval.
	KindPauseStop
	// KindPauseSingle records a pause of fixed length at a single instant.
	KindPauseSingle
)

// IsPause reports whether rows of this kind only contribute to paused time.
func (k Kind) IsPause() bool {
	return k == KindPauseStart || k == KindPauseStop || k == KindPauseSingle
}

func (k Kind) String() string {
	switch k {
	case KindActivityStart:
		return "start"
	case KindActivityStop:
		return "stop"
	case KindPauseStart:
		return "pause-start"
	case KindPauseStop:
		return "pause-stop"
	case KindPauseSingle:
		return "pause"
	default:
		return "entry"
	}
}

// TimeSpan is a compact duration such as "30min" or "1h".
type TimeSpan struct {
	Hour int
	Min  int
}
