package encoding

// Outcome is the result of processing one work item.
type Outcome string

const (
	OutcomeSkippedSameFormat        Outcome = "skipped_same_format"
	OutcomeSkippedDestinationExists Outcome = "skipped_destination_exists"
	OutcomeConverted                Outcome = "converted"
	OutcomeFailed                   Outcome = "failed"
	OutcomeSourceUnsupported        Outcome = "source_unsupported"
)

// Outcomes lists every outcome in reporting order.
var Outcomes = []Outcome{
	OutcomeConverted,
	OutcomeSkippedSameFormat,
	OutcomeSkippedDestinationExists,
	OutcomeSourceUnsupported,
	OutcomeFailed,
}

// Skipped reports whether the outcome left the file untouched on purpose.
func (o Outcome) Skipped() bool {
	return o == OutcomeSkippedSameFormat || o == OutcomeSkippedDestinationExists
}

func (o Outcome) String() string {
	return string(o)
}
