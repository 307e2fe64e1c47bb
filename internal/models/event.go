package models

// Event is one CRM activity record as returned by the events endpoint.
// CreatedBy is nil when the vendor omits the acting user. All other vendor
// fields are irrelevant to the pipeline and dropped at decode time.
type Event struct {
	Type      string `json:"type"`
	CreatedBy *int64 `json:"created_by"`
}

// IsAutomated reports whether the event originates from automation rather
// than a human: no acting user, or an actor outside the known user-id set.
func (e Event) IsAutomated(userIDs map[int64]struct{}) bool {
	if e.CreatedBy == nil {
		return true
	}
	_, known := userIDs[*e.CreatedBy]
	return !known
}

// TopEvent is one entry of a ranked event-type list.
type TopEvent struct {
	Type  string
	Count int
}
