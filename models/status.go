package models

// Status is the workflow stage of a content item. The set is closed: values
// read from the database that are not listed here normalize to StatusDraft.
type Status string

const (
	StatusDraft             Status = "draft"
	StatusContent           Status = "content"
	StatusClientApproval    Status = "client_approval"
	StatusAdjustments       Status = "adjustments"
	StatusAwaiting          Status = "awaiting"
	StatusApprovedScheduled Status = "approved_scheduled"
	StatusDone              Status = "done"

	// Legacy stages still present on older records. They keep their own board
	// columns so old plans render where users expect them.
	StatusIdea    Status = "idea"
	StatusPlanned Status = "planned"
)

// BoardColumns is the fixed column order of the Kanban board. The first
// column doubles as the fallback bucket for unknown status values.
var BoardColumns = []Status{
	StatusDraft,
	StatusContent,
	StatusClientApproval,
	StatusAdjustments,
	StatusAwaiting,
	StatusApprovedScheduled,
	StatusDone,
	StatusIdea,
	StatusPlanned,
}

// StatusMeta carries the display attributes client UIs use to paint badges.
type StatusMeta struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusMeta = map[Status]StatusMeta{
	StatusDraft:             {Label: "Draft", Color: "#666666"},
	StatusContent:           {Label: "In Production", Color: "#F59E0B"},
	StatusClientApproval:    {Label: "Client Approval", Color: "#8B5CF6"},
	StatusAdjustments:       {Label: "Adjustments", Color: "#EF4444"},
	StatusAwaiting:          {Label: "Awaiting", Color: "#3B82F6"},
	StatusApprovedScheduled: {Label: "Approved & Scheduled", Color: "#D4A017"},
	StatusDone:              {Label: "Done", Color: "#10B981"},
	StatusIdea:              {Label: "Idea", Color: "#9CA3AF"},
	StatusPlanned:           {Label: "Planned", Color: "#60A5FA"},
}

// Meta returns the display attributes for s, falling back to the draft meta.
func (s Status) Meta() StatusMeta {
	if m, ok := statusMeta[s]; ok {
		return m
	}
	return statusMeta[StatusDraft]
}

// Known reports whether s is part of the closed enumeration.
func (s Status) Known() bool {
	_, ok := statusMeta[s]
	return ok
}

// NormalizeStatus maps arbitrary stored values onto the closed enumeration.
// Unknown or empty values fall back to StatusDraft.
func NormalizeStatus(raw string) Status {
	s := Status(raw)
	if s.Known() {
		return s
	}
	return StatusDraft
}

// ContentType is the fixed enumeration of plannable content formats.
type ContentType string

const (
	TypeCarousel ContentType = "carousel"
	TypeReels    ContentType = "reels"
	TypeStories  ContentType = "stories"
	TypeStatic   ContentType = "static"
	TypeVideo    ContentType = "video"
)

// ContentTypes lists all valid content formats in display order.
var ContentTypes = []ContentType{TypeCarousel, TypeReels, TypeStories, TypeStatic, TypeVideo}

// ValidContentType reports whether t is one of the known formats.
func ValidContentType(t ContentType) bool {
	for _, ct := range ContentTypes {
		if ct == t {
			return true
		}
	}
	return false
}
