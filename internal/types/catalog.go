package types

// CatalogEntry pairs a domain value with its dashboard presentation metadata.
// The UI owns colors; the service only ships them so every client renders the
// same palette.
type CatalogEntry struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Color       string `json:"color"`
	Description string `json:"description"`
}

var StatusCatalog = []CatalogEntry{
	{ID: string(StatusPending), Label: "Pending", Color: "#f59e0b", Description: "Received, waiting for an editor"},
	{ID: string(StatusInProgress), Label: "In Progress", Color: "#3b82f6", Description: "Editing underway"},
	{ID: string(StatusQualityCheck), Label: "Quality Check", Color: "#8b5cf6", Description: "Under review before handoff"},
	{ID: string(StatusRevision), Label: "Revision", Color: "#f97316", Description: "Returned for rework"},
	{ID: string(StatusCompleted), Label: "Completed", Color: "#10b981", Description: "Editing finished"},
	{ID: string(StatusDelivered), Label: "Delivered", Color: "#059669", Description: "Files handed to the customer"},
	{ID: string(StatusCancelled), Label: "Cancelled", Color: "#6b7280", Description: "Closed without delivery"},
}

var PriorityCatalog = []CatalogEntry{
	{ID: string(PriorityLow), Label: "Low", Color: "#9ca3af", Description: "No deadline pressure"},
	{ID: string(PriorityNormal), Label: "Normal", Color: "#3b82f6", Description: "Standard turnaround"},
	{ID: string(PriorityHigh), Label: "High", Color: "#f59e0b", Description: "Ahead of the normal queue"},
	{ID: string(PriorityUrgent), Label: "Urgent", Color: "#ef4444", Description: "Drop everything"},
}

// Statuses returns the domain values of the status catalog, in catalog order.
func Statuses() []Status {
	out := make([]Status, 0, len(StatusCatalog))
	for _, e := range StatusCatalog {
		out = append(out, Status(e.ID))
	}
	return out
}

func Priorities() []Priority {
	out := make([]Priority, 0, len(PriorityCatalog))
	for _, e := range PriorityCatalog {
		out = append(out, Priority(e.ID))
	}
	return out
}

func ValidStatus(s Status) bool {
	for _, known := range Statuses() {
		if s == known {
			return true
		}
	}
	return false
}

func ValidPriority(p Priority) bool {
	for _, known := range Priorities() {
		if p == known {
			return true
		}
	}
	return false
}
