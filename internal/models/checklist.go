package models

// Checklist type values accepted by /api/checklist-response.
const (
	ChecklistTypeChecklist = "checklist"
	ChecklistTypeRemarks   = "remarks"
)

// ChecklistTask is a single daily task with its completion flag.
type ChecklistTask struct {
	Done bool `json:"done"`
}

// ChecklistRequest is the payload for /api/checklist-response.
type ChecklistRequest struct {
	Disorder string          `json:"disorder"`
	Type     string          `json:"type"`
	Tasks    []ChecklistTask `json:"tasks,omitempty"`
}

// CompletedCount returns how many tasks are marked done.
func (r ChecklistRequest) CompletedCount() int {
	n := 0
	for _, task := range r.Tasks {
		if task.Done {
			n++
		}
	}
	return n
}

// ChecklistResponse is the success payload for /api/checklist-response.
type ChecklistResponse struct {
	Message string `json:"message"`
}
