package notice

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
	PriorityUrgent = "Urgent"
)

type Notice struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
	Date     string `json:"date"`
	// CreatedAt is set once at creation and never updated.
	CreatedAt string `json:"createdAt"`
}
