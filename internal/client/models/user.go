package models

// User is the authenticated account record cached alongside the session
// token. The server owns the canonical copy.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserStats is the aggregate counters payload from /users/stats. The
// notification aggregator derives its collection from these fields.
type UserStats struct {
	TotalContacts      int `json:"total_contacts"`
	TotalClients       int `json:"total_clients"`
	TotalLeads         int `json:"total_leads"`
	PendingTasks       int `json:"pending_tasks"`
	CompletedTasks     int `json:"completed_tasks"`
	OverdueTasks       int `json:"overdue_tasks"`
	ActiveProjects     int `json:"active_projects"`
	TotalInteractions  int `json:"total_interactions"`
	RecentInteractions int `json:"recent_interactions"`
}

// DashboardData bundles the stats with the recent slices shown on the
// dashboard view.
type DashboardData struct {
	Stats              UserStats     `json:"stats"`
	RecentTasks        []Task        `json:"recent_tasks"`
	RecentInteractions []Interaction `json:"recent_interactions"`
	ActiveProjects     []Project     `json:"active_projects"`
}
