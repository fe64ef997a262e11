package types

// TeamMember is an assignable staff entity. The roster is immutable
// configuration; Workload is derived from live assignments by the store.
type TeamMember struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Avatar   string   `json:"avatar"`
	Workload int      `json:"workload"`
	Skills   []string `json:"skills"`
}

type Statistics struct {
	Total          int              `json:"total"`
	StatusCounts   map[Status]int   `json:"status_counts"`
	PriorityCounts map[Priority]int `json:"priority_counts"`
	TotalRevenue   string           `json:"total_revenue"`
	AvgOrderValue  string           `json:"avg_order_value"`
	OverdueOrders  int              `json:"overdue_orders"`
}
