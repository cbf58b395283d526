package domain

// Summary counts the review workload at one instant.
type Summary struct {
	DueToday  int
	Overdue   int
	Upcoming  int
	Completed int
	Total     int
	Events    int
}
