package routes

// Logical route paths understood by the navigator.
const (
	Login     = "/"
	Bills     = "#employee/bills"
	NewBill   = "#employee/bill/new"
	Dashboard = "#admin/dashboard"
)

// Known reports whether path is one of the declared routes.
func Known(path string) bool {
	switch path {
	case Login, Bills, NewBill, Dashboard:
		return true
	}
	return false
}
