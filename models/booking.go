package models

type BookingStatus string

const (
	StatusPending    BookingStatus = "Pending"
	StatusInProgress BookingStatus = "In Progress"
	StatusCompleted  BookingStatus = "Completed"
	StatusCancelled  BookingStatus = "Cancelled"
)

// AllStatuses is the fixed display order used by the dashboard.
var AllStatuses = []BookingStatus{StatusPending, StatusInProgress, StatusCompleted, StatusCancelled}

// Valid reports whether s is one of the four known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is a submitted repair booking. Model, issue and price are
// snapshots taken at submission time, not live catalog references.
type Booking struct {
	ID              string        `json:"id"`
	Status          BookingStatus `json:"status"`
	DateCreated     string        `json:"dateCreated"`
	SelectedBrand   Brand         `json:"selectedBrand"`
	SelectedModel   string        `json:"selectedModel"`
	SelectedIssue   string        `json:"selectedIssue"`
	Price           string        `json:"price"`
	AppointmentDate string        `json:"appointmentDate"`
	AppointmentTime string        `json:"appointmentTime"`
	CustomerName    string        `json:"customerName"`
	CustomerEmail   string        `json:"customerEmail"`
	CustomerPhone   string        `json:"customerPhone"`
}
