// Package reports derives dashboard statistics from the booking ledger.
// Every function is pure: projections are recomputed from the current
// ledger on each read, never maintained incrementally.
package reports

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/swiftfix/booking-app/models"
)

var digitRun = regexp.MustCompile(`\d+`)

// ExtractPrice derives a representative numeric value from a free-form
// price-range string: "free" (any case) is 0, otherwise the first run
// of digits after stripping thousands separators. No digits means 0.
//
// The heuristic intentionally reads only the first number of a range,
// so revenue figures report the lower bound and ignore currency.
func ExtractPrice(priceStr string) int {
	if priceStr == "" {
		return 0
	}
	if strings.Contains(strings.ToLower(priceStr), "free") {
		return 0
	}
	clean := strings.ReplaceAll(priceStr, ",", "")
	match := digitRun.FindString(clean)
	if match == "" {
		return 0
	}
	n, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return n
}

// Stats are the overview aggregates for the whole ledger.
type Stats struct {
	TotalRevenue  int                          `json:"totalRevenue"`
	TotalBookings int                          `json:"totalBookings"`
	StatusCounts  map[models.BookingStatus]int `json:"statusCounts"`
	BrandCounts   map[models.Brand]int         `json:"brandCounts"`
}

// Overview computes revenue (cancelled bookings excluded), the total
// booking count (cancelled included) and the status/brand breakdowns.
func Overview(bookings []models.Booking) Stats {
	stats := Stats{
		TotalBookings: len(bookings),
		StatusCounts:  make(map[models.BookingStatus]int, len(models.AllStatuses)),
		BrandCounts:   make(map[models.Brand]int),
	}
	for _, s := range models.AllStatuses {
		stats.StatusCounts[s] = 0
	}
	for _, b := range bookings {
		stats.StatusCounts[b.Status]++
		stats.BrandCounts[b.SelectedBrand]++
		if b.Status != models.StatusCancelled {
			stats.TotalRevenue += ExtractPrice(b.Price)
		}
	}
	return stats
}

// WeekNumber returns the ISO-8601 week number of a date: shift to the
// Thursday of its week, then count weeks from that year's January 1.
func WeekNumber(t time.Time) int {
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(d.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	d = d.AddDate(0, 0, 4-weekday)
	yearStart := time.Date(d.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	days := int(d.Sub(yearStart).Hours() / 24)
	return days/7 + 1
}

type ReportType string

const (
	ReportDaily   ReportType = "daily"
	ReportWeekly  ReportType = "weekly"
	ReportMonthly ReportType = "monthly"
)

// ReportFilter selects bookings for the detailed-reports table.
// Service filters by exact service name ("All" or empty matches
// everything). Date is the "YYYY-MM-DD" reference for daily and weekly
// reports; Month is the "YYYY-MM" reference for monthly ones.
type ReportFilter struct {
	Service string
	Type    ReportType
	Date    string
	Month   string
}

const isoDate = "2006-01-02"

// FilterReport returns the bookings matching the filter, preserving
// ledger order. Weekly matching pairs the ISO week number with the
// plain calendar year of the appointment date; monthly matching is a
// string prefix check, not calendar arithmetic.
func FilterReport(bookings []models.Booking, f ReportFilter) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if f.Service != "" && f.Service != "All" && b.SelectedIssue != f.Service {
			continue
		}
		switch f.Type {
		case ReportDaily:
			if b.AppointmentDate != f.Date {
				continue
			}
		case ReportWeekly:
			bookingDate, err1 := time.Parse(isoDate, b.AppointmentDate)
			refDate, err2 := time.Parse(isoDate, f.Date)
			if err1 != nil || err2 != nil {
				continue
			}
			if bookingDate.Year() != refDate.Year() || WeekNumber(bookingDate) != WeekNumber(refDate) {
				continue
			}
		case ReportMonthly:
			if !strings.HasPrefix(b.AppointmentDate, f.Month) {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

// ReportStats summarize a filtered report set: revenue excludes
// cancelled bookings, the job count includes them.
type ReportStats struct {
	Revenue   int `json:"revenue"`
	Count     int `json:"count"`
	Completed int `json:"completed"`
}

func Summarize(bookings []models.Booking) ReportStats {
	var stats ReportStats
	stats.Count = len(bookings)
	for _, b := range bookings {
		if b.Status != models.StatusCancelled {
			stats.Revenue += ExtractPrice(b.Price)
		}
		if b.Status == models.StatusCompleted {
			stats.Completed++
		}
	}
	return stats
}

// MonthlyRevenue sums non-cancelled booking revenue into 12 monthly
// buckets, keyed by the appointment month, for the given calendar year.
func MonthlyRevenue(bookings []models.Booking, year int) [12]int {
	var buckets [12]int
	for _, b := range bookings {
		if b.Status == models.StatusCancelled {
			continue
		}
		d, err := time.Parse(isoDate, b.AppointmentDate)
		if err != nil || d.Year() != year {
			continue
		}
		buckets[int(d.Month())-1] += ExtractPrice(b.Price)
	}
	return buckets
}

// FilterBookings applies the bookings-tab filters: exact status match
// ("All" or empty matches everything) and a case-insensitive substring
// match against the customer name or booking id.
func FilterBookings(bookings []models.Booking, status, search string) []models.Booking {
	needle := strings.ToLower(search)
	out := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if status != "" && status != "All" && string(b.Status) != status {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(b.CustomerName), needle) &&
			!strings.Contains(strings.ToLower(b.ID), needle) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// Paginate slices one page out of the filtered list. Out-of-range page
// requests clamp to the nearest valid page instead of erroring; the
// returned page is the one actually served.
func Paginate(bookings []models.Booking, page, perPage int) ([]models.Booking, int, int) {
	totalPages := (len(bookings) + perPage - 1) / perPage
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	if start >= len(bookings) {
		return []models.Booking{}, page, totalPages
	}
	end := start + perPage
	if end > len(bookings) {
		end = len(bookings)
	}
	return bookings[start:end], page, totalPages
}
