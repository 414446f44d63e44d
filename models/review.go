package models

// Review is customer feedback shown on the landing page. Reviews are
// append-only; Date is a display string and reads "Just now" for fresh
// entries.
type Review struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}
