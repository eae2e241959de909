package models

// Feedback references its meal by free-text label, not by meals.id, so
// entries survive edits to the menu.
type Feedback struct {
	ID          int64  `json:"id"`
	StudentName string `json:"student_name"`
	Meal        string `json:"meal"`
	Rating      int    `json:"rating"`
	Comment     string `json:"comment"`
	DatePosted  Date   `json:"date_posted"`
	Verified    bool   `json:"verified"`
}
