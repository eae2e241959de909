package models

type Notice struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Message    string `json:"message"`
	DatePosted Date   `json:"date_posted"`
}
