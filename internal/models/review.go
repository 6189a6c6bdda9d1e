package models

import "time"

// Review es una reseña sintética generada por demanda; no se persiste
type Review struct {
	ID       string    `json:"id"`
	Rating   int       `json:"rating"`
	Comment  string    `json:"comment"`
	Reviewer string    `json:"reviewer"`
	Date     time.Time `json:"date"`
	Verified bool      `json:"verified"`
	Helpful  int       `json:"helpful"`
}
