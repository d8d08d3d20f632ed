package models

// Employee represents a single row of the employees table.
// ID is assigned by the database on insert and never changes afterwards.
type Employee struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Salary   float64 `json:"salary"`
}
