package models

// Company represents a financial company from the financial companies service.
type Company struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
