package models

import "database/sql"

// Member represents a tennis club member row.
type Member struct {
	ID         int64         `json:"id" db:"id"`                   // Primary key
	Firstname  string        `json:"firstname" db:"firstname"`     // First name
	Lastname   string        `json:"lastname" db:"lastname"`       // Last name
	Phone      sql.NullInt64 `json:"phone" db:"phone"`             // Optional phone number
	JoinedDate sql.NullTime  `json:"joined_date" db:"joined_date"` // Optional date the member joined
}
