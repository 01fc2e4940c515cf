package domain

// User Model
type User struct {
	ID           uint   `gorm:"primaryKey"`      // Primary key
	Username     string `gorm:"unique;not null"` // Unique username
	Password     string `gorm:"not null"`        // Stored as entered, compared verbatim on login
	Name         string // Optional profile fields captured at registration
	Contact      string
	EmailAddress string
	Address      string
	PostalCode   string
}

// TableName keeps the relation name stable regardless of struct renames
func (User) TableName() string {
	return "users"
}
