package domain

import "time"

// Contact is a marketing-site contact form submission.
type Contact struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" gorm:"index" validate:"required,email"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

func (Contact) TableName() string { return "contacts" }
