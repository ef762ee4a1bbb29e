package domain

import "time"

type PartnerCategory string

const (
	PartnerVenue     PartnerCategory = "venue"
	PartnerFlorist   PartnerCategory = "florist"
	PartnerPlanner   PartnerCategory = "planner"
	PartnerCaterer   PartnerCategory = "caterer"
	PartnerDecorator PartnerCategory = "decorator"
	PartnerMusic     PartnerCategory = "music"
	PartnerOther     PartnerCategory = "other"
)

// Partner is a vendor listed in the wedding partner directory.
type Partner struct {
	ID           string          `json:"id" gorm:"primaryKey;type:uuid"`
	Name         string          `json:"name"`
	Category     PartnerCategory `json:"category" gorm:"index"`
	Description  string          `json:"description,omitempty"`
	LogoURL      string          `json:"logo_url,omitempty"`
	Website      string          `json:"website,omitempty"`
	Email        string          `json:"email,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Featured     bool            `json:"featured" gorm:"index"`
	DisplayOrder int             `json:"display_order"`
	IsActive     bool            `json:"is_active" gorm:"index"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (Partner) TableName() string { return "partners" }

type InquiryStatus string

const (
	InquiryPending  InquiryStatus = "pending"
	InquiryApproved InquiryStatus = "approved"
	InquiryRejected InquiryStatus = "rejected"
)

// PartnershipInquiry is a vendor's request to join the directory.
type PartnershipInquiry struct {
	ID              string        `json:"id" gorm:"primaryKey;type:uuid"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone,omitempty"`
	CompanyName     string        `json:"company_name"`
	CompanyCategory string        `json:"company_category,omitempty"`
	Website         string        `json:"website,omitempty"`
	Message         string        `json:"message"`
	Status          InquiryStatus `json:"status" gorm:"default:pending"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
}

func (PartnershipInquiry) TableName() string { return "partnership_inquiries" }
