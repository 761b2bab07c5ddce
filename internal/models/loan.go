package models

import "time"

// Loan maps 1:1 to a loan in Alma; LoanID is the id Alma returned.
type Loan struct {
	LoanID string `gorm:"primaryKey;size:64" json:"loan_id"`

	ItemID string `gorm:"size:64;index;not null" json:"item_id"`
	Item   Item   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"item"`

	UserID uint `json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	LoanedOn   time.Time  `gorm:"index;not null" json:"loaned_on"`
	ReturnedOn *time.Time `gorm:"index" json:"returned_on"`
}

func (l Loan) IsOpen() bool {
	return l.ReturnedOn == nil
}
