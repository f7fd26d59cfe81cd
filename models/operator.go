package models

import "time"

// Operator is a staff login for the management dashboard. Token issuance
// happens in the identity service; this backend only stores the account
// and decodes the claims it receives.
type Operator struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	FullName  string    `json:"fullName"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:120"`
	Password  string    `json:"-" gorm:"size:100"`
	Role      int       `json:"role" gorm:"default:1"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
