package domain

import "time"

const (
	ReturnStatusRequested = "REQUESTED"
	ReturnStatusApproved  = "APPROVED"
	ReturnStatusRejected  = "REJECTED"
	ReturnStatusRefunded  = "REFUNDED"
)

type Return struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   int       `gorm:"column:order_id;not null" json:"order_id"`
	UserID    int       `gorm:"column:user_id;not null" json:"user_id"`
	Reason    string    `gorm:"column:reason;type:text" json:"reason"`
	Status    string    `gorm:"column:status;default:REQUESTED" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Return) TableName() string {
	return "returns"
}
