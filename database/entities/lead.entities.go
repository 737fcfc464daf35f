package entities

import "time"

type Lead struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FullName     string    `gorm:"column:full_name;type:varchar(255);not null" json:"full_name"`
	Email        string    `gorm:"column:email;type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone        string    `gorm:"column:phone;type:varchar(50);not null" json:"phone"`
	Interest     string    `gorm:"column:interest;type:varchar(255);not null" json:"interest"`
	RegisteredAt time.Time `gorm:"column:registered_at;autoCreateTime;default:CURRENT_TIMESTAMP;index;not null;<-:create" json:"registered_at"`
}

func (Lead) TableName() string {
	return "leads"
}
