package models

import "time"

// Message is an immutable note exchanged between the two parties of a booking
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement:false"`
	BookingID uint      `json:"bookingId" gorm:"not null;index"`
	Sender    string    `json:"sender" gorm:"size:255;not null"`
	Recipient *string   `json:"recipient" gorm:"size:255"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Timestamp time.Time `json:"timestamp" gorm:"not null;index"`
}

// TableName specifies the table name for the Message model
func (Message) TableName() string {
	return "messages"
}
