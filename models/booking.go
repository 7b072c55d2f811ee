package models

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusAccepted   BookingStatus = "accepted"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
)

// bookingStatusOrder gives the position of each status in the lifecycle.
var bookingStatusOrder = map[BookingStatus]int{
	BookingStatusPending:    0,
	BookingStatusAccepted:   1,
	BookingStatusInProgress: 2,
	BookingStatusCompleted:  3,
}

// Booking is a cleaning appointment requested by a client and claimed by at most one cleaner.
type Booking struct {
	ID              uint          `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Client          string        `json:"client" gorm:"size:255;not null;index"`
	Cleaner         *string       `json:"cleaner" gorm:"size:255;index"` // Null until claimed
	PropertyAddress string        `json:"propertyAddress" gorm:"size:500;not null"`
	PropertyType    string        `json:"propertyType" gorm:"size:100;not null"`
	Date            string        `json:"date" gorm:"size:20;not null"`
	Time            string        `json:"time" gorm:"size:20;not null"`
	Duration        float64       `json:"duration" gorm:"not null"`
	Status          BookingStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','accepted','in_progress','completed')"`
	Rating          *int          `json:"rating" gorm:"check:rating IS NULL OR (rating >= 1 AND rating <= 5)"`
	Tip             *float64      `json:"tip"`
}

// TableName specifies the table name for the Booking model
func (Booking) TableName() string {
	return "bookings"
}

// ParseBookingStatus reports whether s names a known booking status
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	_, ok := bookingStatusOrder[status]
	return status, ok
}

// IsBefore reports whether s comes earlier in the lifecycle than other
func (s BookingStatus) IsBefore(other BookingStatus) bool {
	return bookingStatusOrder[s] < bookingStatusOrder[other]
}

// IsClaimed reports whether a cleaner has accepted the booking
func (b *Booking) IsClaimed() bool {
	return b.Cleaner != nil
}

// IsCompleted checks if the cleaning has been finished
func (b *Booking) IsCompleted() bool {
	return b.Status == BookingStatusCompleted
}

// IsRated checks if the client has already rated the booking
func (b *Booking) IsRated() bool {
	return b.Rating != nil
}

// HasCleaner reports whether username is the assigned cleaner
func (b *Booking) HasCleaner(username string) bool {
	return b.Cleaner != nil && *b.Cleaner == username
}

// IsParticipant reports whether username is the client or the assigned cleaner
func (b *Booking) IsParticipant(username string) bool {
	return b.Client == username || b.HasCleaner(username)
}

// Counterpart returns the other party of the booking from username's point of view.
// The result is nil when username is the client and no cleaner has claimed it yet.
func (b *Booking) Counterpart(username string) *string {
	if b.Client == username {
		if b.Cleaner == nil {
			return nil
		}
		cleaner := *b.Cleaner
		return &cleaner
	}
	client := b.Client
	return &client
}
