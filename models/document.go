package models

// Document is the whole persisted state. It is loaded and written back as a unit.
type Document struct {
	Users    []User    `json:"users"`
	Bookings []Booking `json:"bookings"`
	Messages []Message `json:"messages"`
}

// NewDocument returns an empty document with non-nil collections
func NewDocument() *Document {
	return &Document{
		Users:    []User{},
		Bookings: []Booking{},
		Messages: []Message{},
	}
}

// Normalize replaces nil collections so they serialise as empty arrays
func (d *Document) Normalize() {
	if d.Users == nil {
		d.Users = []User{}
	}
	if d.Bookings == nil {
		d.Bookings = []Booking{}
	}
	if d.Messages == nil {
		d.Messages = []Message{}
	}
}

// FindUser returns the user with the given username, or nil
func (d *Document) FindUser(username string) *User {
	for i := range d.Users {
		if d.Users[i].Username == username {
			return &d.Users[i]
		}
	}
	return nil
}

// FindBooking returns a pointer into the document so callers can mutate it in place
func (d *Document) FindBooking(id uint) *Booking {
	for i := range d.Bookings {
		if d.Bookings[i].ID == id {
			return &d.Bookings[i]
		}
	}
	return nil
}

// NextUserID returns one more than the highest user id
func (d *Document) NextUserID() uint {
	var max uint
	for _, u := range d.Users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}

// NextBookingID returns one more than the highest booking id
func (d *Document) NextBookingID() uint {
	var max uint
	for _, b := range d.Bookings {
		if b.ID > max {
			max = b.ID
		}
	}
	return max + 1
}

// NextMessageID returns one more than the highest message id
func (d *Document) NextMessageID() uint {
	var max uint
	for _, m := range d.Messages {
		if m.ID > max {
			max = m.ID
		}
	}
	return max + 1
}
