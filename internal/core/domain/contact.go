package domain

import "time"

// ContactSubmission is a message left through the site's inquiry form.
type ContactSubmission struct {
	ID           string    `json:"id" bson:"_id"`
	Name         string    `json:"name" bson:"name"`
	Organization string    `json:"organization,omitempty" bson:"organization,omitempty"`
	Email        string    `json:"email" bson:"email"`
	InquiryType  string    `json:"inquiry_type,omitempty" bson:"inquiry_type,omitempty"`
	Message      string    `json:"message" bson:"message"`
	RemoteAddr   string    `json:"-" bson:"remote_addr,omitempty"`
	ReceivedAt   time.Time `json:"received_at" bson:"received_at"`
}
