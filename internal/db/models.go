package db

import (
	"time"
)

// User table. Email is the natural unique key; ID is the durable
// reference used by every other table.
type User struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Email        string    `gorm:"uniqueIndex;size:128;not null"`
	PasswordHash string    `gorm:"size:255;not null"`
	Name         string    `gorm:"size:120;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

// Profile is the 1:1 extension of a user, created on first completion
// and overwritten (not versioned) on edit.
//
// Car fields are only meaningful when HasCar is true; the cross-field
// requirement lives in the validate package, not in the schema.
type Profile struct {
	UserID         string `gorm:"primaryKey;size:36"`
	Name           string `gorm:"size:120"`
	College        string `gorm:"size:100"`
	Major          string `gorm:"size:50"`
	GraduationYear int
	PhoneNumber    string `gorm:"size:20"`
	HasCar         bool   `gorm:"not null;default:false"`
	Bio            string `gorm:"size:500"`
	CarModel       string `gorm:"size:50"`
	CarColor       string `gorm:"size:30"`
	CarYear        string `gorm:"size:8"`
	CarLicense     string `gorm:"size:16"`
	CarCapacity    int
	ProfilePicture string    `gorm:"size:255"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

// CarpoolRequest is a post of type "request" (seeking a ride) or
// "offer" (offering one). Responses is an append-only JSON column;
// rows written before the format migration hold bare user-id strings,
// newer rows hold structured objects (see ResponseList).
type CarpoolRequest struct {
	ID          string       `gorm:"primaryKey;size:36"`
	UserID      string       `gorm:"index;size:36;not null"`
	UserName    string       `gorm:"size:120"`
	Type        string       `gorm:"size:16;not null"`
	Destination string       `gorm:"size:200;not null"`
	Date        string       `gorm:"size:10;not null"` // YYYY-MM-DD
	Time        string       `gorm:"size:5;not null"`  // HH:MM, 24h
	Seats       int          `gorm:"not null"`
	Notes       string       `gorm:"size:500"`
	Responses   ResponseList `gorm:"type:json"`
	CreatedAt   time.Time    `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time    `gorm:"autoUpdateTime"`
}

// Conversation pairs two users for direct messaging.
//
// ID is derived from the unordered participant pair (conversation.Key),
// so at most one row exists per pair regardless of who messaged first.
// ParticipantA/ParticipantB are stored in key order (A < B).
type Conversation struct {
	ID           string    `gorm:"primaryKey;size:80"`
	ParticipantA string    `gorm:"index;size:36;not null"`
	ParticipantB string    `gorm:"index;size:36;not null"`
	Status       string    `gorm:"size:16;not null;default:pending"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

// Participants returns both participant ids.
func (c *Conversation) Participants() []string {
	return []string{c.ParticipantA, c.ParticipantB}
}

// HasParticipant reports whether userID is part of the conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.ParticipantA == userID || c.ParticipantB == userID
}

// Message is immutable once created; append-only within a conversation,
// ordered by CreatedAt ascending.
type Message struct {
	ID             string    `gorm:"primaryKey;size:36"`
	ConversationID string    `gorm:"index;size:80;not null"`
	SenderID       string    `gorm:"size:36;not null"`
	Content        string    `gorm:"size:1000;not null"`
	CreatedAt      time.Time `gorm:"autoCreateTime;index"`
}
