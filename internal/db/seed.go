package db

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/xinyujieHong/CSEN174-Project/internal/conversation"
)

// SeedTestData resets the database and populates it with demo campus
// users, profiles, carpool posts and a couple of conversations.
//
// Behavior:
//  1. Clears all tables.
//  2. Creates demo students (half with cars) with hashed passwords.
//  3. Posts one request and one offer per car owner, some with
//     mixed-format responses (legacy string + structured object) so
//     the reconciler path is exercised end to end.
//  4. Opens a few pending conversations with a first message.
//
// Compatible with both MySQL and SQLite.
func SeedTestData(db *gorm.DB) error {
	for _, table := range []string{"messages", "conversations", "carpool_requests", "profiles", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	log.Println("Cleared existing data")

	hash, err := bcrypt.GenerateFromPassword([]byte("Password1"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	names := []string{"Alice Chen", "Bob Garcia", "Carol Kim", "Dan Patel", "Erin Lopez", "Frank Wu"}
	userIDs := make([]string, len(names))

	for i, name := range names {
		userIDs[i] = uuid.NewString()
		user := User{
			ID:           userIDs[i],
			Email:        fmt.Sprintf("student%d@scu.edu", i+1),
			PasswordHash: string(hash),
			Name:         name,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}

		hasCar := i%2 == 0
		profile := Profile{
			UserID:         userIDs[i],
			Name:           name,
			College:        "Santa Clara University",
			Major:          []string{"Computer Science", "Mechanical Engineering", "Biology"}[i%3],
			GraduationYear: time.Now().Year() + 1 + i%3,
			PhoneNumber:    fmt.Sprintf("408555%04d", 1000+i),
			HasCar:         hasCar,
		}
		if hasCar {
			profile.CarModel = []string{"Honda Civic", "Toyota Corolla", "Mazda 3"}[i%3]
			profile.CarColor = "Blue"
			profile.CarLicense = fmt.Sprintf("7ABC%03d", 100+i)
			profile.CarCapacity = 4
		}
		if err := db.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to seed profile: %w", err)
		}
	}
	log.Printf("Seeded %d users with profiles.", len(names))

	// Carpool posts: offers from car owners, requests from the rest.
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	nextWeek := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	posts := []CarpoolRequest{
		{
			ID: uuid.NewString(), UserID: userIDs[0], UserName: names[0],
			Type: "offer", Destination: "San Jose Airport", Date: tomorrow, Time: "08:30", Seats: 3,
			Notes:     "Leaving from the Benson parking lot.",
			Responses: ResponseList{},
		},
		{
			ID: uuid.NewString(), UserID: userIDs[1], UserName: names[1],
			Type: "request", Destination: "Downtown Santa Clara Caltrain", Date: nextWeek, Time: "17:15", Seats: 1,
			Responses: ResponseList{},
		},
		{
			ID: uuid.NewString(), UserID: userIDs[2], UserName: names[2],
			Type: "offer", Destination: "Great America", Date: nextWeek, Time: "10:00", Seats: 4,
			Responses: ResponseList{},
		},
	}
	for i := range posts {
		if err := db.Create(&posts[i]).Error; err != nil {
			return fmt.Errorf("failed to seed carpool request: %w", err)
		}
	}
	// The first post carries a mixed responses column: one pre-migration
	// bare-string entry and one structured entry. Written as raw JSON
	// because the Go model only ever marshals the structured form.
	mixed := fmt.Sprintf(`[%q, {"userId": %q, "message": "Can I bring a suitcase?", "timestamp": %q}]`,
		userIDs[1], userIDs[3], time.Now().UTC().Format(time.RFC3339))
	if err := db.Exec("UPDATE carpool_requests SET responses = ? WHERE id = ?", mixed, posts[0].ID).Error; err != nil {
		return fmt.Errorf("failed to seed mixed responses: %w", err)
	}
	log.Printf("Seeded %d carpool posts.", len(posts))

	// Pending conversations with an opening message.
	pairs := [][2]string{{userIDs[1], userIDs[0]}, {userIDs[3], userIDs[2]}}
	for _, pair := range pairs {
		key := conversation.Key(pair[0], pair[1])
		a, b, _ := conversation.Split(key)
		conv := Conversation{ID: key, ParticipantA: a, ParticipantB: b, Status: "pending"}
		if err := db.Create(&conv).Error; err != nil {
			return fmt.Errorf("failed to seed conversation: %w", err)
		}
		msg := Message{
			ID:             uuid.NewString(),
			ConversationID: key,
			SenderID:       pair[0],
			Content:        "Hi! Is there still room in your carpool?",
		}
		if err := db.Create(&msg).Error; err != nil {
			return fmt.Errorf("failed to seed message: %w", err)
		}
	}
	log.Printf("Seeded %d conversations.", len(pairs))

	return nil
}
