// Command seed fills the directory with demo provider and consumer
// accounts so the calendar can be exercised without the external
// registration system. Existing accounts are left untouched.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"meetbook/internal/database"
	"meetbook/internal/meetup"
	"meetbook/internal/models"
)

func main() {
	_ = godotenv.Load()

	db := &database.Database{}
	if err := db.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	password := os.Getenv("SEED_PASSWORD")
	if password == "" {
		password = "changeme123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("hash password: %v", err)
	}

	providers := []string{"Dr. Ava", "Dr. Liam", "Dr. Noah", "Dr. Emma", "Dr. Mia", "Dr. Zoe"}
	consumers := []string{"Alex Kim", "Sam Rivera"}

	seed(db, providers, meetup.RoleProvider, string(hash))
	seed(db, consumers, meetup.RoleConsumer, string(hash))
}

func seed(db *database.Database, names []string, role, hash string) {
	for i, name := range names {
		email := fmt.Sprintf("%s-%d@meetbook.local", role, i+1)
		if _, err := db.FindUserByEmail(email); err == nil {
			log.Printf("%s already exists, skipping", email)
			continue
		}
		u := &models.User{
			ID:           uuid.New(),
			Name:         name,
			Email:        email,
			Role:         role,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		}
		if err := db.SaveUser(u); err != nil {
			log.Fatalf("seed %s: %v", email, err)
		}
		log.Printf("seeded %s %q (%s)", role, name, u.ID)
	}
}
