package services

import (
	"log"
	"math/rand"
	"sync"
	"time"

	"snakescores/models"

	"gorm.io/gorm"
)

var seedOnce sync.Once

// SeedOnce runs SeedSampleData at most once per process lifetime. Call it
// at startup after the schema has been migrated.
func SeedOnce(db *gorm.DB) {
	seedOnce.Do(func() {
		SeedSampleData(db)
	})
}

// SeedSampleData loads sample gamers with a handful of scores each and
// one admin account. Each failed insert (typically a handle that already
// exists from a prior run) is logged and skipped, so one collision never
// aborts the rest. Safe to call against an already-seeded store: the
// uniqueness constraint rejects the repeats.
func SeedSampleData(db *gorm.DB) {
	gamers := NewGamerService(db)
	admins := NewAdminService(db)

	samples := []struct {
		name     string
		uid      string
		password string
		dob      time.Time
	}{
		{"Thomas Edison", "toby", "123toby", time.Date(1847, time.February, 11, 0, 0, 0, 0, time.UTC)},
		{"Nicholas Tesla", "niko", "123niko", time.Time{}},
		{"Alexander Graham Bell", "lex", "123lex", time.Time{}},
		{"Eli Whitney", "whit", "123whit", time.Time{}},
		{"John Mortensen", "jm1021", models.DefaultPassword, time.Date(1959, time.October, 21, 0, 0, 0, 0, time.UTC)},
	}

	for _, s := range samples {
		gamer, err := models.NewGamer(s.name, s.uid, models.DefaultLevel, s.password, s.dob)
		if err != nil {
			log.Printf("Seed: could not build gamer %s: %v", s.uid, err)
			continue
		}
		// 1 to 3 sample scores, attached before create so they persist
		// with the gamer in one transaction.
		for i := 0; i < 1+rand.Intn(3); i++ {
			gamer.Scores = append(gamer.Scores, models.Score{
				Score:      rand.Intn(100),
				DatePlayed: time.Now(),
			})
		}
		if err := gamers.Create(gamer); err != nil {
			log.Printf("Seed: records exist, duplicate handle, or error: %s (%v)", s.uid, err)
			continue
		}
		log.Printf("Seed: %s created", s.name)
	}

	admin, err := models.NewAdminUser("Administrator", "admin", "passsword")
	if err != nil {
		log.Printf("Seed: could not build admin: %v", err)
		return
	}
	if err := admins.Create(admin); err != nil {
		log.Printf("Seed: records exist, duplicate handle, or error: %s (%v)", admin.UID, err)
		return
	}
	log.Printf("Seed: %s created", admin.Name)
}
