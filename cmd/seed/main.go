// Command main generates a demo CSV dataset for the portfolio backend.
package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"portfolio/internal/config"
	"portfolio/internal/seed"
)

func main() {
	// Parse command line flags
	username := flag.String("username", "", "Profile username (defaults to DEFAULT_USERNAME)")
	projects := flag.Int("projects", 4, "Number of projects to create")
	skills := flag.Int("skills", 8, "Number of skills to create")
	seedVal := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	clean := flag.Bool("clean", false, "Remove the data root before seeding")
	flag.Parse()

	log.Println("🌱 CSV Dataset Seeder")
	log.Println("=====================")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment as-is")
	}
	cfg := config.LoadConfig()

	user := *username
	if user == "" {
		user = cfg.DefaultUsername
	}
	log.Printf("Target: user=%s, %d projects, %d skills, clean=%v\n", user, *projects, *skills, *clean)

	g := seed.NewGenerator(cfg.CSVDataPath, seed.Options{
		Username: user,
		Projects: *projects,
		Skills:   *skills,
		Seed:     *seedVal,
		Clean:    *clean,
	})
	if err := g.Run(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Printf("✨ All done! Dataset written under %s.", cfg.CSVDataPath)
}
