package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"

	"evermore/internal/database"
	"evermore/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "evermore.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM client_gallery_analytics")
	db.Exec("DELETE FROM client_gallery_downloads")
	db.Exec("DELETE FROM client_gallery_favorites")
	db.Exec("DELETE FROM client_images")
	db.Exec("DELETE FROM client_galleries")
	db.Exec("DELETE FROM partnership_inquiries")
	db.Exec("DELETE FROM partners")
	db.Exec("DELETE FROM contacts")
	db.Exec("DELETE FROM galleries")

	// ================== CLIENT GALLERY ==================
	log.Println("Creating demo client gallery...")

	weddingDate := time.Date(2026, 6, 20, 0, 0, 0, 0, time.UTC)
	gallery := domain.ClientGallery{
		ID:             uuid.NewString(),
		ClientEmail:    "jane@example.com",
		BrideName:      "Jane",
		GroomName:      "John",
		WeddingDate:    &weddingDate,
		GallerySlug:    "jane-john-wedding",
		AccessCode:     "LOVE2025",
		CoverImage:     "weddings/jane-john/ceremony/first-kiss",
		Images: []string{
			"weddings/jane-john/ceremony/first-kiss",
			"weddings/jane-john/ceremony/vows",
			"weddings/jane-john/ceremony/rings",
			"weddings/jane-john/portraits/golden-hour",
			"weddings/jane-john/portraits/veil",
			"weddings/jane-john/reception/first-dance",
			"weddings/jane-john/reception/cake-cutting",
			"weddings/jane-john/reception/toast",
		},
		ExpirationDate: time.Now().Add(90 * 24 * time.Hour),
		Status:         domain.GalleryActive,
		AllowDownloads: true,
		WelcomeMessage: "Welcome to your wedding gallery! We loved every minute of your day.",
	}
	db.Create(&gallery)
	log.Println("Demo gallery: slug=jane-john-wedding code=LOVE2025")

	// ================== SHOWCASE ==================
	log.Println("Creating showcase galleries...")

	eventDate := time.Date(2025, 9, 14, 0, 0, 0, 0, time.UTC)
	showcases := []domain.ShowcaseGallery{
		{
			ID:         uuid.NewString(),
			Title:      "Autumn Vineyard Wedding",
			Subtitle:   "An intimate celebration among the vines",
			EventDate:  &eventDate,
			CoverImage: "showcase/vineyard/cover",
			Images: []string{
				"showcase/vineyard/aisle",
				"showcase/vineyard/sunset",
				"showcase/vineyard/table",
			},
		},
		{
			ID:         uuid.NewString(),
			Title:      "Coastal Elopement",
			CoverImage: "showcase/coastal/cover",
			Images: []string{
				"showcase/coastal/cliff",
				"showcase/coastal/waves",
			},
		},
	}
	for i := range showcases {
		db.Create(&showcases[i])
	}

	// ================== PARTNERS ==================
	log.Println("Creating partners...")

	partners := []domain.Partner{
		{
			ID:           uuid.NewString(),
			Name:         "The Willow Barn",
			Category:     domain.PartnerVenue,
			Description:  "Rustic barn venue with rolling hills",
			Website:      "https://example.com/willow-barn",
			Featured:     true,
			DisplayOrder: 1,
			IsActive:     true,
		},
		{
			ID:           uuid.NewString(),
			Name:         "Bloom & Stem",
			Category:     domain.PartnerFlorist,
			Description:  "Seasonal wedding florals",
			DisplayOrder: 2,
			IsActive:     true,
		},
		{
			ID:           uuid.NewString(),
			Name:         "Golden Hour Events",
			Category:     domain.PartnerPlanner,
			Description:  "Full-service wedding planning",
			DisplayOrder: 3,
			IsActive:     true,
		},
	}
	for i := range partners {
		db.Create(&partners[i])
	}

	log.Println("Seed complete.")
}
