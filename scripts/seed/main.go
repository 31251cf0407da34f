package main

import (
	"context"
	"log"
	"time"

	"athos-learning-service/internal/config"
	"athos-learning-service/internal/db"
	"athos-learning-service/internal/models"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func replaceUpsert() *options.ReplaceOptions {
	return options.Replace().SetUpsert(true)
}

// Seeds the reference collections with the Mount Athos curriculum.
// Idempotent: existing documents are replaced by _id.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	cfg := config.Load()
	if cfg.MongoDB.URI == "" {
		log.Fatal("MONGO_URI is required")
	}
	db.InitMongo(cfg.MongoDB.URI)
	defer db.Disconnect()

	database := db.Client.Database(cfg.MongoDB.Database)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now()

	content := []models.ContentItem{
		{ID: "hist-origins", ModuleID: models.ModuleHistory, Title: "Origins of the Monastic Community", Type: models.ContentText, Difficulty: models.DifficultyBasic, Order: 1, Body: "The first organized monastic settlements on the peninsula date to the ninth century..."},
		{ID: "hist-lavra", ModuleID: models.ModuleHistory, Title: "The Founding of Great Lavra", Type: models.ContentText, Difficulty: models.DifficultyBasic, Order: 2, Body: "In 963, Athanasius the Athonite founded the monastery of Great Lavra..."},
		{ID: "hist-byzantine-map", ModuleID: models.ModuleHistory, Title: "Byzantine-Era Settlements Map", Type: models.ContentImage, Difficulty: models.DifficultyAdvanced, Order: 3, MediaURL: "/media/history/byzantine-map.jpg"},
		{ID: "hist-timeline-video", ModuleID: models.ModuleHistory, Title: "A Millennium in Ten Minutes", Type: models.ContentVideo, Difficulty: models.DifficultyBasic, Order: 4, MediaURL: "/media/history/timeline.mp4"},
		{ID: "arch-katholikon", ModuleID: models.ModuleArchitecture, Title: "The Katholikon Layout", Type: models.ContentText, Difficulty: models.DifficultyBasic, Order: 1, Body: "At the center of every monastery courtyard stands the katholikon, the main church..."},
		{ID: "arch-simonopetra", ModuleID: models.ModuleArchitecture, Title: "Simonopetra: Building on the Rock", Type: models.ContentImage, Difficulty: models.DifficultyAdvanced, Order: 2, MediaURL: "/media/architecture/simonopetra.jpg"},
		{ID: "arch-frescoes-video", ModuleID: models.ModuleArchitecture, Title: "Fresco Traditions of the Cretan School", Type: models.ContentVideo, Difficulty: models.DifficultyAdvanced, Order: 3, MediaURL: "/media/architecture/frescoes.mp4"},
		{ID: "geo-peninsula", ModuleID: models.ModuleGeography, Title: "The Peninsula and the Holy Mountain", Type: models.ContentText, Difficulty: models.DifficultyBasic, Order: 1, Body: "The easternmost of Chalkidiki's three peninsulas rises to 2033 meters at its tip..."},
		{ID: "geo-flora", ModuleID: models.ModuleGeography, Title: "Endemic Flora of the Slopes", Type: models.ContentImage, Difficulty: models.DifficultyBasic, Order: 2, MediaURL: "/media/geography/flora.jpg"},
		{ID: "geo-aerial-video", ModuleID: models.ModuleGeography, Title: "Aerial Survey of the Coastline", Type: models.ContentVideo, Difficulty: models.DifficultyAdvanced, Order: 3, MediaURL: "/media/geography/aerial.mp4"},
	}

	quizzes := []models.Quiz{
		{
			ID: "quiz-hist-1", ModuleID: models.ModuleHistory, Title: "Early Monastic History",
			Questions: []models.Question{
				{ID: "q1", Text: "Who founded the monastery of Great Lavra?", Points: 1, Options: []models.Option{
					{ID: "a", Text: "Athanasius the Athonite", IsCorrect: true},
					{ID: "b", Text: "Nikephoros Phokas"},
					{ID: "c", Text: "Peter the Athonite"},
				}},
				{ID: "q2", Text: "In which year was Great Lavra founded?", Points: 1, Options: []models.Option{
					{ID: "a", Text: "863"},
					{ID: "b", Text: "963", IsCorrect: true},
					{ID: "c", Text: "1063"},
				}},
			},
		},
		{
			ID: "quiz-arch-1", ModuleID: models.ModuleArchitecture, Title: "Monastery Architecture",
			Questions: []models.Question{
				{ID: "q1", Text: "What is the main church of a monastery called?", Points: 1, Options: []models.Option{
					{ID: "a", Text: "Katholikon", IsCorrect: true},
					{ID: "b", Text: "Trapeza"},
					{ID: "c", Text: "Phiale"},
				}},
			},
		},
		{
			ID: "quiz-geo-1", ModuleID: models.ModuleGeography, Title: "Geography of the Peninsula",
			Questions: []models.Question{
				{ID: "q1", Text: "How high is the peak of the Holy Mountain?", Points: 1, Options: []models.Option{
					{ID: "a", Text: "1033 m"},
					{ID: "b", Text: "2033 m", IsCorrect: true},
					{ID: "c", Text: "3033 m"},
				}},
			},
		},
	}

	contentCol := database.Collection("content")
	for _, item := range content {
		item.CreatedAt = now
		item.UpdatedAt = now
		_, err := contentCol.ReplaceOne(ctx, bson.M{"_id": item.ID}, item, replaceUpsert())
		if err != nil {
			log.Fatalf("Failed to seed content %s: %v", item.ID, err)
		}
	}
	log.Printf("Seeded %d content items", len(content))

	quizCol := database.Collection("quizzes")
	for _, quiz := range quizzes {
		quiz.CreatedAt = now
		quiz.UpdatedAt = now
		_, err := quizCol.ReplaceOne(ctx, bson.M{"_id": quiz.ID}, quiz, replaceUpsert())
		if err != nil {
			log.Fatalf("Failed to seed quiz %s: %v", quiz.ID, err)
		}
	}
	log.Printf("Seeded %d quizzes", len(quizzes))
}
