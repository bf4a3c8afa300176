package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"fitbot/internal/config"
	"fitbot/internal/repository"
	"fitbot/internal/schema"
	"fitbot/internal/service"
	"fitbot/internal/utils"

	"github.com/google/uuid"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Fitness Onboarding CLI")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Optional persistence: skipped when no DSN is configured.
	var repo *repository.PostgresRepository
	if cfg.PostgreSQL.DSN != "" {
		repo, err = repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer repo.Close()
		log.Println("Connected to PostgreSQL database")
	} else {
		log.Println("No DATABASE_URL configured - profile will be printed, not saved")
	}

	var extractor service.Extractor
	if cfg.OpenAI.Enabled {
		extractor = service.NewOpenAIClient(&cfg.OpenAI)
		log.Printf("OpenAI client initialized (model: %s, base: %s)", cfg.OpenAI.ChatModel, cfg.OpenAI.APIBase)
	} else {
		log.Println("OpenAI is disabled - set OPENAI_API_KEY to enable field extraction")
	}

	onboarding := service.NewOnboarding(extractor, cfg.Onboarding)

	userID := uuid.New()
	if raw := os.Getenv("ONBOARD_USER_ID"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			log.Fatalf("Invalid ONBOARD_USER_ID: %v", err)
		}
		userID = parsed
	}

	ctx := context.Background()
	total := len(schema.Fields())

	result := onboarding.Start()
	fmt.Printf("Bot: %s\n\n", result.Message)

	scanner := bufio.NewScanner(os.Stdin)
	for !result.IsComplete {
		collected := service.CollectedFields(result.CollectedData)
		fmt.Printf("Progress: %d/%d fields | Next: %s\n", len(collected), total, result.NextField)
		if len(collected) > 0 {
			fmt.Printf("Collected: %s\n", strings.Join(collected, ", "))
		}

		fmt.Print("You: ")
		if !scanner.Scan() {
			fmt.Println("\nOnboarding cancelled.")
			return
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			fmt.Println("Please provide an answer.")
			continue
		}
		if input == "exit" || input == "quit" {
			fmt.Println("Exiting onboarding.")
			return
		}

		result = onboarding.Turn(ctx, input, result.ConversationHistory, result.CollectedData)
		if result.Warning != "" {
			log.Printf("Warning: %s", result.Warning)
		}
		fmt.Printf("\nBot: %s\n\n", result.Message)
	}

	fmt.Println("ONBOARDING COMPLETE!")
	output, err := utils.PrettyPrintJSON(result.DBFormat)
	if err != nil {
		log.Fatalf("Failed to format profile output: %v", err)
	}
	fmt.Println(output)

	if repo != nil {
		if err := repo.SaveProfile(ctx, userID, result.DBFormat); err != nil {
			log.Printf("Warning: failed to save profile: %v", err)
		} else {
			log.Printf("Profile saved for user %s", userID)
		}
		if err := repo.LogConversation(ctx, userID, result.ConversationHistory); err != nil {
			log.Printf("Warning: failed to log conversation: %v", err)
		}
	}
}
