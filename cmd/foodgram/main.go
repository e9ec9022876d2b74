package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"foodgram/internal/cart"
	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/ingredient"
	"foodgram/internal/metrics"
	"foodgram/internal/recipe"
	"foodgram/internal/sharelink"
	"foodgram/internal/shopping"
	"foodgram/internal/tag"
	"foodgram/internal/user"
)

func main() {
	ctx := context.Background()

	cfg, err := config.NewFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "load-ingredients":
		if len(os.Args) < 3 {
			log.Fatal("Usage: foodgram load-ingredients <file.json|file.csv>")
		}
		repo := ingredient.NewRepository(db.SQL)
		count, err := repo.LoadFile(ctx, os.Args[2])
		if err != nil {
			log.Fatalf("Ingredient load failed: %v", err)
		}
		fmt.Printf("Loaded %d ingredients.\n", count)

	case "load-tags":
		if len(os.Args) < 3 {
			log.Fatal("Usage: foodgram load-tags <file.json>")
		}
		count, err := loadTags(ctx, tag.NewRepository(db.SQL), os.Args[2])
		if err != nil {
			log.Fatalf("Tag load failed: %v", err)
		}
		fmt.Printf("Loaded %d tags.\n", count)

	case "create-user":
		createCmd := flag.NewFlagSet("create-user", flag.ExitOnError)
		email := createCmd.String("email", "", "User email (required)")
		username := createCmd.String("username", "", "Username (defaults to the email local part)")
		firstName := createCmd.String("first-name", "", "First name")
		lastName := createCmd.String("last-name", "", "Last name")
		createCmd.Parse(os.Args[2:])

		u := &user.User{
			Email:     *email,
			Username:  *username,
			FirstName: *firstName,
			LastName:  *lastName,
		}
		if err := user.NewRepository(db.SQL).Create(ctx, u); err != nil {
			log.Fatalf("User creation failed: %v", err)
		}
		fmt.Printf("Created user %d (%s).\n", u.ID, u.Username)

	case "export":
		exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
		email := exportCmd.String("user", "", "Email of the exporting user (required)")
		formatFlag := exportCmd.String("format", cfg.ExportFormat, "Output format: txt or xml")
		out := exportCmd.String("out", "", "Output path (defaults to the document filename)")
		exportCmd.Parse(os.Args[2:])

		if err := runExport(ctx, db, *email, *formatFlag, *out); err != nil {
			log.Fatalf("Export failed: %v", err)
		}

	case "link-token":
		tokenCmd := flag.NewFlagSet("link-token", flag.ExitOnError)
		email := tokenCmd.String("user", "", "Email of the user to link (required)")
		ttl := tokenCmd.Duration("ttl", 15*time.Minute, "Token lifetime")
		tokenCmd.Parse(os.Args[2:])

		u, err := requireUser(ctx, user.NewRepository(db.SQL), *email)
		if err != nil {
			log.Fatal(err)
		}
		token, err := sharelink.NewTokens(cfg.ShareLinkSecret, *ttl).Issue(u.ID)
		if err != nil {
			log.Fatalf("Token issue failed: %v", err)
		}
		fmt.Printf("Send this to the bot within %s:\n/link %s\n", *ttl, token)

	case "metrics-cleanup":
		cleanupCmd := flag.NewFlagSet("metrics-cleanup", flag.ExitOnError)
		days := cleanupCmd.Int("days", 30, "Keep records for the last N days")
		cleanupCmd.Parse(os.Args[2:])

		if err := metrics.NewStore(db.SQL).Cleanup(*days); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
		fmt.Println("Old metric records removed.")

	default:
		fmt.Printf("Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runExport(ctx context.Context, db *database.DB, email, formatName, out string) error {
	format, err := shopping.ParseFormat(formatName)
	if err != nil {
		return err
	}

	userRepo := user.NewRepository(db.SQL)
	u, err := requireUser(ctx, userRepo, email)
	if err != nil {
		return err
	}

	exporter := shopping.NewExporter(
		cart.NewRepository(db.SQL),
		recipe.NewRepository(db.SQL),
		userRepo,
		format,
	)
	doc, err := exporter.Export(ctx, u.ID)
	if err != nil {
		return err
	}

	if out == "" {
		out = doc.Filename
	}
	if err := os.WriteFile(out, doc.Data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	fmt.Printf("Wrote %s (%d bytes).\n", out, len(doc.Data))
	return nil
}

func requireUser(ctx context.Context, repo *user.Repository, email string) (*user.User, error) {
	if email == "" {
		return nil, fmt.Errorf("the -user flag is required")
	}
	u, err := repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, fmt.Errorf("no user with email %s", email)
	}
	return u, nil
}

func loadTags(ctx context.Context, repo *tag.Repository, path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("failed to open fixture %s: %w", path, err)
	}
	defer file.Close()

	var tags []tag.Tag
	if err := json.NewDecoder(file).Decode(&tags); err != nil {
		return 0, fmt.Errorf("failed to decode tag JSON: %w", err)
	}
	for i := range tags {
		if err := repo.Save(ctx, &tags[i]); err != nil {
			return i, err
		}
	}
	return len(tags), nil
}

func printUsage() {
	fmt.Println("Usage: foodgram <command> [arguments]")
	fmt.Println("\nCommands:")
	fmt.Println("  load-ingredients   Load the ingredient reference table from a JSON or CSV fixture")
	fmt.Println("  load-tags          Load tags from a JSON fixture")
	fmt.Println("  create-user        Register a user")
	fmt.Println("  export             Write a user's shopping list to a file")
	fmt.Println("  link-token         Issue an account-link token for the Telegram bot")
	fmt.Println("  metrics-cleanup    Remove old metric records")
}
