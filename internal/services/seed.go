package services

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/pkg/logger"
	"github.com/neoverse/academy-backend/internal/repos"
	"github.com/neoverse/academy-backend/internal/telemetry"
	"github.com/neoverse/academy-backend/internal/types"
)

const seedModuleTitle = "Data Science Module"

// SeedService populates reference content at process start. Both steps are
// idempotent: the curriculum seed keys on the module title, the telemetry
// import skips entirely once the table has any row.
type SeedService interface {
	SeedCurriculum(ctx context.Context) error
	ImportTelemetry(ctx context.Context, csvPath string) error
}

type seedService struct {
	db          *gorm.DB
	log         *logger.Logger
	moduleRepo  repos.ModuleRepo
	chapterRepo repos.ChapterRepo
	quizRepo    repos.QuizRepo
	logRepo     repos.NeoverseLogRepo
}

func NewSeedService(
	db *gorm.DB,
	log *logger.Logger,
	moduleRepo repos.ModuleRepo,
	chapterRepo repos.ChapterRepo,
	quizRepo repos.QuizRepo,
	logRepo repos.NeoverseLogRepo,
) SeedService {
	return &seedService{
		db:          db,
		log:         log.With("service", "SeedService"),
		moduleRepo:  moduleRepo,
		chapterRepo: chapterRepo,
		quizRepo:    quizRepo,
		logRepo:     logRepo,
	}
}

func (ss *seedService) SeedCurriculum(ctx context.Context) error {
	existing, err := ss.moduleRepo.GetByTitles(ctx, nil, []string{seedModuleTitle})
	if err != nil {
		return fmt.Errorf("failed to check seed module: %w", err)
	}
	if len(existing) > 0 {
		ss.log.Info("Curriculum already seeded, skipping")
		return nil
	}

	return ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		module := &types.Module{
			ID:          uuid.New(),
			Title:       seedModuleTitle,
			Description: "A module covering data science fundamentals.",
		}
		if _, err := ss.moduleRepo.Create(ctx, tx, []*types.Module{module}); err != nil {
			return fmt.Errorf("failed to seed module: %w", err)
		}

		chapter := &types.Chapter{
			ID:       uuid.New(),
			ModuleID: module.ID,
			Title:    "Data Preprocessing Chapter",
			Content:  "Content explaining data preprocessing steps.",
		}
		if _, err := ss.chapterRepo.Create(ctx, tx, []*types.Chapter{chapter}); err != nil {
			return fmt.Errorf("failed to seed chapter: %w", err)
		}

		quizzes := seedQuizzes(chapter.ID)
		if _, err := ss.quizRepo.Create(ctx, tx, quizzes); err != nil {
			return fmt.Errorf("failed to seed quizzes: %w", err)
		}

		ss.log.Info("Curriculum seeded", "module_id", module.ID, "quizzes", len(quizzes))
		return nil
	})
}

func (ss *seedService) ImportTelemetry(ctx context.Context, csvPath string) error {
	count, err := ss.logRepo.Count(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to count telemetry rows: %w", err)
	}
	if count > 0 {
		ss.log.Info("Telemetry already imported, skipping", "rows", count)
		return nil
	}

	if _, err := os.Stat(csvPath); os.IsNotExist(err) {
		ss.log.Warn("Telemetry CSV not found, skipping import", "path", csvPath)
		return nil
	}

	result, err := telemetry.ReadFile(csvPath)
	if err != nil {
		return fmt.Errorf("failed to read telemetry CSV: %w", err)
	}
	for _, rowErr := range result.Errors {
		ss.log.Warn("Skipped telemetry row", "error", rowErr)
	}

	return ss.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ss.logRepo.CreateBatch(ctx, tx, result.Imported); err != nil {
			return fmt.Errorf("failed to insert telemetry batch: %w", err)
		}
		ss.log.Info("Telemetry imported", "rows", len(result.Imported), "skipped", len(result.Errors))
		return nil
	})
}

func seedQuizzes(chapterID uuid.UUID) []*types.Quiz {
	mk := func(question, a, b, c, correct, hintA, hintB, hintC string) *types.Quiz {
		return &types.Quiz{
			ID:            uuid.New(),
			ChapterID:     chapterID,
			Question:      question,
			OptionA:       a,
			OptionB:       b,
			OptionC:       c,
			CorrectOption: correct,
			HintA:         hintA,
			HintB:         hintB,
			HintC:         hintC,
		}
	}
	return []*types.Quiz{
		mk(
			"What's the first thing Riley should do with the raw data?",
			"Start analyzing it immediately.",
			"Clean and organize it.",
			"Ignore it and rely on intuition.",
			"B",
			"Hmm, it's tempting to dive in, but a good foundation is key. You'll want to prepare the data first to avoid errors.",
			"Great job! Cleaning and organizing the data ensures that your analysis is based on accurate and reliable information.",
			"Relying on intuition alone can lead you astray. Trusting the data will guide you to better insights.",
		),
		mk(
			"The server logs are missing timestamps for the last 24 hours before the shutdown. What should Riley do?",
			"Remove those rows.",
			"Fill in the missing timestamps using the average time interval.",
			"Assume the logs are irrelevant.",
			"B",
			"Removing rows might seem like an easy fix, but you could lose valuable insights by discarding data.",
			"Smart choice! Filling in the missing timestamps ensures that the data remains consistent and usable for analysis.",
			"Assuming the logs are irrelevant might lead to missing key patterns. It's always best to find a way to use the data!",
		),
		mk(
			"How would Riley encode the player levels?",
			"Beginner = 1, Intermediate = 2, Advanced = 3.",
			"Beginner = 0, Intermediate = 1, Advanced = 2.",
			"Leave them as text.",
			"B",
			"While this might seem like a simple mapping, starting from 0 can make the model interpret the data more naturally.",
			"Great choice! Encoding the levels numerically helps the model understand the data better and improves processing efficiency.",
			"Leaving them as text could confuse the model. Encoding helps make the data more meaningful for analysis.",
		),
		mk(
			"Riley finds a transaction where a player spent $1 million in NeoVerse coins. What should they do?",
			"Remove the transaction as an outlier.",
			"Investigate it further—it might be a clue.",
			"Leave it in the dataset.",
			"B",
			"Removing outliers might seem like the easy way out, but sometimes outliers hold valuable information.",
			"Nice approach! Investigating the transaction could uncover an important pattern or insight that helps you understand player behavior.",
			"Leaving it without investigation could lead to missed opportunities to discover something important.",
		),
		mk(
			"Player levels range from 0 to 100, and transaction amounts range from $0 to $1 million. How should Riley scale them?",
			"Normalize both to 0-1.",
			"Standardize both to have a mean of 0.",
			"Leave them as they are.",
			"A",
			"While this split isn't wrong, giving a bit more focus to validation and test sets might reduce the training data available.",
			"Great choice! Normalizing both to the 0-1 range ensures that the data is on the same scale, making it easier for the model to process and compare.",
			"Leaving them as they are could lead to the model being biased by differences in the scale of the features.",
		),
		mk(
			"How should Riley combine the server logs and user profiles?",
			"Merge them based on user IDs.",
			"Concatenate them vertically.",
			"Keep them separate.",
			"A",
			"Concatenating vertically might lead to mismatches and inconsistencies, so merging based on user IDs is a safer approach.",
			"Nice choice! Merging the data based on user IDs allows you to integrate relevant information and analyze the user's behavior more holistically.",
			"Keeping them separate might make it harder to draw connections between the server logs and user profiles.",
		),
		mk(
			"Riley has 10,000 rows of cleaned data. How should they split it?",
			"70% training, 20% validation, 10% test.",
			"60% training, 20% validation, 20% test.",
			"80% training, 10% validation, 10% test.",
			"A",
			"While this split isn't wrong, giving a bit more focus to validation and test sets might reduce the training data available.",
			"Great call! Splitting the data this way gives enough training data for the model, while still reserving a healthy portion for validation and testing.",
			"Using a heavy split like 80% for training could leave you with too little data for validation and testing, making evaluation less reliable.",
		),
		mk(
			"Riley finds that \"age\" and \"birth year\" are highly correlated. What should they do?",
			"Remove one of the features.",
			"Keep both features.",
			"Combine them into a new feature.",
			"A",
			"Keeping both could introduce redundancy, making it harder for the model to identify patterns without overfitting.",
			"Smart move! Removing one of the correlated features helps reduce multicollinearity and keeps the model simpler and more efficient.",
			"Combining them might not provide much new information and could complicate the feature set unnecessarily.",
		),
	}
}
