package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/neoverse/academy-backend/internal/types"
)

func SeedUser(tb testing.TB, ctx context.Context, tx *gorm.DB, username, email string) *types.User {
	tb.Helper()
	u := &types.User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		Password: "pw",
	}
	if err := tx.WithContext(ctx).Create(u).Error; err != nil {
		tb.Fatalf("seed user: %v", err)
	}
	return u
}

func SeedModule(tb testing.TB, ctx context.Context, tx *gorm.DB, title string) *types.Module {
	tb.Helper()
	m := &types.Module{
		ID:          uuid.New(),
		Title:       title,
		Description: "module",
	}
	if err := tx.WithContext(ctx).Create(m).Error; err != nil {
		tb.Fatalf("seed module: %v", err)
	}
	return m
}

func SeedChapter(tb testing.TB, ctx context.Context, tx *gorm.DB, moduleID uuid.UUID) *types.Chapter {
	tb.Helper()
	c := &types.Chapter{
		ID:       uuid.New(),
		ModuleID: moduleID,
		Title:    "chapter",
		Content:  "content",
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed chapter: %v", err)
	}
	return c
}

func SeedQuiz(tb testing.TB, ctx context.Context, tx *gorm.DB, chapterID uuid.UUID, correct string) *types.Quiz {
	tb.Helper()
	q := &types.Quiz{
		ID:            uuid.New(),
		ChapterID:     chapterID,
		Question:      "question?",
		OptionA:       "option a",
		OptionB:       "option b",
		OptionC:       "option c",
		CorrectOption: correct,
		HintA:         "hint a",
		HintB:         "hint b",
		HintC:         "hint c",
	}
	if err := tx.WithContext(ctx).Create(q).Error; err != nil {
		tb.Fatalf("seed quiz: %v", err)
	}
	return q
}
