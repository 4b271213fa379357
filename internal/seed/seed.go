package seed

import (
	"context"
	"errors"
	"fmt"
	"log"

	"athme/training-app/internal/domain"
	"athme/training-app/internal/repository"
)

// sportsCatalog is the built-in list of supported sports.
var sportsCatalog = []domain.Sport{
	{Name: "Skiing", Slug: "skiing", Category: domain.CategoryWinter, Icon: "⛷️", Description: "Alpine and cross-country skiing"},
	{Name: "Snowboarding", Slug: "snowboarding", Category: domain.CategoryWinter, Icon: "🏂", Description: "Freestyle and all-mountain snowboarding"},
	{Name: "Mountain Biking", Slug: "mountain-biking", Category: domain.CategorySummer, Icon: "🚵", Description: "Trail, enduro, and downhill mountain biking"},
	{Name: "Road Cycling", Slug: "road-cycling", Category: domain.CategorySummer, Icon: "🚴", Description: "Road and gravel cycling"},
	{Name: "Trail Running", Slug: "trail-running", Category: domain.CategorySummer, Icon: "🏃", Description: "Trail running and ultramarathons"},
	{Name: "Hiking", Slug: "hiking", Category: domain.CategoryYearRound, Icon: "🥾", Description: "Day hikes, backpacking, and peak bagging"},
	{Name: "Rock Climbing", Slug: "rock-climbing", Category: domain.CategoryYearRound, Icon: "🧗", Description: "Sport climbing, trad, and bouldering"},
	{Name: "Swimming", Slug: "swimming", Category: domain.CategoryYearRound, Icon: "🏊", Description: "Lap swimming and open water"},
	{Name: "Kayaking", Slug: "kayaking", Category: domain.CategorySummer, Icon: "🛶", Description: "Whitewater and sea kayaking"},
	{Name: "General Fitness", Slug: "general-fitness", Category: domain.CategoryYearRound, Icon: "💪", Description: "Strength, conditioning, and overall fitness"},
}

// Run inserts the sports catalog and exercise library. Safe to re-run:
// sports already present are skipped, and the exercise library is only
// inserted into an empty collection.
func Run(ctx context.Context, sportRepo repository.SportRepository, exerciseRepo repository.ExerciseRepository) error {
	log.Println("Seeding sports...")
	inserted := 0
	for _, sport := range sportsCatalog {
		s := sport
		_, err := sportRepo.GetBySlug(ctx, s.Slug)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("checking sport %q: %w", s.Slug, err)
		}
		if _, err := sportRepo.Create(ctx, &s); err != nil {
			return fmt.Errorf("inserting sport %q: %w", s.Slug, err)
		}
		inserted++
	}
	log.Printf("Inserted %d sports (%d already present)", inserted, len(sportsCatalog)-inserted)

	count, err := exerciseRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting exercises: %w", err)
	}
	if count > 0 {
		log.Printf("Exercise library already seeded (%d entries), skipping", count)
		return nil
	}

	log.Println("Seeding exercise library...")
	for _, exercise := range exerciseLibrary {
		e := exercise
		if _, err := exerciseRepo.Create(ctx, &e); err != nil {
			return fmt.Errorf("inserting exercise %q: %w", e.Name, err)
		}
	}
	log.Printf("Inserted %d exercises", len(exerciseLibrary))
	return nil
}
