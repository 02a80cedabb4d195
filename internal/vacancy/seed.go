package vacancy

import (
	"context"
	"fmt"
)

// Demo returns the vacancies a fresh board is populated with.
func Demo() []Vacancy {
	return []Vacancy{
		New("Intern Java Developer", "Описание для интерна", true, 1, 0),
		New("Junior Java Developer", "Описание для джуна", true, 2, 0),
		New("Junior+ Java Developer", "Описание для джуна+", true, 3, 0),
		New("Middle Java Developer", "Описание для мидла", true, 1, 0),
		New("Middle+ Java Developer", "Описание для мидла+", true, 2, 0),
		New("Senior Java Developer", "Описание для сеньора", true, 3, 0),
	}
}

// Seed saves the demo vacancies into repo.
func Seed(ctx context.Context, repo Repository) error {
	for _, v := range Demo() {
		if _, err := repo.Save(ctx, v); err != nil {
			return fmt.Errorf("seed vacancy %q: %w", v.Title, err)
		}
	}
	return nil
}
