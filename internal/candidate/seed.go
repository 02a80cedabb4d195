package candidate

import (
	"context"
	"fmt"
)

// Demo returns the candidates a fresh board is populated with.
func Demo() []Candidate {
	return []Candidate{
		New("Vasiliy", "Intern java developer", true, 1, 0),
		New("Oleg", "Junior java developer", true, 2, 0),
		New("Petr", "Junior+ java developer", true, 3, 0),
		New("Aleksey", "Middle java developer", true, 1, 0),
		New("Igor", "Middle+ java developer", true, 2, 0),
		New("Andrey", "Senior java developer", true, 3, 0),
	}
}

// Seed saves the demo candidates into repo.
func Seed(ctx context.Context, repo Repository) error {
	for _, c := range Demo() {
		if _, err := repo.Save(ctx, c); err != nil {
			return fmt.Errorf("seed candidate %q: %w", c.Name, err)
		}
	}
	return nil
}
