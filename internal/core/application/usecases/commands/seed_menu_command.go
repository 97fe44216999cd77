package commands

import (
	"errors"
	"fmt"

	"buttery/internal/core/domain/model/kernel"
	"buttery/internal/core/domain/model/menu"
	"buttery/internal/pkg/guard"
)

var ErrSeedMenuCommandIsNotConstructed = errors.New(
	"SeedMenuCommand must be created via NewSeedMenuCommand constructor",
)

// CatalogItem is one entry of the menu catalog file.
type CatalogItem struct {
	Name     string
	Quantity int
	Price    kernel.Money
}

// SeedMenuCommand loads a catalog into an empty or partially filled menu.
type SeedMenuCommand struct { //nolint:recvcheck //using for validation
	items []CatalogItem

	guard guard.ConstructorGuard
}

// NewSeedMenuCommand validates every entry and reports all bad entries at once.
func NewSeedMenuCommand(items []CatalogItem) (SeedMenuCommand, error) {
	var problems []error
	for i, it := range items {
		if _, err := menu.NewItem(it.Name, it.Quantity, it.Price); err != nil {
			problems = append(problems, fmt.Errorf("catalog entry %d: %w", i, err))
		}
	}
	if err := errors.Join(problems...); err != nil {
		return SeedMenuCommand{}, err
	}

	copied := make([]CatalogItem, len(items))
	copy(copied, items)

	return SeedMenuCommand{
		items: copied,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c SeedMenuCommand) Validate() error {
	return c.guard.Validate(ErrSeedMenuCommandIsNotConstructed)
}

func (c SeedMenuCommand) Items() []CatalogItem {
	copied := make([]CatalogItem, len(c.items))
	copy(copied, c.items)
	return copied
}
