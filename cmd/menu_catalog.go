package cmd

import (
	"errors"
	"fmt"
	"os"

	"buttery/internal/core/application/usecases/commands"
	"buttery/internal/core/domain/model/kernel"

	"gopkg.in/yaml.v3"
)

type menuCatalogFile struct {
	Items []menuCatalogEntry `yaml:"items"`
}

type menuCatalogEntry struct {
	Name     string `yaml:"name"`
	Quantity int    `yaml:"quantity"`
	Price    string `yaml:"price"`
}

// LoadMenuCatalog reads the startup menu. Prices are decimal strings.
//
//	items:
//	  - name: Chili Oil Dumplings
//	    quantity: 20
//	    price: "3.00"
func LoadMenuCatalog(path string) ([]commands.CatalogItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file menuCatalogFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	items := make([]commands.CatalogItem, 0, len(file.Items))
	var problems []error
	for i, entry := range file.Items {
		price, priceErr := kernel.MoneyFromString(entry.Price)
		if priceErr != nil {
			problems = append(problems, fmt.Errorf("%s item %d: %w", path, i+1, priceErr))
			continue
		}
		items = append(items, commands.CatalogItem{
			Name:     entry.Name,
			Quantity: entry.Quantity,
			Price:    price,
		})
	}
	if err = errors.Join(problems...); err != nil {
		return nil, err
	}
	return items, nil
}
