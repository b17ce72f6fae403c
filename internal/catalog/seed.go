// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"nutq/internal/models"
)

// seedData is the bundled first-run dataset. Edit seeddata.json to change
// the default categories and cards; timestamps are stamped at seed time.
//
//go:embed seeddata.json
var seedData []byte

// seedFile mirrors seeddata.json: the Category/Card shapes minus timestamps.
type seedFile struct {
	Categories []models.Category `json:"categories"`
	Cards      []models.Card     `json:"cards"`
}

// seed builds the initial aggregate from the bundled dataset with default
// settings and fresh timestamps on every card.
func seed(now int64) (models.AppData, error) {
	var f seedFile
	if err := json.Unmarshal(seedData, &f); err != nil {
		return models.AppData{}, fmt.Errorf("parse seed data: %w", err)
	}

	cards := make([]models.Card, len(f.Cards))
	for i, c := range f.Cards {
		c.CreatedAt = now
		c.UpdatedAt = now
		cards[i] = c
	}

	return models.AppData{
		Categories: f.Categories,
		Cards:      cards,
		Settings:   models.DefaultSettings(),
	}, nil
}
