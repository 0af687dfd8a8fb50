// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package repositories

import (
	"github.com/doracomply/doracomply/database/models"
	"github.com/doracomply/doracomply/shared"
	"gorm.io/gorm/clause"
)

type configRepository struct {
	db shared.DB
}

func NewConfigRepository(db shared.DB) *configRepository {
	return &configRepository{db: db}
}

func (g *configRepository) GetDB(tx shared.DB) shared.DB {
	if tx != nil {
		return tx
	}
	return g.db
}

func (g *configRepository) Save(tx shared.DB, config *models.Config) error {
	return g.GetDB(tx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(config).Error
}

func (g *configRepository) Read(key string) (models.Config, error) {
	var config models.Config
	err := g.db.Where("key = ?", key).First(&config).Error
	return config, err
}
