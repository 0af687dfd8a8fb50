// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package models

// Config is a key value row used for daemon watermarks, e.g. the last time a
// contract expiry notification went out.
type Config struct {
	Key string `gorm:"primarykey"`
	Val string `gorm:"type:text"`
}

func (Config) TableName() string {
	return "config"
}
