// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package common

import "github.com/doracomply/doracomply/utils"

// Repository is the generic persistence contract every entity repository
// embeds. Tx is the transaction handle type (a *gorm.DB in production).
type Repository[ID comparable, T utils.Tabler, Tx any] interface {
	All() ([]T, error)
	Create(tx Tx, t *T) error
	CreateBatch(tx Tx, ts []T) error
	Read(id ID) (T, error)
	Update(tx Tx, t *T) error
	Delete(tx Tx, id ID) error
	List(ids []ID) ([]T, error)

	Save(tx Tx, t *T) error
	Transaction(f func(tx Tx) error) error
	GetDB(tx Tx) Tx
}
