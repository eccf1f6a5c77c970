// Copyright 2025 kindworks contributors.
// SPDX-License-Identifier: AGPL-3.0-or-later

package utils

type Tabler interface {
	TableName() string
}

// Repository is the base contract every gorm-backed repository embeds. Tx is
// the transaction handle type - passing a nil Tx runs the call on the default
// connection.
type Repository[ID any, T Tabler, Tx any] interface {
	All() ([]T, error)
	Create(tx Tx, t *T) error
	Read(id ID) (T, error)
	Save(tx Tx, t *T) error
	Delete(tx Tx, id ID) error
	List(ids []ID) ([]T, error)
	Transaction(func(tx Tx) error) error
	GetDB(tx Tx) Tx
}
