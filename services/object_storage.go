// Copyright 2025 doracomply GmbH.
// SPDX-License-Identifier: 	AGPL-3.0-or-later

package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemStorage keeps uploaded documents below a single directory,
// addressed by their storage key. Keys never escape the root.
type FilesystemStorage struct {
	root string
}

func NewFilesystemStorage() (*FilesystemStorage, error) {
	root := os.Getenv("DOCUMENT_STORAGE_DIR")
	if root == "" {
		root = "./documents"
	}
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("could not create document storage directory: %w", err)
	}
	return &FilesystemStorage{root: root}, nil
}

func (f *FilesystemStorage) path(key string) (string, error) {
	cleaned := filepath.Clean("/" + key)
	if strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid storage key")
	}
	return filepath.Join(f.root, cleaned), nil
}

func (f *FilesystemStorage) Fetch(ctx context.Context, key string) ([]byte, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(p)
}

func (f *FilesystemStorage) Store(ctx context.Context, key string, contentType string, data []byte) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o750); err != nil {
		return err
	}
	return os.WriteFile(p, data, 0o640)
}
