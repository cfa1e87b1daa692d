package repository

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (e.g., memory) inside this directory.

import "errors"

// ErrNotFound is returned when no project is stored under the requested ID.
var ErrNotFound = errors.New("project not found")
