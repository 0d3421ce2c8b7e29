package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/SeamusWaldron/cubegroup/internal/storage"
)

// getDBPath returns the database path from flag or default.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}
	return storage.DefaultDBPath()
}

func openDB() (*storage.DB, error) {
	path, err := getDBPath()
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// defaultLogDir is where play writes its interaction logs.
func defaultLogDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cubegroup", "logs")
	}
	return filepath.Join(home, ".cubegroup", "logs")
}
