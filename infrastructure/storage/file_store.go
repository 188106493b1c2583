package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileStore grava artefatos em um diretório local
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) Save(_ context.Context, name string, content []byte, _ string) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar diretório %s: %w", s.dir, err)
	}

	path := filepath.Join(s.dir, filepath.Base(name))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar %s: %w", path, err)
	}

	return path, nil
}

// RemoveOlderThan apaga os arquivos regulares modificados antes de cutoff
// e devolve quantos foram removidos. Um diretório inexistente não é erro.
func (s *FileStore) RemoveOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao listar %s: %w", s.dir, err)
	}

	removed := 0
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return removed, err
		}

		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
				return removed, fmt.Errorf("erro ao remover %s: %w", entry.Name(), err)
			}
			removed++
		}
	}

	return removed, nil
}
