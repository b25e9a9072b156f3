// Package storage guarda los archivos subidos (responsivas) sobre un afero.Fs.
package storage

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"

	"github.com/jhoicas/portal-rdp/internal/application/census"
	"github.com/jhoicas/portal-rdp/internal/domain"
)

var _ census.FileStore = (*FileStore)(nil)

// Extensiones aceptadas para la responsiva.
var allowedExt = map[string]bool{".pdf": true, ".jpg": true, ".jpeg": true, ".png": true}

// FileStore escribe bajo baseDir/<empresa>/<uuid><ext>. Las rutas devueltas son relativas a baseDir.
type FileStore struct {
	fs      afero.Fs
	baseDir string
}

// NewFileStore construye el store. En producción fs es afero.NewOsFs(); en tests afero.NewMemMapFs().
func NewFileStore(fs afero.Fs, baseDir string) *FileStore {
	return &FileStore{fs: fs, baseDir: baseDir}
}

// Save guarda el archivo con nombre aleatorio; el nombre original solo aporta la extensión.
func (s *FileStore) Save(_ context.Context, companyID int64, filename string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("%w: extensión %q no permitida", domain.ErrInvalidInput, ext)
	}
	rel := path.Join("responsivas", strconv.FormatInt(companyID, 10), uuid.NewString()+ext)
	full := filepath.Join(s.baseDir, filepath.FromSlash(rel))
	if err := s.fs.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("crear directorio: %w", err)
	}
	if err := afero.WriteFile(s.fs, full, data, 0o644); err != nil {
		return "", fmt.Errorf("guardar archivo: %w", err)
	}
	return rel, nil
}

// Remove elimina un archivo guardado. No existir no es error.
func (s *FileStore) Remove(_ context.Context, rel string) error {
	full, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(full); err != nil {
		if exists, _ := afero.Exists(s.fs, full); !exists {
			return nil
		}
		return fmt.Errorf("eliminar archivo: %w", err)
	}
	return nil
}

// Open lee un archivo guardado (descarga de responsivas).
func (s *FileStore) Open(rel string) ([]byte, error) {
	full, err := s.resolve(rel)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, full)
	if err != nil {
		if exists, _ := afero.Exists(s.fs, full); !exists {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("leer archivo: %w", err)
	}
	return data, nil
}

// resolve impide salir de baseDir con rutas como "../".
func (s *FileStore) resolve(rel string) (string, error) {
	clean := path.Clean("/" + filepath.ToSlash(rel))
	if clean == "/" {
		return "", domain.ErrInvalidInput
	}
	return filepath.Join(s.baseDir, filepath.FromSlash(strings.TrimPrefix(clean, "/"))), nil
}
