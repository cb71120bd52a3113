// Package storage implementa el almacenamiento temporal de los reportes
// generados: cada archivo recibe un identificador opaco y expira tras un TTL.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/zTMike/Desarollo-XML/internal/domain"
)

type tempFile struct {
	path    string
	size    int64
	created time.Time
}

// TempStore guarda archivos en un directorio local con índice en memoria.
// El reloj se inyecta para poder probar la expiración sin esperar el TTL.
type TempStore struct {
	dir string
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	files map[string]tempFile
}

// NewTempStore crea el store sobre dir (se crea si no existe).
func NewTempStore(dir string, ttl time.Duration, now func() time.Time) (*TempStore, error) {
	if now == nil {
		now = time.Now
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: crear directorio temporal: %w", err)
	}
	return &TempStore{
		dir:   dir,
		ttl:   ttl,
		now:   now,
		files: make(map[string]tempFile),
	}, nil
}

// Put escribe el contenido con un nombre aleatorio y devuelve su ID.
func (s *TempStore) Put(data []byte, ext string) (string, error) {
	id := uuid.NewString()
	path := filepath.Join(s.dir, id+ext)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: escribir archivo temporal: %w", err)
	}
	s.mu.Lock()
	s.files[id] = tempFile{path: path, size: int64(len(data)), created: s.now()}
	s.mu.Unlock()
	return id, nil
}

// Get devuelve el contenido del archivo, o domain.ErrNotFound si el ID es
// desconocido o el archivo ya no existe en disco.
func (s *TempStore) Get(id string) ([]byte, error) {
	s.mu.Lock()
	f, ok := s.files[id]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrNotFound
	}
	data, err := os.ReadFile(f.path)
	if err != nil {
		// el archivo desapareció por fuera del store: limpiar el índice
		s.mu.Lock()
		delete(s.files, id)
		s.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	return data, nil
}

// Delete elimina el archivo y su entrada del índice.
func (s *TempStore) Delete(id string) error {
	s.mu.Lock()
	f, ok := s.files[id]
	delete(s.files, id)
	s.mu.Unlock()
	if !ok {
		return domain.ErrNotFound
	}
	if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: eliminar archivo temporal: %w", err)
	}
	return nil
}

// CleanupExpired elimina los archivos más viejos que el TTL y devuelve
// cuántos se removieron.
func (s *TempStore) CleanupExpired() int {
	cutoff := s.now().Add(-s.ttl)

	s.mu.Lock()
	var expired []tempFile
	for id, f := range s.files {
		if f.created.Before(cutoff) {
			expired = append(expired, f)
			delete(s.files, id)
		}
	}
	s.mu.Unlock()

	for _, f := range expired {
		_ = os.Remove(f.path)
	}
	return len(expired)
}

// Count número de archivos vigentes.
func (s *TempStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}

// TotalSize bytes totales de los archivos vigentes.
func (s *TempStore) TotalSize() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, f := range s.files {
		total += f.size
	}
	return total
}
