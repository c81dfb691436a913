// Package jsonfile implementa el puerto store.Storage sobre un archivo JSON
// plano: el documento completo se lee una vez y se reescribe entero en cada
// mutación.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/igosistemas/igo/internal/store"
)

var _ store.Storage = (*Storage)(nil)

// Storage adaptador de persistencia del documento sobre el sistema de archivos.
type Storage struct {
	path string
}

// New construye el adaptador para la ruta dada.
func New(path string) *Storage {
	return &Storage{path: path}
}

// Load lee y decodifica el documento. Devuelve error si el archivo no existe
// o no se puede decodificar; el store decide sintetizar el documento semilla.
func (s *Storage) Load() (*store.Document, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("leer documento: %w", err)
	}
	var doc store.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decodificar documento: %w", err)
	}
	return &doc, nil
}

// Save serializa el documento con sangría de 2 espacios y UTF-8 literal
// (sin escapar acentos) y lo escribe de forma atómica: archivo temporal en
// el mismo directorio + rename.
func (s *Storage) Save(doc *store.Document) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("codificar documento: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir documento: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("permisos del documento: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("reemplazar documento: %w", err)
	}
	return nil
}
