// Package jsonstore implementa los puertos de persistencia sobre archivos JSON
// planos: una colección por archivo. Cada operación lee el archivo completo a
// memoria, muta y reescribe todo mediante archivo temporal + rename, de modo que
// una caída a mitad de escritura deja el contenido anterior intacto. Un mutex
// por colección serializa las escrituras dentro del proceso; entre procesos no
// hay exclusión (modo pensado para concurrencia baja).
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// EnsureDir crea el directorio de datos si no existe.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio de datos: %w", err)
	}
	return nil
}

// CheckDir verifica que el directorio de datos sea accesible (para /api/health).
func CheckDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("directorio de datos: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("directorio de datos: %s no es un directorio", dir)
	}
	return nil
}

// coleccion colección JSON tipada respaldada por un solo archivo.
type coleccion[T any] struct {
	path string
	mu   sync.Mutex
}

func newColeccion[T any](dir, nombre string) *coleccion[T] {
	return &coleccion[T]{path: filepath.Join(dir, nombre)}
}

// snapshot devuelve el contenido actual de la colección. Archivo ausente
// equivale a colección vacía.
func (c *coleccion[T]) snapshot() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load()
}

// mutate aplica fn sobre el contenido actual y persiste el resultado de forma
// atómica. fn recibe la colección cargada y devuelve la versión a escribir.
func (c *coleccion[T]) mutate(fn func(items []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items, err := c.load()
	if err != nil {
		return err
	}
	items, err = fn(items)
	if err != nil {
		return err
	}
	return c.save(items)
}

func (c *coleccion[T]) load() ([]T, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("leer %s: %w", c.path, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsear %s: %w", c.path, err)
	}
	return items, nil
}

// save escribe la colección completa vía archivo temporal + rename en el mismo
// directorio, para que ninguna lectura posterior vea un archivo a medias.
func (c *coleccion[T]) save(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar %s: %w", c.path, err)
	}

	dir := filepath.Dir(c.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(c.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("crear temporal: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("escribir %s: %w", c.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("cerrar temporal: %w", err)
	}
	if err := os.Rename(tmpName, c.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renombrar sobre %s: %w", c.path, err)
	}
	return nil
}
