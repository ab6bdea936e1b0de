// Package archive представляет экспорт как дерево именованных блобов:
// обычные файлы (Leaf) и каталоги (Directory).
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry - узел архива: Leaf или Directory.
type Entry interface {
	isEntry()
}

// Leaf - содержимое обычного файла.
type Leaf []byte

// Directory - именованные дочерние узлы каталога.
type Directory map[string]Entry

func (Leaf) isEntry() {}
func (Directory) isEntry() {}

// SortedNames возвращает имена потомков в лексикографическом порядке.
func (d Directory) SortedNames() []string {
	names := make([]string, 0, len(d))
	for name := range d {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FindLeafByExt возвращает первый (по имени) файл с расширением ext.
func (d Directory) FindLeafByExt(ext string) (string, Leaf, bool) {
	for _, name := range d.SortedNames() {
		if !strings.EqualFold(filepath.Ext(name), ext) {
			continue
		}
		if leaf, ok := d[name].(Leaf); ok {
			return name, leaf, true
		}
	}
	return "", nil, false
}

// Load читает path с диска: файл становится Leaf, каталог - Directory (рекурсивно).
// Символические ссылки и специальные файлы пропускаются.
func Load(path string) (Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return Leaf(b), nil
	}
	return loadDir(path)
}

func loadDir(dir string) (Directory, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	res := Directory{}
	for _, it := range items {
		p := filepath.Join(dir, it.Name())
		switch {
		case it.IsDir():
			sub, err := loadDir(p)
			if err != nil {
				return nil, err
			}
			res[it.Name()] = sub
		case it.Type().IsRegular():
			b, err := os.ReadFile(p)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", p, err)
			}
			res[it.Name()] = Leaf(b)
		}
	}
	return res, nil
}
