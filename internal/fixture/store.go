// Package fixture loads the JSON placeholder documents (properties.json,
// users.json) and keeps them in memory for the life of the process.
//
// The property collection doubles as the backing store for property
// inserts until they are persisted to the relational store.
package fixture

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"
	"sync"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
)

//go:embed data/*.json
var embedded embed.FS

const (
	propertiesFile = "properties.json"
	usersFile      = "users.json"
)

// Store is the in-memory fixture collection.
type Store struct {
	mu         sync.Mutex
	properties map[int64]*model.Property
	users      map[int64]*model.User
}

// Load reads both fixture documents from dir, or from the documents
// embedded in the binary when dir is empty.
func Load(dir string) (*Store, error) {
	var fsys fs.FS
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, fmt.Errorf("opening embedded fixtures: %w", err)
		}
		fsys = sub
	} else {
		fsys = os.DirFS(dir)
	}
	return LoadFS(fsys)
}

// LoadFS reads both fixture documents from fsys.
func LoadFS(fsys fs.FS) (*Store, error) {
	properties, err := readKeyed[model.Property](fsys, propertiesFile)
	if err != nil {
		return nil, err
	}
	for id, p := range properties {
		p.ID = id
	}

	users, err := readKeyed[model.User](fsys, usersFile)
	if err != nil {
		return nil, err
	}
	for id, u := range users {
		u.ID = id
	}

	return &Store{properties: properties, users: users}, nil
}

// readKeyed decodes a JSON object whose keys are record ids.
func readKeyed[T any](fsys fs.FS, name string) (map[int64]*T, error) {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading fixture %s: %w", name, err)
	}

	var doc map[string]*T
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding fixture %s: %w", name, err)
	}

	out := make(map[int64]*T, len(doc))
	for key, record := range doc {
		id, err := strconv.ParseInt(key, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("fixture %s: key %q is not an id: %w", name, key, err)
		}
		if record == nil {
			return nil, fmt.Errorf("fixture %s: record %q is null", name, key)
		}
		out[id] = record
	}
	return out, nil
}

// AddProperty assigns the next sequential id (current count + 1) to p,
// stores it and returns it. The record lives only as long as the process.
func (s *Store) AddProperty(_ context.Context, p *model.Property) (*model.Property, error) {
	if p == nil {
		return nil, errs.ErrPropertyRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = int64(len(s.properties)) + 1
	s.properties[p.ID] = p
	return p, nil
}

// Property returns a copy of the stored property with the given id.
func (s *Store) Property(id int64) (model.Property, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.properties[id]
	if !ok {
		return model.Property{}, false
	}
	return *p, true
}

// Properties returns copies of all stored properties ordered by id.
func (s *Store) Properties() []model.Property {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Property, 0, len(s.properties))
	for _, p := range s.properties {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Users returns copies of the fixture users ordered by id.
func (s *Store) Users() []model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
