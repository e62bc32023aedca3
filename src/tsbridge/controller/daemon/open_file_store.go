package daemon

import (
	"sort"
	"sync"

	"github.com/tsbridge/tsbridge/src/tsbridge/entity"
	"github.com/tsbridge/tsbridge/src/tsbridge/internal/clock"
)

// openFileStore tracks the set of files currently open in the editor, with
// last-touched timestamps ordering re-analysis requests.
type openFileStore struct {
	clock clock.Clock

	mu    sync.Mutex
	files map[string]*entity.OpenDocument
}

func newOpenFileStore(c clock.Clock) *openFileStore {
	return &openFileStore{
		clock: c,
		files: make(map[string]*entity.OpenDocument),
	}
}

func (s *openFileStore) open(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = &entity.OpenDocument{Path: path, LastTouched: s.clock.Now()}
}

func (s *openFileStore) touch(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.files[path]
	if !ok {
		return false
	}
	doc.LastTouched = s.clock.Now()
	return true
}

func (s *openFileStore) close(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.files[path]; !ok {
		return false
	}
	delete(s.files, path)
	return true
}

func (s *openFileStore) contains(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok
}

// orderedLeastRecent returns all open paths, least recently touched first, so
// the files with the oldest edits get fresh diagnostics first. Ties break by
// path for deterministic ordering.
func (s *openFileStore) orderedLeastRecent() []string {
	s.mu.Lock()
	docs := make([]*entity.OpenDocument, 0, len(s.files))
	for _, doc := range s.files {
		docs = append(docs, doc)
	}
	s.mu.Unlock()

	sort.Slice(docs, func(i, j int) bool {
		if docs[i].LastTouched.Equal(docs[j].LastTouched) {
			return docs[i].Path < docs[j].Path
		}
		return docs[i].LastTouched.Before(docs[j].LastTouched)
	})

	paths := make([]string, len(docs))
	for i, doc := range docs {
		paths[i] = doc.Path
	}
	return paths
}

// mostRecent returns the most recently touched open path, or "" when no file
// is open.
func (s *openFileStore) mostRecent() string {
	ordered := s.orderedLeastRecent()
	if len(ordered) == 0 {
		return ""
	}
	return ordered[len(ordered)-1]
}
