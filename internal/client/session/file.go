package session

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/ryan-hugo/cliq-cli/internal/logging"
)

// FileStore keeps the session in a single JSON object on disk, one file per
// profile. Every read goes to disk so concurrent processes see each other's
// writes; every write replaces the file atomically (write-temp + rename).
type FileStore struct {
	path string
	log  logging.Logger

	mu    sync.Mutex
	snap  map[string]string // last content seen or written by this process
	subs  map[string][]*subscription
	watch *fsnotify.Watcher
	done  chan struct{}
}

type subscription struct {
	key string
	fn  func(value string, ok bool)
}

// NewFileStore opens (or creates the directory for) the session file at
// path and starts the cross-process change watcher. The watcher is
// advisory: if it cannot be established the store still works, without
// notifications.
func NewFileStore(path string, log logging.Logger) (*FileStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}

	s := &FileStore{
		path: path,
		log:  log,
		subs: make(map[string][]*subscription),
		done: make(chan struct{}),
	}
	s.snap = s.readFile()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn(context.Background(), "session watcher unavailable", "error", err)
		return s, nil
	}
	// Watch the directory, not the file: the atomic rename on write would
	// otherwise detach the watch.
	if err := w.Add(filepath.Dir(path)); err != nil {
		log.Warn(context.Background(), "session watcher unavailable", "error", err)
		_ = w.Close()
		return s, nil
	}
	s.watch = w
	go s.watchLoop()
	return s, nil
}

// readFile loads the file into a flat map. Any failure (missing file,
// unreadable, bad JSON) yields an empty map; corruption is logged once here
// rather than propagated.
func (s *FileStore) readFile() map[string]string {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warn(context.Background(), "session file unreadable, treating as empty", "path", s.path, "error", err)
		}
		return map[string]string{}
	}
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		s.log.Warn(context.Background(), "session file malformed, treating as empty", "path", s.path, "error", err)
		return map[string]string{}
	}
	if m == nil {
		m = map[string]string{}
	}
	return m
}

// writeFile persists m atomically. Failures are logged, not returned: the
// store contract is that mutations never fail the caller.
func (s *FileStore) writeFile(m map[string]string) {
	data, err := json.Marshal(m)
	if err != nil {
		s.log.Error(context.Background(), "session encode failed", "error", err)
		return
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		s.log.Error(context.Background(), "session write failed", "path", s.path, "error", err)
		return
	}
	if err := os.Rename(tmp, s.path); err != nil {
		s.log.Error(context.Background(), "session write failed", "path", s.path, "error", err)
	}
}

func (s *FileStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.readFile()
	s.snap = m
	v, ok := m[key]
	return v, ok
}

func (s *FileStore) Set(key string, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.readFile()
	m[key] = value
	s.writeFile(m)
	s.snap = m
}

func (s *FileStore) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.readFile()
	if _, ok := m[key]; !ok {
		s.snap = m
		return
	}
	delete(m, key)
	s.writeFile(m)
	s.snap = m
}

func (s *FileStore) Clear() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := s.readFile()
	_, hadToken := m[KeyToken]
	delete(m, KeyToken)
	delete(m, KeyUser)
	s.writeFile(m)
	s.snap = m
	return hadToken
}

func (s *FileStore) Watch(key string, fn func(value string, ok bool)) (stop func()) {
	sub := &subscription{key: key, fn: fn}
	s.mu.Lock()
	s.subs[key] = append(s.subs[key], sub)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		list := s.subs[key]
		for i, it := range list {
			if it == sub {
				s.subs[key] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
}

func (s *FileStore) Close() error {
	close(s.done)
	if s.watch != nil {
		return s.watch.Close()
	}
	return nil
}

// watchLoop turns filesystem events on the session file into per-key
// subscriber callbacks. Writes made through this store update snap under
// the lock first, so self-inflicted events diff to nothing.
func (s *FileStore) watchLoop() {
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.watch.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) && !ev.Has(fsnotify.Remove) {
				continue
			}
			s.notifyChanged()
		case err, ok := <-s.watch.Errors:
			if !ok {
				return
			}
			s.log.Warn(context.Background(), "session watcher error", "error", err)
		}
	}
}

func (s *FileStore) notifyChanged() {
	s.mu.Lock()
	old := s.snap
	m := s.readFile()
	s.snap = m

	type delivery struct {
		fn    func(string, bool)
		value string
		ok    bool
	}
	var pending []delivery
	for key, subs := range s.subs {
		newV, newOK := m[key]
		oldV, oldOK := old[key]
		if newV == oldV && newOK == oldOK {
			continue
		}
		for _, sub := range subs {
			pending = append(pending, delivery{fn: sub.fn, value: newV, ok: newOK})
		}
	}
	s.mu.Unlock()

	for _, d := range pending {
		d.fn(d.value, d.ok)
	}
}
