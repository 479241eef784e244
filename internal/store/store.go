package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/bab-library/catalog-service/internal/model"
	"github.com/bab-library/catalog-service/internal/repository"
)

const (
	defaultGenre         = "Fiction"
	defaultCoverImage    = "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?w=400&h=600&fit=crop"
	defaultWhatsappGroup = "https://chat.whatsapp.com/default-group"

	persistTimeout = 15 * time.Second
)

// Auditor records admin mutations on a side channel. Implementations must
// not block the caller.
type Auditor interface {
	Record(action, collection, entityID string)
}

// Store is the authoritative in-memory view of the catalog. Mutations apply
// locally first and are pushed to the persistence gateway fire-and-forget:
// a failed remote write is logged, never rolled back, so the local and
// remote state may diverge until the next hydrate.
type Store struct {
	mu        sync.RWMutex
	books     []model.Book
	events    []model.Event
	templates []model.EventTemplate

	repo  repository.Repository // nil when the remote store is not configured
	audit Auditor               // nil when auditing is disabled
	log   *zap.Logger
}

func New(repo repository.Repository, audit Auditor, log *zap.Logger) *Store {
	return &Store{
		books:     seedBooks(),
		events:    seedEvents(),
		templates: nil,
		repo:      repo,
		audit:     audit,
		log:       log.Named("store"),
	}
}

// Hydrate loads all three collections from the persistence gateway and
// replaces the seed data wholesale. It never merges. Any failure keeps the
// seed data and is only logged.
func (s *Store) Hydrate(ctx context.Context) {
	if s.repo == nil {
		s.log.Warn("remote store not configured, serving seed data")
		return
	}

	var (
		books     []model.Book
		events    []model.Event
		templates []model.EventTemplate
	)
	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() (err error) {
		books, err = s.repo.ListBooks(ctx)
		return err
	})
	gg.Go(func() (err error) {
		events, err = s.repo.ListEvents(ctx)
		return err
	})
	gg.Go(func() (err error) {
		templates, err = s.repo.ListTemplates(ctx)
		return err
	})
	if err := gg.Wait(); err != nil {
		s.log.Warn("hydrate failed, keeping seed data", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.books = books
	s.events = events
	s.templates = templates
	s.mu.Unlock()

	s.log.Info("hydrated from remote store",
		zap.Int("books", len(books)),
		zap.Int("events", len(events)),
		zap.Int("templates", len(templates)),
	)
}

func (s *Store) Books() []model.Book {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Book, len(s.books))
	copy(out, s.books)
	return out
}

func (s *Store) GetBook(id string) (model.Book, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, b := range s.books {
		if b.ID == id {
			return b, true
		}
	}
	return model.Book{}, false
}

// Genres derives the distinct genre set across all books, sorted.
func (s *Store) Genres() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{}, len(s.books))
	genres := make([]string, 0, len(s.books))
	for _, b := range s.books {
		if _, ok := seen[b.Genre]; ok {
			continue
		}
		seen[b.Genre] = struct{}{}
		genres = append(genres, b.Genre)
	}
	sort.Strings(genres)
	return genres
}

func (s *Store) AddBook(req model.CreateBookRequest) model.Book {
	book := model.Book{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Author:      req.Author,
		Genre:       req.Genre,
		Available:   req.Available,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	}
	if book.Genre == "" {
		book.Genre = defaultGenre
	}
	if book.CoverImage == "" {
		book.CoverImage = defaultCoverImage
	}

	s.mu.Lock()
	s.books = append(s.books, book)
	s.mu.Unlock()

	s.record("add", "books", book.ID)
	s.persist("InsertBook", func(ctx context.Context) error {
		_, err := s.repo.InsertBook(ctx, book)
		return err
	})
	return book
}

// UpdateBook merges the non-nil fields into the matching book and pushes
// the full updated record remotely. A missing id is a no-op.
func (s *Store) UpdateBook(id string, upd model.BookUpdate) (model.Book, bool) {
	s.mu.Lock()
	idx := -1
	for i, b := range s.books {
		if b.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return model.Book{}, false
	}
	book := s.books[idx]
	if upd.Title != nil {
		book.Title = *upd.Title
	}
	if upd.Author != nil {
		book.Author = *upd.Author
	}
	if upd.Genre != nil {
		book.Genre = *upd.Genre
	}
	if upd.Available != nil {
		book.Available = *upd.Available
	}
	if upd.Description != nil {
		book.Description = *upd.Description
	}
	if upd.CoverImage != nil {
		book.CoverImage = *upd.CoverImage
	}
	s.books[idx] = book
	s.mu.Unlock()

	s.record("update", "books", book.ID)
	s.persist("UpdateBook", func(ctx context.Context) error {
		return s.repo.UpdateBook(ctx, book)
	})
	return book, true
}

func (s *Store) RemoveBook(id string) bool {
	s.mu.Lock()
	books, ok := removeFirst(s.books, func(b model.Book) bool { return b.ID == id })
	s.books = books
	s.mu.Unlock()
	if !ok {
		return false
	}
	s.record("remove", "books", id)
	s.persist("DeleteBook", func(ctx context.Context) error {
		return s.repo.DeleteBook(ctx, id)
	})
	return true
}

func (s *Store) Events() []model.Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Store) AddEvent(req model.CreateEventRequest) model.Event {
	event := model.Event{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Date:          req.Date,
		Time:          req.Time,
		Description:   req.Description,
		WhatsappGroup: req.WhatsappGroup,
	}
	if event.WhatsappGroup == "" {
		event.WhatsappGroup = defaultWhatsappGroup
	}

	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()

	s.record("add", "events", event.ID)
	s.persist("InsertEvent", func(ctx context.Context) error {
		_, err := s.repo.InsertEvent(ctx, event)
		return err
	})
	return event
}

func (s *Store) RemoveEvent(id string) bool {
	s.mu.Lock()
	events, ok := removeFirst(s.events, func(e model.Event) bool { return e.ID == id })
	s.events = events
	s.mu.Unlock()
	if !ok {
		return false
	}
	s.record("remove", "events", id)
	s.persist("DeleteEvent", func(ctx context.Context) error {
		return s.repo.DeleteEvent(ctx, id)
	})
	return true
}

func (s *Store) Templates() []model.EventTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.EventTemplate, len(s.templates))
	copy(out, s.templates)
	return out
}

func (s *Store) AddTemplate(req model.CreateTemplateRequest) model.EventTemplate {
	tpl := model.EventTemplate{
		ID:            uuid.NewString(),
		Title:         req.Title,
		DefaultTime:   req.DefaultTime,
		Description:   req.Description,
		WhatsappGroup: req.WhatsappGroup,
		Category:      req.Category,
	}
	if tpl.WhatsappGroup == "" {
		tpl.WhatsappGroup = defaultWhatsappGroup
	}

	s.mu.Lock()
	s.templates = append(s.templates, tpl)
	s.mu.Unlock()

	s.record("add", "event_templates", tpl.ID)
	s.persist("InsertTemplate", func(ctx context.Context) error {
		_, err := s.repo.InsertTemplate(ctx, tpl)
		return err
	})
	return tpl
}

func (s *Store) RemoveTemplate(id string) bool {
	s.mu.Lock()
	templates, ok := removeFirst(s.templates, func(t model.EventTemplate) bool { return t.ID == id })
	s.templates = templates
	s.mu.Unlock()
	if !ok {
		return false
	}
	s.record("remove", "event_templates", id)
	s.persist("DeleteTemplate", func(ctx context.Context) error {
		return s.repo.DeleteTemplate(ctx, id)
	})
	return true
}

// CreateEventFromTemplate copies the template fields, combines them with
// the supplied date string and delegates to AddEvent.
func (s *Store) CreateEventFromTemplate(templateID, date string) (model.Event, bool) {
	// Copy the template while the lock is held: removeFirst shifts the
	// backing array in place, so a pointer into s.templates goes stale.
	var (
		tpl   model.EventTemplate
		found bool
	)
	s.mu.RLock()
	for i := range s.templates {
		if s.templates[i].ID == templateID {
			tpl = s.templates[i]
			found = true
			break
		}
	}
	s.mu.RUnlock()
	if !found {
		return model.Event{}, false
	}

	return s.AddEvent(model.CreateEventRequest{
		Title:         tpl.Title,
		Date:          date,
		Time:          tpl.DefaultTime,
		Description:   tpl.Description,
		WhatsappGroup: tpl.WhatsappGroup,
	}), true
}

func removeFirst[T any](items []T, match func(T) bool) ([]T, bool) {
	for i, it := range items {
		if match(it) {
			return append(items[:i], items[i+1:]...), true
		}
	}
	return items, false
}

// persist dispatches a remote write without awaiting it. Failures are
// logged; the optimistic local mutation stands.
func (s *Store) persist(op string, fn func(ctx context.Context) error) {
	if s.repo == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := fn(ctx); err != nil {
			s.log.Warn("remote persist failed", zap.String("op", op), zap.Error(err))
		}
	}()
}

func (s *Store) record(action, collection, id string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(action, collection, id)
}
