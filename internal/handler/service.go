package handler

import (
	"context"
	"time"

	"github.com/bab-library/catalog-service/internal/model"
	"github.com/bab-library/catalog-service/internal/openlibrary"
	"github.com/bab-library/catalog-service/internal/session"
	"github.com/bab-library/catalog-service/internal/store"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

var (
	_ CatalogService = (*store.Store)(nil)
	_ SessionService = (*session.Gate)(nil)
	_ LookupService  = (*openlibrary.Client)(nil)
)

type CatalogService interface {
	Books() []model.Book
	GetBook(id string) (model.Book, bool)
	Genres() []string
	AddBook(req model.CreateBookRequest) model.Book
	UpdateBook(id string, upd model.BookUpdate) (model.Book, bool)
	RemoveBook(id string) bool

	Events() []model.Event
	AddEvent(req model.CreateEventRequest) model.Event
	RemoveEvent(id string) bool

	Templates() []model.EventTemplate
	AddTemplate(req model.CreateTemplateRequest) model.EventTemplate
	RemoveTemplate(id string) bool
	CreateEventFromTemplate(templateID, date string) (model.Event, bool)
}

type SessionService interface {
	Login(ctx context.Context, candidate string) (string, error)
	Valid(token string) bool
	Logout(token string)
	TTL() time.Duration
}

type LookupService interface {
	Search(ctx context.Context, query string) []openlibrary.Doc
}
