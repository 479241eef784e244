package repository

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/bab-library/catalog-service/internal/errs"
	"github.com/bab-library/catalog-service/internal/model"
)

// Repository is the persistence gateway over the remote relational store.
// It mirrors, but does not own, the catalog collections.
type Repository interface {
	ListBooks(ctx context.Context) ([]model.Book, error)
	InsertBook(ctx context.Context, book model.Book) (model.Book, error)
	UpdateBook(ctx context.Context, book model.Book) error
	DeleteBook(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]model.Event, error)
	InsertEvent(ctx context.Context, event model.Event) (model.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	ListTemplates(ctx context.Context) ([]model.EventTemplate, error)
	InsertTemplate(ctx context.Context, tpl model.EventTemplate) (model.EventTemplate, error)
	DeleteTemplate(ctx context.Context, id string) error

	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	VerifyAdminCredential(ctx context.Context, candidate string) (bool, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName     = `books`
	eventsTableName    = `events`
	templatesTableName = `event_templates`
	settingsTableName  = `settings`

	AdminPasswordHashKey = `admin_password_hash`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) ListBooks(ctx context.Context) ([]model.Book, error) {
	query, args, err := qb.Select("id", "title", "author", "genre", "available", "description", "cover_image").
		From(booksTableName).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) InsertBook(ctx context.Context, book model.Book) (model.Book, error) {
	query, args, err := qb.Insert(booksTableName).
		Columns("id", "title", "author", "genre", "available", "description", "cover_image").
		Values(book.ID, book.Title, book.Author, book.Genre, book.Available, book.Description, book.CoverImage).
		Suffix("returning id, title, author, genre, available, description, cover_image").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var res model.Book
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		r.log.Error("InsertBook", zap.String("q", query), zap.Any("args", args))
		return model.Book{}, wrapPgErr(err)
	}
	return res, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) error {
	query, args, err := qb.Update(booksTableName).
		Set("title", book.Title).
		Set("author", book.Author).
		Set("genre", book.Genre).
		Set("available", book.Available).
		Set("description", book.Description).
		Set("cover_image", book.CoverImage).
		Where(sq.Eq{"id": book.ID}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("UpdateBook", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

func (r *repository) DeleteBook(ctx context.Context, id string) error {
	return r.deleteByID(ctx, booksTableName, id)
}

func (r *repository) ListEvents(ctx context.Context) ([]model.Event, error) {
	query, args, err := qb.Select("id", "title", "date", "time", "description", "whatsapp_group").
		From(eventsTableName).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var events []model.Event
	if err := r.db.SelectContext(ctx, &events, query, args...); err != nil {
		return nil, err
	}
	return events, nil
}

func (r *repository) InsertEvent(ctx context.Context, event model.Event) (model.Event, error) {
	query, args, err := qb.Insert(eventsTableName).
		Columns("id", "title", "date", "time", "description", "whatsapp_group").
		Values(event.ID, event.Title, event.Date, event.Time, event.Description, event.WhatsappGroup).
		Suffix("returning id, title, date, time, description, whatsapp_group").
		ToSql()
	if err != nil {
		return model.Event{}, err
	}
	var res model.Event
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		r.log.Error("InsertEvent", zap.String("q", query), zap.Any("args", args))
		return model.Event{}, wrapPgErr(err)
	}
	return res, nil
}

func (r *repository) DeleteEvent(ctx context.Context, id string) error {
	return r.deleteByID(ctx, eventsTableName, id)
}

func (r *repository) ListTemplates(ctx context.Context) ([]model.EventTemplate, error) {
	query, args, err := qb.Select("id", "title", "default_time", "description", "whatsapp_group", "category").
		From(templatesTableName).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var tpls []model.EventTemplate
	if err := r.db.SelectContext(ctx, &tpls, query, args...); err != nil {
		return nil, err
	}
	return tpls, nil
}

func (r *repository) InsertTemplate(ctx context.Context, tpl model.EventTemplate) (model.EventTemplate, error) {
	query, args, err := qb.Insert(templatesTableName).
		Columns("id", "title", "default_time", "description", "whatsapp_group", "category").
		Values(tpl.ID, tpl.Title, tpl.DefaultTime, tpl.Description, tpl.WhatsappGroup, tpl.Category).
		Suffix("returning id, title, default_time, description, whatsapp_group, category").
		ToSql()
	if err != nil {
		return model.EventTemplate{}, err
	}
	var res model.EventTemplate
	if err := r.db.GetContext(ctx, &res, query, args...); err != nil {
		r.log.Error("InsertTemplate", zap.String("q", query), zap.Any("args", args))
		return model.EventTemplate{}, wrapPgErr(err)
	}
	return res, nil
}

func (r *repository) DeleteTemplate(ctx context.Context, id string) error {
	return r.deleteByID(ctx, templatesTableName, id)
}

func (r *repository) GetSetting(ctx context.Context, key string) (string, error) {
	query, args, err := qb.Select("value").
		From(settingsTableName).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", err
	}
	var value string
	if err := r.db.GetContext(ctx, &value, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", errs.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *repository) SetSetting(ctx context.Context, key, value string) error {
	query, args, err := qb.Insert(settingsTableName).
		Columns("key", "value").
		Values(key, value).
		Suffix("on conflict (key) do update set value = excluded.value").
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("SetSetting", zap.String("key", key))
		return err
	}
	return nil
}

// VerifyAdminCredential compares the candidate against the stored bcrypt
// hash. The plaintext secret never leaves the store boundary.
func (r *repository) VerifyAdminCredential(ctx context.Context, candidate string) (bool, error) {
	hash, err := r.GetSetting(ctx, AdminPasswordHashKey)
	if err != nil {
		return false, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *repository) deleteByID(ctx context.Context, table, id string) error {
	query, args, err := qb.Delete(table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		r.log.Error("delete", zap.String("q", query), zap.Any("args", args))
		return err
	}
	return nil
}

func wrapPgErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return errs.ErrConflict
	}
	return err
}
