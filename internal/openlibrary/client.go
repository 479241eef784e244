package openlibrary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bab-library/catalog-service/internal/model"
	"github.com/bab-library/catalog-service/pkg/circuit_breaker"
)

const (
	searchLimit       = 10
	coverURLTemplate  = "https://covers.openlibrary.org/b/id/%d-L.jpg"
	unknownAuthorName = "Unknown Author"
)

type Config struct {
	BaseURL string `envconfig:"OPENLIBRARY_URL" default:"https://openlibrary.org"`
}

// Doc is a single Open Library search hit.
type Doc struct {
	Key              string   `json:"key"`
	Title            string   `json:"title"`
	AuthorName       []string `json:"author_name"`
	FirstPublishYear int      `json:"first_publish_year"`
	CoverID          int      `json:"cover_i"`
	Subject          []string `json:"subject"`
}

type searchResponse struct {
	Docs []Doc `json:"docs"`
}

type Client struct {
	log     *zap.Logger
	client  *http.Client
	baseURL string
	cb      circuit_breaker.CircuitBreaker
}

func NewClient(log *zap.Logger, cfg Config) *Client {
	return &Client{
		log:     log.Named("openlibrary"),
		client:  &http.Client{Timeout: time.Minute},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		cb:      circuit_breaker.New(100, time.Second, 0.2, 2),
	}
}

// Search queries the external metadata service for candidate books.
// Any failure yields an empty result set; the caller never sees an error.
func (c *Client) Search(ctx context.Context, query string) []Doc {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	var docs []Doc
	if err := c.cb.Call(func() error {
		req, err := http.NewRequestWithContext(
			ctx,
			http.MethodGet,
			fmt.Sprintf("%s/search.json?q=%s&limit=%d", c.baseURL, url.QueryEscape(query), searchLimit),
			http.NoBody)
		if err != nil {
			return err
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("openlibrary status %d", resp.StatusCode)
		}
		var sr searchResponse
		if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
			return err
		}
		docs = sr.Docs
		return nil
	}); err != nil {
		c.log.Warn("search failed", zap.String("query", query), zap.Error(err))
		return nil
	}

	if len(docs) > searchLimit {
		docs = docs[:searchLimit]
	}
	return docs
}

// ToBookDraft maps a search hit into the local book shape with the default
// substitutions the add-book form expects.
func ToBookDraft(doc Doc) model.BookDraft {
	author := unknownAuthorName
	if len(doc.AuthorName) > 0 {
		author = doc.AuthorName[0]
	}

	genre := ""
	if len(doc.Subject) > 0 {
		genre = doc.Subject[0]
	}

	year := "Unknown year"
	if doc.FirstPublishYear > 0 {
		year = fmt.Sprintf("%d", doc.FirstPublishYear)
	}
	subjects := doc.Subject
	if len(subjects) > 3 {
		subjects = subjects[:3]
	}

	cover := ""
	if doc.CoverID > 0 {
		cover = fmt.Sprintf(coverURLTemplate, doc.CoverID)
	}

	return model.BookDraft{
		Title:       doc.Title,
		Author:      author,
		Genre:       genre,
		Available:   true,
		Description: strings.TrimSpace(fmt.Sprintf("Published in %s. %s", year, strings.Join(subjects, ", "))),
		CoverImage:  cover,
	}
}
