package openlibrary_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bab-library/catalog-service/internal/model"
	"github.com/bab-library/catalog-service/internal/openlibrary"
)

func TestClient_Search(t *testing.T) {
	t.Parallel()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"docs":[
			{"key":"/works/OL1W","title":"Dune","author_name":["Frank Herbert"],"first_publish_year":1965,"cover_i":123,"subject":["Science Fiction"]},
			{"key":"/works/OL2W","title":"Dune Messiah","author_name":["Frank Herbert"],"first_publish_year":1969}
		]}`))
	}))
	defer srv.Close()

	c := openlibrary.NewClient(zap.NewExample(), openlibrary.Config{BaseURL: srv.URL})
	docs := c.Search(context.Background(), "dune messiah")

	require.Equal(t, "/search.json?q=dune+messiah&limit=10", gotPath)
	require.Len(t, docs, 2)
	require.Equal(t, "Dune", docs[0].Title)
	require.Equal(t, 1969, docs[1].FirstPublishYear)
}

func TestClient_SearchEmptyQuery(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected for an empty query")
	}))
	defer srv.Close()

	c := openlibrary.NewClient(zap.NewExample(), openlibrary.Config{BaseURL: srv.URL})
	require.Nil(t, c.Search(context.Background(), "   "))
}

func TestClient_SearchFailureYieldsEmpty(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := openlibrary.NewClient(zap.NewExample(), openlibrary.Config{BaseURL: srv.URL})
	require.Nil(t, c.Search(context.Background(), "dune"))
}

func TestToBookDraft(t *testing.T) {
	t.Parallel()
	var tests = []struct {
		name string
		doc  openlibrary.Doc
		want model.BookDraft
	}{
		{
			name: "full document",
			doc: openlibrary.Doc{
				Title:            "Dune",
				AuthorName:       []string{"Frank Herbert", "Someone Else"},
				FirstPublishYear: 1965,
				CoverID:          123,
				Subject:          []string{"Science Fiction", "Deserts", "Politics", "Worms"},
			},
			want: model.BookDraft{
				Title:       "Dune",
				Author:      "Frank Herbert",
				Genre:       "Science Fiction",
				Available:   true,
				Description: "Published in 1965. Science Fiction, Deserts, Politics",
				CoverImage:  "https://covers.openlibrary.org/b/id/123-L.jpg",
			},
		},
		{
			name: "bare document falls back to defaults",
			doc:  openlibrary.Doc{Title: "Mystery Tome"},
			want: model.BookDraft{
				Title:       "Mystery Tome",
				Author:      "Unknown Author",
				Available:   true,
				Description: "Published in Unknown year.",
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, openlibrary.ToBookDraft(tt.doc))
		})
	}
}
