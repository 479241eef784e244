package store

import (
	"github.com/bab-library/catalog-service/internal/model"
)

// Seed data keeps the catalog usable when the remote store is missing or
// unreachable. A successful hydrate replaces it entirely.

func seedBooks() []model.Book {
	return []model.Book{
		{
			ID:          "1",
			Title:       "The Great Gatsby",
			Author:      "F. Scott Fitzgerald",
			Genre:       "Fiction",
			Available:   true,
			Description: "A classic American novel set in the Jazz Age, exploring themes of wealth, love, and the American Dream through the eyes of Nick Carraway and his mysterious neighbor Jay Gatsby.",
			CoverImage:  "https://images.unsplash.com/photo-1755545730104-3cb4545282b1?w=1080&q=80",
		},
		{
			ID:          "2",
			Title:       "Atomic Habits",
			Author:      "James Clear",
			Genre:       "Self-Help",
			Available:   false,
			Description: "A comprehensive guide to building good habits and breaking bad ones, with practical strategies backed by science to help you make tiny changes that deliver remarkable results.",
			CoverImage:  "https://images.unsplash.com/photo-1517575563495-023867667b3a?w=1080&q=80",
		},
		{
			ID:          "3",
			Title:       "Dune",
			Author:      "Frank Herbert",
			Genre:       "Science Fiction",
			Available:   true,
			Description: "An epic science fiction novel set on the desert planet Arrakis, following Paul Atreides as he navigates political intrigue, mystical powers, and the control of the universe's most valuable substance.",
			CoverImage:  "https://images.unsplash.com/photo-1677462679580-e56a3223ffff?w=1080&q=80",
		},
	}
}

func seedEvents() []model.Event {
	return []model.Event{
		{
			ID:            "1",
			Title:         "Silent Reading Session",
			Date:          "Friday, September 14th, 2025",
			Time:          "6:00 PM - 8:00 PM",
			Description:   "Join us for a peaceful evening of silent reading. Bring your favorite book or choose from our collection. Refreshments will be provided.",
			WhatsappGroup: "https://chat.whatsapp.com/silent-reading-group",
		},
		{
			ID:            "2",
			Title:         "Book Club Discussion",
			Date:          "Saturday, September 21st, 2025",
			Time:          "2:00 PM - 4:00 PM",
			Description:   "This month we're discussing 'The Great Gatsby'. Come share your thoughts and insights with fellow book lovers.",
			WhatsappGroup: "https://chat.whatsapp.com/book-club-discussion",
		},
		{
			ID:            "3",
			Title:         "Author Meet & Greet",
			Date:          "Sunday, September 29th, 2025",
			Time:          "3:00 PM - 5:00 PM",
			Description:   "Meet local author Sarah Johnson as she discusses her latest novel and signs copies. Light refreshments will be served.",
			WhatsappGroup: "https://chat.whatsapp.com/author-meetup",
		},
	}
}
