package model

type Book struct {
	ID          string `json:"id" db:"id"`
	Title       string `json:"title" db:"title"`
	Author      string `json:"author" db:"author"`
	Genre       string `json:"genre" db:"genre"`
	Available   bool   `json:"available" db:"available"`
	Description string `json:"description" db:"description"`
	CoverImage  string `json:"coverImage" db:"cover_image"`
}

type Event struct {
	ID            string `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	Date          string `json:"date" db:"date"`
	Time          string `json:"time" db:"time"`
	Description   string `json:"description" db:"description"`
	WhatsappGroup string `json:"whatsappGroup" db:"whatsapp_group"`
}

type EventTemplate struct {
	ID            string `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	DefaultTime   string `json:"defaultTime" db:"default_time"`
	Description   string `json:"description" db:"description"`
	WhatsappGroup string `json:"whatsappGroup" db:"whatsapp_group"`
	Category      string `json:"category" db:"category"`
}

// BookUpdate carries a partial field set; nil means "leave as is".
type BookUpdate struct {
	Title       *string `json:"title"`
	Author      *string `json:"author"`
	Genre       *string `json:"genre"`
	Available   *bool   `json:"available"`
	Description *string `json:"description"`
	CoverImage  *string `json:"coverImage"`
}

type CreateBookRequest struct {
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Genre       string `json:"genre"`
	Available   bool   `json:"available"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
}

type CreateEventRequest struct {
	Title         string `json:"title" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	Description   string `json:"description" validate:"required"`
	WhatsappGroup string `json:"whatsappGroup"`
}

type CreateTemplateRequest struct {
	Title         string `json:"title" validate:"required"`
	DefaultTime   string `json:"defaultTime" validate:"required"`
	Description   string `json:"description" validate:"required"`
	WhatsappGroup string `json:"whatsappGroup"`
	Category      string `json:"category"`
}

type CreateFromTemplateRequest struct {
	Date string `json:"date" validate:"required"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expiresIn"`
}

// BookDraft pre-fills the add-book form from an external lookup hit.
// It is never submitted as-is; the admin may edit every field.
type BookDraft struct {
	Title       string `json:"title"`
	Author      string `json:"author"`
	Genre       string `json:"genre"`
	Available   bool   `json:"available"`
	Description string `json:"description"`
	CoverImage  string `json:"coverImage"`
}
