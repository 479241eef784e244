package links

import (
	"fmt"
	"net/url"

	"github.com/bab-library/catalog-service/internal/model"
)

type Config struct {
	RentContact    string `envconfig:"RENT_CONTACT" default:"+01004709848"`
	CommunityGroup string `envconfig:"COMMUNITY_GROUP" default:"https://chat.whatsapp.com/Jaad8oEOUrDDxPMRkGmRbb"`
}

type JoinInfo struct {
	GroupLink  string `json:"groupLink"`
	QRImageURL string `json:"qrImageUrl"`
}

// RentLink builds the messaging deep link for a rent request.
func RentLink(cfg Config, book model.Book) string {
	text := fmt.Sprintf("Hi! I'd like to rent %q by %s", book.Title, book.Author)
	return fmt.Sprintf("https://wa.me/%s?text=%s", cfg.RentContact, url.QueryEscape(text))
}

// CommunityJoinInfo returns the group invite link together with a scannable
// code image URL rendered by the external QR service.
func CommunityJoinInfo(cfg Config) JoinInfo {
	return JoinInfo{
		GroupLink:  cfg.CommunityGroup,
		QRImageURL: "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=" + url.QueryEscape(cfg.CommunityGroup),
	}
}
