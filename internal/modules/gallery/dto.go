package gallery

// ImageView is one grid cell: the stored path plus every delivery rendition
// the client needs, with the viewer's favorite state folded in.
type ImageView struct {
	ID           string `json:"id"`
	Title        string `json:"title,omitempty"`
	Collection   string `json:"collection,omitempty"`
	ThumbnailURL string `json:"thumbnail_url"`
	PreviewURL   string `json:"preview_url"`
	FullURL      string `json:"full_url"`
	OriginalURL  string `json:"original_url,omitempty"`
	IsFavorite   bool   `json:"is_favorite"`
}

// GalleryView is the authenticated gallery page payload.
type GalleryView struct {
	GalleryID      string         `json:"gallery_id"`
	ClientName     string         `json:"client_name"`
	WelcomeMessage string         `json:"welcome_message,omitempty"`
	AllowDownloads bool           `json:"allow_downloads"`
	Images         []ImageView    `json:"images"`
	Collections    []string       `json:"collections"`
	FavoriteCount  int            `json:"favorite_count"`
	Expiration     ExpirationInfo `json:"expiration"`
}

// ListOptions narrows and orders the image grid.
type ListOptions struct {
	Collection    string
	FavoritesOnly bool
	Sort          string // "asc" (default) or "desc"
}
