package domain

// Defaults applied to a freshly registered account and to offers published
// without an image.
const (
	DefaultSlogan     = "A new user on Mercadillo!"
	DefaultRank       = "new"
	DefaultPhotoURL   = "https://via.placeholder.com/120/1a1a2e/e0e0e0?text=%F0%9F%91%A4"
	DefaultOfferImage = "https://via.placeholder.com/200/4a4a6b/e0e0e0?text=NO+IMAGE"

	// NotApplicable is the sentinel stored in the apparel-only fields of a
	// non-apparel offer.
	NotApplicable = "No aplica"
)

// Account is an application user. The username is the primary key across
// the whole account collection; accounts are never deleted.
type Account struct {
	Username      string         `json:"username"`
	Password      string         `json:"password"`
	Profile       Profile        `json:"profile"`
	OfferIDs      []int64        `json:"offer_ids"`
	Notifications []Notification `json:"notifications"`
}

// Profile holds the presentation-facing attributes of an account.
type Profile struct {
	Slogan    string    `json:"slogan"`
	Private   bool      `json:"private"`
	Biography string    `json:"biography"`
	Contact   string    `json:"contact"`
	Location  string    `json:"location"`
	PhotoURL  string    `json:"photo_url"`
	Rank      string    `json:"rank"`
	Ratings   []float64 `json:"ratings"`
}

// DefaultProfile returns the profile assigned on registration.
func DefaultProfile() Profile {
	return Profile{
		Slogan:   DefaultSlogan,
		PhotoURL: DefaultPhotoURL,
		Rank:     DefaultRank,
		Ratings:  []float64{},
	}
}

// ProfileUpdate carries the editable profile fields. Nil fields are left
// untouched by an update.
type ProfileUpdate struct {
	Slogan    *string
	Biography *string
	Contact   *string
	Location  *string
}

// Offer is a published marketplace listing. Offers are append-only: once
// published they are never mutated or deleted.
type Offer struct {
	ID          int64    `json:"id"`
	Author      string   `json:"author"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Price       string   `json:"price"` // stored as entered, no currency validation
	ListingType string   `json:"listing_type"`
	ImageURL    string   `json:"image_url"`
	Apparel     bool     `json:"apparel"`
	Size        string   `json:"size"`
	Gender      string   `json:"gender"`
	Date        string   `json:"date"`       // calendar date, YYYY-MM-DD
	Interested  []string `json:"interested"` // reserved, no flow populates it yet
}

// Message is one entry of a two-party chat thread. The same record is
// mirrored into both participants' thread views.
type Message struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

// Notification is a per-account notice. Rendered by the presentation
// layer; no core flow produces one.
type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
