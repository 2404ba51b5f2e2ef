// Package geotrack defines the core domain types and constants.
// It has zero external dependencies — everything here is pure Go.
package geotrack

type Category string

const (
	CategoryNature       Category = "nature"
	CategoryHistory      Category = "history"
	CategoryCulture      Category = "culture"
	CategoryArchitecture Category = "architecture"
)

// Place is one point of interest. Immutable for the session lifetime:
// places are created at catalog load and replaced only by a reload.
type Place struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Region      string   `json:"region"`
	Lat         float64  `json:"lat"`
	Lng         float64  `json:"lng"`
	Category    Category `json:"category"`
	Rating      float64  `json:"rating"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Audio       string   `json:"audio,omitempty"`
}

// User is the signed-in identity. Absence means "guest".
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

type Settings struct {
	Theme         string `json:"theme"`
	Notifications bool   `json:"notifications"`
	AutoPlay      bool   `json:"autoPlay"`
	OfflineMode   bool   `json:"offlineMode"`
}

// DefaultSettings is what a fresh profile gets before the user changes
// anything, and what a corrupt settings entry falls back to.
func DefaultSettings() Settings {
	return Settings{
		Theme:         ThemeLight,
		Notifications: true,
		AutoPlay:      true,
		OfflineMode:   false,
	}
}

// Review holds a denormalized author snapshot: the user fields are
// copied at creation time and do not track later identity changes.
type Review struct {
	ID         int64  `json:"id"`
	PlaceID    int    `json:"placeId"`
	UserID     int    `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date"`
	Likes      int    `json:"likes"`
}

// Route is curated read-only reference data: an ordered sequence of
// place ids with descriptive metadata.
type Route struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Duration    string `json:"duration"`
	Distance    string `json:"distance"`
	Places      []int  `json:"places"`
	Difficulty  string `json:"difficulty"`
	Description string `json:"description"`
}
