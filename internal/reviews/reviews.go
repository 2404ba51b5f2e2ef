// Package reviews owns the review sequence and its rating aggregates.
package reviews

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/geotrack/discovery/internal/geotrack"
)

var (
	ErrValidation   = errors.New("invalid review")
	ErrAuthRequired = errors.New("sign in required")
	ErrNotFound     = errors.New("review not found")
)

// UserProvider reports the currently signed-in user, if any. The
// preference store satisfies it.
type UserProvider interface {
	CurrentUser() *geotrack.User
}

// Summary is the aggregate over all reviews: count, arithmetic mean
// rounded to two decimals, and a histogram of counts per star.
type Summary struct {
	Count     int     `json:"count"`
	Mean      float64 `json:"mean"`
	Histogram [5]int  `json:"histogram"` // index 0 = one star
}

type Aggregate struct {
	db    *sql.DB
	users UserProvider
}

func New(db *sql.DB, users UserProvider) *Aggregate {
	return &Aggregate{db: db, users: users}
}

// Add validates and inserts a review authored by the current user.
// Fails with ErrValidation for a rating outside 1–5 or an empty
// comment, and with ErrAuthRequired when nobody is signed in; in both
// cases nothing is written. The author fields are a snapshot taken
// now — later identity changes do not update existing reviews.
func (a *Aggregate) Add(ctx context.Context, placeID, rating int, comment string) (geotrack.Review, error) {
	comment = strings.TrimSpace(comment)
	if rating < 1 || rating > 5 {
		return geotrack.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if comment == "" {
		return geotrack.Review{}, fmt.Errorf("%w: comment must not be empty", ErrValidation)
	}

	user := a.users.CurrentUser()
	if user == nil {
		return geotrack.Review{}, ErrAuthRequired
	}

	r := geotrack.Review{
		PlaceID:    placeID,
		UserID:     user.ID,
		UserName:   user.Name,
		UserAvatar: avatarFor(user.Name),
		Rating:     rating,
		Comment:    comment,
	}
	err := a.db.QueryRowContext(ctx, `
		INSERT INTO reviews (place_id, user_id, user_name, user_avatar, rating, comment)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id, created_at, likes
	`, r.PlaceID, r.UserID, r.UserName, r.UserAvatar, r.Rating, r.Comment).Scan(&r.ID, &r.Date, &r.Likes)
	if err != nil {
		return geotrack.Review{}, err
	}
	return r, nil
}

// List returns all reviews, most recent first.
func (a *Aggregate) List(ctx context.Context) ([]geotrack.Review, error) {
	return a.list(ctx, `
		SELECT id, place_id, user_id, user_name, user_avatar, rating, comment, created_at, likes
		FROM reviews ORDER BY id DESC
	`)
}

// ListByPlace returns the reviews for one place, most recent first.
func (a *Aggregate) ListByPlace(ctx context.Context, placeID int) ([]geotrack.Review, error) {
	return a.list(ctx, `
		SELECT id, place_id, user_id, user_name, user_avatar, rating, comment, created_at, likes
		FROM reviews WHERE place_id = ? ORDER BY id DESC
	`, placeID)
}

func (a *Aggregate) list(ctx context.Context, query string, args ...any) ([]geotrack.Review, error) {
	rows, err := a.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []geotrack.Review{}
	for rows.Next() {
		var r geotrack.Review
		if err := rows.Scan(&r.ID, &r.PlaceID, &r.UserID, &r.UserName, &r.UserAvatar,
			&r.Rating, &r.Comment, &r.Date, &r.Likes); err != nil {
			return nil, err
		}
		reviews = append(reviews, r)
	}
	return reviews, rows.Err()
}

// Like increments the like count by exactly one per call. Repeat likes
// from the same viewer are not de-duplicated.
func (a *Aggregate) Like(ctx context.Context, reviewID int64) error {
	result, err := a.db.ExecContext(ctx, `
		UPDATE reviews SET likes = likes + 1 WHERE id = ?
	`, reviewID)
	if err != nil {
		return err
	}
	n, _ := result.RowsAffected()
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Summary computes the rating histogram and mean. With zero reviews the
// mean reports 0, never NaN.
func (a *Aggregate) Summary(ctx context.Context) (Summary, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT rating, COUNT(*) FROM reviews GROUP BY rating
	`)
	if err != nil {
		return Summary{}, err
	}
	defer rows.Close()

	var s Summary
	total := 0
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return Summary{}, err
		}
		if rating >= 1 && rating <= 5 {
			s.Histogram[rating-1] = count
			s.Count += count
			total += rating * count
		}
	}
	if err := rows.Err(); err != nil {
		return Summary{}, err
	}

	if s.Count > 0 {
		s.Mean = math.Round(float64(total)/float64(s.Count)*100) / 100
	}
	return s, nil
}

// CountByUser reports how many reviews a user has authored, for the
// profile view.
func (a *Aggregate) CountByUser(ctx context.Context, userID int) (int, error) {
	var count int
	err := a.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM reviews WHERE user_id = ?
	`, userID).Scan(&count)
	return count, err
}

// Seed inserts demo reviews on first run. Idempotent: does nothing if
// any review exists.
func (a *Aggregate) Seed(ctx context.Context, demo []geotrack.Review) error {
	var count int
	if err := a.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM reviews`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, r := range demo {
		_, err := a.db.ExecContext(ctx, `
			INSERT INTO reviews (place_id, user_id, user_name, user_avatar, rating, comment, created_at, likes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		`, r.PlaceID, r.UserID, r.UserName, r.UserAvatar, r.Rating, r.Comment, r.Date, r.Likes)
		if err != nil {
			return fmt.Errorf("seeding review for place %d: %w", r.PlaceID, err)
		}
	}
	return nil
}

func avatarFor(name string) string {
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return "?"
}
