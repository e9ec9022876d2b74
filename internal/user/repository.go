package user

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	userdb "foodgram/internal/user/db"
)

// Repository is a database-backed repository for users and subscriptions.
type Repository struct {
	queries *userdb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: userdb.New(d),
		db:      d,
	}
}

// Create inserts a new user. When the username is empty it is derived from
// the local part of the email, the way the source system registers users.
func (r *Repository) Create(ctx context.Context, u *User) error {
	if u.Email == "" {
		return fmt.Errorf("email must be set")
	}
	if u.Username == "" {
		u.Username, _, _ = strings.Cut(u.Email, "@")
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	id, err := r.queries.InsertUser(ctx, userdb.InsertUserParams{
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	u.ID = id
	return nil
}

// Get retrieves a user by ID. Returns nil when the user does not exist.
func (r *Repository) Get(ctx context.Context, id int64) (*User, error) {
	dbUser, err := r.queries.GetUserByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return fromDB(dbUser), nil
}

// GetByEmail retrieves a user by email. Returns nil when not found.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*User, error) {
	dbUser, err := r.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return fromDB(dbUser), nil
}

// GetByTelegramID retrieves the user linked to a Telegram account.
// Returns nil when no account is linked.
func (r *Repository) GetByTelegramID(ctx context.Context, telegramID int64) (*User, error) {
	dbUser, err := r.queries.GetUserByTelegramID(ctx, sql.NullInt64{Int64: telegramID, Valid: true})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by telegram ID: %w", err)
	}
	return fromDB(dbUser), nil
}

// LinkTelegram attaches a Telegram account to an existing user.
func (r *Repository) LinkTelegram(ctx context.Context, userID, telegramID int64) error {
	err := r.queries.LinkTelegramID(ctx, userdb.LinkTelegramIDParams{
		TelegramID: sql.NullInt64{Int64: telegramID, Valid: true},
		ID:         userID,
	})
	if err != nil {
		return fmt.Errorf("failed to link telegram account: %w", err)
	}
	return nil
}

// SetAvatar stores the path of an uploaded avatar; an empty path clears it.
func (r *Repository) SetAvatar(ctx context.Context, userID int64, path string) error {
	err := r.queries.SetAvatarPath(ctx, userdb.SetAvatarPathParams{
		AvatarPath: sql.NullString{String: path, Valid: path != ""},
		ID:         userID,
	})
	if err != nil {
		return fmt.Errorf("failed to set avatar path: %w", err)
	}
	return nil
}

// Follow subscribes a user to an author's recipes.
func (r *Repository) Follow(ctx context.Context, userID, authorID int64) error {
	if userID == authorID {
		return fmt.Errorf("cannot follow yourself")
	}
	err := r.queries.InsertFollow(ctx, userdb.InsertFollowParams{
		UserID:      userID,
		FollowingID: authorID,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to insert follow: %w", err)
	}
	return nil
}

// Unfollow removes a subscription.
func (r *Repository) Unfollow(ctx context.Context, userID, authorID int64) error {
	err := r.queries.DeleteFollow(ctx, userdb.DeleteFollowParams{
		UserID:      userID,
		FollowingID: authorID,
	})
	if err != nil {
		return fmt.Errorf("failed to delete follow: %w", err)
	}
	return nil
}

// IsFollowing reports whether userID is subscribed to authorID.
func (r *Repository) IsFollowing(ctx context.Context, userID, authorID int64) (bool, error) {
	count, err := r.queries.CountFollow(ctx, userdb.CountFollowParams{
		UserID:      userID,
		FollowingID: authorID,
	})
	if err != nil {
		return false, fmt.Errorf("failed to count follow: %w", err)
	}
	return count > 0, nil
}

// Following lists the authors a user is subscribed to, ordered by username.
func (r *Repository) Following(ctx context.Context, userID int64) ([]User, error) {
	dbUsers, err := r.queries.ListFollowedAuthors(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list followed authors: %w", err)
	}

	var users []User
	for _, dbUser := range dbUsers {
		users = append(users, *fromDB(dbUser))
	}
	return users, nil
}

func fromDB(u userdb.User) *User {
	out := &User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
	if u.AvatarPath.Valid {
		out.AvatarPath = u.AvatarPath.String
	}
	if u.TelegramID.Valid {
		out.TelegramID = u.TelegramID.Int64
	}
	return out
}
