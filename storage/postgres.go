package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alex-pricope/snackify/logging"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

// OpenPostgres connects through the pgx driver and checks the connection.
func OpenPostgres(ctx context.Context, dsn string) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to postgres: %w", err)
	}
	logging.Log.Info("Connected to PostgreSQL")
	return db, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == uniqueViolation
	}
	return false
}

// snackRow mirrors the snacks table column names.
type snackRow struct {
	ID             int            `db:"id"`
	Name           string         `db:"name"`
	Country        string         `db:"country"`
	Description    string         `db:"description"`
	Type           string         `db:"type"`
	ImageURL       string         `db:"image_url"`
	Photographer   string         `db:"photographer"`
	Tags           pq.StringArray `db:"tags"`
	BaseTaste      float64        `db:"base_taste_rating"`
	BaseSpiciness  float64        `db:"base_spiciness_rating"`
	BaseUniqueness float64        `db:"base_uniqueness_rating"`
	BaseCount      int            `db:"base_rating_count"`
	CreatedAt      time.Time      `db:"created_at"`
}

func (r snackRow) toSnack() *Snack {
	tags := []string(r.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &Snack{
		ID:             r.ID,
		Name:           r.Name,
		Country:        r.Country,
		Description:    r.Description,
		Type:           r.Type,
		ImageURL:       r.ImageURL,
		Photographer:   r.Photographer,
		Tags:           tags,
		BaseTaste:      r.BaseTaste,
		BaseSpiciness:  r.BaseSpiciness,
		BaseUniqueness: r.BaseUniqueness,
		BaseCount:      r.BaseCount,
		CreatedAt:      r.CreatedAt,
	}
}

const snackColumns = `id, name, country, description, type, image_url, photographer, tags,
	base_taste_rating::float8 AS base_taste_rating,
	base_spiciness_rating::float8 AS base_spiciness_rating,
	base_uniqueness_rating::float8 AS base_uniqueness_rating,
	base_rating_count, created_at`

type PostgresSnackStorage struct {
	DB *sqlx.DB
}

func (s *PostgresSnackStorage) Get(ctx context.Context, id int) (*Snack, error) {
	var row snackRow
	err := s.DB.GetContext(ctx, &row, `SELECT `+snackColumns+` FROM snacks WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		logging.Log.Warnf("SNACK: no snack found with ID %d", id)
		return nil, nil
	}
	if err != nil {
		logging.Log.Errorf("SNACK: select for ID %d failed: %v", id, err)
		return nil, err
	}
	return row.toSnack(), nil
}

func (s *PostgresSnackStorage) GetAll(ctx context.Context) ([]*Snack, error) {
	var rows []snackRow
	if err := s.DB.SelectContext(ctx, &rows, `SELECT `+snackColumns+` FROM snacks ORDER BY id ASC`); err != nil {
		logging.Log.Errorf("SNACK: select all failed: %v", err)
		return nil, err
	}

	snacks := make([]*Snack, 0, len(rows))
	for _, r := range rows {
		snacks = append(snacks, r.toSnack())
	}
	return snacks, nil
}

func (s *PostgresSnackStorage) Create(ctx context.Context, snack *Snack) error {
	columns := []string{"name", "country", "description", "type", "image_url", "photographer", "tags",
		"base_taste_rating", "base_spiciness_rating", "base_uniqueness_rating", "base_rating_count"}
	args := []interface{}{snack.Name, snack.Country, snack.Description, snack.Type, snack.ImageURL, snack.Photographer,
		pq.Array(snack.Tags), snack.BaseTaste, snack.BaseSpiciness, snack.BaseUniqueness, snack.BaseCount}
	if snack.ID != 0 {
		columns = append(columns, "id")
		args = append(args, snack.ID)
	}
	if !snack.CreatedAt.IsZero() {
		columns = append(columns, "created_at")
		args = append(args, snack.CreatedAt)
	}

	query := fmt.Sprintf(`INSERT INTO snacks (%s) VALUES (%s) RETURNING id, created_at`,
		strings.Join(columns, ", "), placeholders(len(columns)))

	if err := s.DB.QueryRowxContext(ctx, query, args...).Scan(&snack.ID, &snack.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			logging.Log.Warnf("SNACK: item with ID %d already exists", snack.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("SNACK: failed to create snack: %v", err)
		return err
	}
	return nil
}

func (s *PostgresSnackStorage) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.DB.GetContext(ctx, &n, `SELECT COUNT(*) FROM snacks`); err != nil {
		logging.Log.Errorf("SNACK: count failed: %v", err)
		return 0, err
	}
	return n, nil
}

type PostgresRatingStorage struct {
	DB *sqlx.DB
}

func (s *PostgresRatingStorage) Create(ctx context.Context, rating *Rating) error {
	if err := stamp(&rating.ID, &rating.CreatedAt, &rating.SortKey); err != nil {
		logging.Log.Errorf("RATING: failed to generate rating id: %v", err)
		return err
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO ratings (id, snack_id, taste, spiciness, uniqueness, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, rating.ID, rating.SnackID, rating.Taste, rating.Spiciness, rating.Uniqueness, rating.CreatedAt)
	if err != nil {
		logging.Log.Errorf("RATING: failed to create rating for snack %d: %v", rating.SnackID, err)
		return err
	}
	return nil
}

func (s *PostgresRatingStorage) GetBySnack(ctx context.Context, snackID int) ([]*Rating, error) {
	ratings := make([]*Rating, 0)
	err := s.DB.SelectContext(ctx, &ratings, `
		SELECT id, snack_id, taste, spiciness, uniqueness, created_at
		FROM ratings
		WHERE snack_id = $1
		ORDER BY created_at DESC, id DESC
	`, snackID)
	if err != nil {
		logging.Log.Errorf("RATING: failed to select ratings for snack %d: %v", snackID, err)
		return nil, err
	}
	for _, r := range ratings {
		r.SortKey = eventSortKey(r.CreatedAt, r.ID)
	}
	return ratings, nil
}

type PostgresCommentStorage struct {
	DB *sqlx.DB
}

func (s *PostgresCommentStorage) Create(ctx context.Context, comment *Comment) error {
	if err := stamp(&comment.ID, &comment.CreatedAt, &comment.SortKey); err != nil {
		logging.Log.Errorf("COMMENT: failed to generate comment id: %v", err)
		return err
	}

	_, err := s.DB.ExecContext(ctx, `
		INSERT INTO comments (id, snack_id, text, author, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, comment.ID, comment.SnackID, comment.Text, comment.Author, comment.CreatedAt)
	if err != nil {
		logging.Log.Errorf("COMMENT: failed to create comment for snack %d: %v", comment.SnackID, err)
		return err
	}
	return nil
}

func (s *PostgresCommentStorage) GetBySnack(ctx context.Context, snackID int) ([]*Comment, error) {
	comments := make([]*Comment, 0)
	err := s.DB.SelectContext(ctx, &comments, `
		SELECT id, snack_id, text, author, created_at
		FROM comments
		WHERE snack_id = $1
		ORDER BY created_at DESC, id DESC
	`, snackID)
	if err != nil {
		logging.Log.Errorf("COMMENT: failed to select comments for snack %d: %v", snackID, err)
		return nil, err
	}
	for _, c := range comments {
		c.SortKey = eventSortKey(c.CreatedAt, c.ID)
	}
	return comments, nil
}

const profileColumns = `id, email, COALESCE(username, '') AS username, profile_picture_url, created_at, updated_at`

type PostgresProfileStorage struct {
	DB *sqlx.DB
}

func (s *PostgresProfileStorage) Get(ctx context.Context, id string) (*Profile, error) {
	var profile Profile
	err := s.DB.GetContext(ctx, &profile, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logging.Log.Errorf("PROFILE: select for ID %s failed: %v", id, err)
		return nil, err
	}
	return &profile, nil
}

func (s *PostgresProfileStorage) Create(ctx context.Context, profile *Profile) error {
	err := s.DB.QueryRowxContext(ctx, `
		INSERT INTO profiles (id, email, username, profile_picture_url)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`, profile.ID, profile.Email, profile.Username, profile.ProfilePictureURL).Scan(&profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			logging.Log.Warnf("PROFILE: profile %s already exists", profile.ID)
			return ErrItemWithIDAlreadyExists
		}
		logging.Log.Errorf("PROFILE: failed to create profile: %v", err)
		return err
	}
	return nil
}

func (s *PostgresProfileStorage) Update(ctx context.Context, id string, update ProfileUpdate) (*Profile, error) {
	if update.Empty() {
		return nil, ErrNoFieldsToUpdate
	}

	sets := []string{"updated_at = NOW()"}
	args := []interface{}{id}
	if update.Username != nil {
		args = append(args, *update.Username)
		sets = append(sets, "username = $"+strconv.Itoa(len(args)))
	}
	if update.ProfilePictureURL != nil {
		var picture *string
		if *update.ProfilePictureURL != "" {
			picture = update.ProfilePictureURL
		}
		args = append(args, picture)
		sets = append(sets, "profile_picture_url = $"+strconv.Itoa(len(args)))
	}

	query := `UPDATE profiles SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + profileColumns

	var profile Profile
	err := s.DB.GetContext(ctx, &profile, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		logging.Log.Errorf("PROFILE: failed to update profile %s: %v", id, err)
		return nil, err
	}
	return &profile, nil
}

func placeholders(n int) string {
	out := make([]string, n)
	for i := range out {
		out[i] = "$" + strconv.Itoa(i+1)
	}
	return strings.Join(out, ", ")
}
