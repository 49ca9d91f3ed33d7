package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"castmerge/internal/config"
)

// Store manages movie and merge-log persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database and verifies the
// schema version.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Insert adds a movie to the catalog and returns the stored record.
func (s *Store) Insert(ctx context.Context, movie *Movie) (*Movie, error) {
	if movie == nil {
		return nil, errors.New("movie is nil")
	}
	if strings.TrimSpace(movie.Title) == "" {
		return nil, errors.New("movie title is required")
	}

	castJSON, err := encodeCastMembers(movie.CastMembers)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	timestamp := now.Format(time.RFC3339Nano)

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO movies (
            title, year, director, hero, heroine, music_director,
            cast_members, created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		movie.Title,
		nullableInt(movie.Year),
		nullableString(movie.Director),
		nullableString(movie.Hero),
		nullableString(movie.Heroine),
		nullableString(movie.MusicDirector),
		nullableString(castJSON),
		timestamp,
		timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("insert movie: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	return s.GetMovie(ctx, id)
}

// GetMovie fetches a movie by identifier. A missing id returns (nil, nil).
func (s *Store) GetMovie(ctx context.Context, id int64) (*Movie, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+movieColumns+` FROM movies WHERE id = ?`, id)
	movie, err := scanMovie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return movie, nil
}

// SelectMovies returns movies matching the filter, oldest first, bounded by
// limit when positive.
func (s *Store) SelectMovies(ctx context.Context, filter Filter, limit int) ([]*Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies`
	var (
		clauses []string
		args    []any
	)
	if strings.TrimSpace(filter.TitleLike) != "" {
		clauses = append(clauses, "title LIKE ? COLLATE NOCASE")
		args = append(args, "%"+filter.TitleLike+"%")
	}
	if filter.Year != 0 {
		clauses = append(clauses, "year = ?")
		args = append(args, filter.Year)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY id"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select movies: %w", err)
	}
	defer rows.Close()

	var movies []*Movie
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}
	return movies, rows.Err()
}

// UpdateMovie applies a partial update to a movie's name-bearing fields.
func (s *Store) UpdateMovie(ctx context.Context, id int64, patch FieldPatch) error {
	if patch.IsZero() {
		return nil
	}

	sets := make([]string, 0, 5)
	args := make([]any, 0, 6)
	if patch.Director != nil {
		sets = append(sets, "director = ?")
		args = append(args, nullableString(*patch.Director))
	}
	if patch.Hero != nil {
		sets = append(sets, "hero = ?")
		args = append(args, nullableString(*patch.Hero))
	}
	if patch.Heroine != nil {
		sets = append(sets, "heroine = ?")
		args = append(args, nullableString(*patch.Heroine))
	}
	if patch.CastMembers != nil {
		castJSON, err := encodeCastMembers(patch.CastMembers)
		if err != nil {
			return err
		}
		sets = append(sets, "cast_members = ?")
		args = append(args, nullableString(castJSON))
	}
	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC().Format(time.RFC3339Nano))
	args = append(args, id)

	res, err := s.db.ExecContext(ctx, `UPDATE movies SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("update movie: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("update movie: id %d not found", id)
	}
	return nil
}

// Count returns the number of movies in the catalog.
func (s *Store) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return count, nil
}

const movieColumns = "id, title, year, director, hero, heroine, music_director, cast_members, created_at, updated_at"

func scanMovie(scanner interface{ Scan(dest ...any) error }) (*Movie, error) {
	var (
		id            int64
		title         string
		year          sql.NullInt64
		director      sql.NullString
		hero          sql.NullString
		heroine       sql.NullString
		musicDirector sql.NullString
		castMembers   sql.NullString
		createdRaw    sql.NullString
		updatedRaw    sql.NullString
	)

	if err := scanner.Scan(
		&id,
		&title,
		&year,
		&director,
		&hero,
		&heroine,
		&musicDirector,
		&castMembers,
		&createdRaw,
		&updatedRaw,
	); err != nil {
		return nil, err
	}

	cast, err := decodeCastMembers(castMembers.String)
	if err != nil {
		return nil, err
	}

	movie := &Movie{
		ID:            id,
		Title:         title,
		Year:          int(year.Int64),
		Director:      director.String,
		Hero:          hero.String,
		Heroine:       heroine.String,
		MusicDirector: musicDirector.String,
		CastMembers:   cast,
	}
	if created, err := parseTimeString(createdRaw.String); err == nil {
		movie.CreatedAt = created
	}
	if updated, err := parseTimeString(updatedRaw.String); err == nil {
		movie.UpdatedAt = updated
	}
	return movie, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func nullableInt(value int) any {
	if value == 0 {
		return nil
	}
	return value
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	return time.Parse(time.RFC3339Nano, value)
}
