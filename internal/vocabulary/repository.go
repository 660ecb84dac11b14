package vocabulary

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// ListFilter narrows and pages a word listing. Zero values mean "no filter".
type ListFilter struct {
	Language Language
	Status   Status
	SortBy   string
	Order    string
	Page     int
	Limit    int
}

// Every word operation is owner-scoped: a word id belonging to another user
// behaves exactly like a missing id.
type Repository interface {
	CreateBatch(ctx context.Context, words []SavedWord) error
	FindByID(ctx context.Context, ownerID, id string) (*SavedWord, error)
	List(ctx context.Context, ownerID string, filter ListFilter) ([]SavedWord, int, error)
	UpdateStatus(ctx context.Context, ownerID, id string, status Status, reviewDate *time.Time) (int64, error)
	Delete(ctx context.Context, ownerID, id string) (int64, error)
	DeleteBatch(ctx context.Context, ownerID string, ids []string) (int64, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// CreateBatch inserts saved words in one transaction.
func (r *DBRepository) CreateBatch(ctx context.Context, words []SavedWord) error {
	if len(words) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, word := range words {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO words (id, owner_id, analysis_id, lemma, original, language, part_of_speech,
				translation, definition, ipa_notation, hangul_notation, example, status, saved_at, review_date)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			word.ID, word.OwnerID, word.AnalysisID, word.Lemma, word.Original,
			word.Language, word.PartOfSpeech, word.Translation, word.Definition,
			word.IPANotation, word.HangulNotation, word.Example, word.Status,
			word.SavedAt, word.ReviewDate); err != nil {
			return fmt.Errorf("tx.ExecContext(insert word) > %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit > %w", err)
	}
	return nil
}

// FindByID returns one owned word, or nil if absent or owned by another user.
func (r *DBRepository) FindByID(ctx context.Context, ownerID, id string) (*SavedWord, error) {
	var word SavedWord
	err := r.db.GetContext(ctx, &word,
		"SELECT * FROM words WHERE id = ? AND owner_id = ?", id, ownerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(words) > %w", err)
	}
	return &word, nil
}

// Sortable columns for listings. Anything else falls back to saved_at.
var sortColumns = map[string]string{
	"savedAt":    "saved_at",
	"lemma":      "lemma",
	"status":     "status",
	"reviewDate": "review_date",
}

// List returns one page of the owner's words plus the unpaged total.
func (r *DBRepository) List(ctx context.Context, ownerID string, filter ListFilter) ([]SavedWord, int, error) {
	where := []string{"owner_id = ?"}
	args := []interface{}{ownerID}
	if filter.Language != "" {
		where = append(where, "language = ?")
		args = append(args, filter.Language)
	}
	if filter.Status != "" {
		where = append(where, "status = ?")
		args = append(args, filter.Status)
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	if err := r.db.GetContext(ctx, &total,
		"SELECT COUNT(*) FROM words WHERE "+whereClause, args...); err != nil {
		return nil, 0, fmt.Errorf("db.GetContext(count words) > %w", err)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "saved_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		direction = "ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 20
	}
	args = append(args, limit, (page-1)*limit)

	var words []SavedWord
	if err := r.db.SelectContext(ctx, &words,
		fmt.Sprintf("SELECT * FROM words WHERE %s ORDER BY %s %s LIMIT ? OFFSET ?", whereClause, column, direction),
		args...); err != nil {
		return nil, 0, fmt.Errorf("db.SelectContext(words) > %w", err)
	}
	return words, total, nil
}

// UpdateStatus updates the review status of one owned word and returns the
// affected row count; 0 means not found (or not owned).
func (r *DBRepository) UpdateStatus(ctx context.Context, ownerID, id string, status Status, reviewDate *time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"UPDATE words SET status = ?, review_date = ? WHERE id = ? AND owner_id = ?",
		status, reviewDate, id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("db.ExecContext(update word status) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return affected, nil
}

// Delete removes one owned word and returns the affected row count.
func (r *DBRepository) Delete(ctx context.Context, ownerID, id string) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM words WHERE id = ? AND owner_id = ?", id, ownerID)
	if err != nil {
		return 0, fmt.Errorf("db.ExecContext(delete word) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return affected, nil
}

// DeleteBatch removes the owner's words among ids and returns how many rows
// were actually deleted. Rows of other owners are never touched.
func (r *DBRepository) DeleteBatch(ctx context.Context, ownerID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In("DELETE FROM words WHERE owner_id = ? AND id IN (?)", ownerID, ids)
	if err != nil {
		return 0, fmt.Errorf("sqlx.In > %w", err)
	}
	result, err := r.db.ExecContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return 0, fmt.Errorf("db.ExecContext(delete words) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("result.RowsAffected() > %w", err)
	}
	return affected, nil
}
