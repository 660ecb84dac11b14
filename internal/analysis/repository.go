package analysis

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"github.com/tweetlex/tweetlex/internal/vocabulary"
)

// ErrAlreadyExists reports a duplicate-create attempt on the
// (owner_id, content_key) unique key. The caller rereads instead of failing.
var ErrAlreadyExists = errors.New("analysis already exists")

const mysqlDuplicateEntry = 1062

// Repository defines the content-addressed analysis store. At most one
// analysis exists per (owner, content key); entries never expire.
type Repository interface {
	FindByContentKey(ctx context.Context, ownerID, contentKey string) (*Analysis, error)
	Create(ctx context.Context, record *Analysis, words []vocabulary.SavedWord) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindByContentKey returns the stored analysis with its words, or nil if the
// (owner, content key) pair has never been analyzed.
func (r *DBRepository) FindByContentKey(ctx context.Context, ownerID, contentKey string) (*Analysis, error) {
	var record Analysis
	err := r.db.GetContext(ctx, &record,
		"SELECT * FROM analyses WHERE owner_id = ? AND content_key = ?",
		ownerID, contentKey)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(analyses) > %w", err)
	}

	var words []AnalysisWord
	if err := r.db.SelectContext(ctx, &words,
		"SELECT * FROM analysis_words WHERE analysis_id = ? ORDER BY position",
		record.ID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(analysis_words) > %w", err)
	}
	record.Words = words
	return &record, nil
}

// Create inserts the analysis, its full enriched batch, and the auto-saved
// words in one transaction so a half-written analysis can never be observed.
// A duplicate (owner, content key) yields ErrAlreadyExists.
func (r *DBRepository) Create(ctx context.Context, record *Analysis, saved []vocabulary.SavedWord) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO analyses (id, owner_id, content_key, source_url, raw_text, author_ref, language, analyzed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID, record.OwnerID, record.ContentKey, record.SourceURL,
		record.RawText, record.AuthorRef, record.Language, record.AnalyzedAt); err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			return ErrAlreadyExists
		}
		return fmt.Errorf("tx.ExecContext(insert analysis) > %w", err)
	}

	for _, word := range record.Words {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO analysis_words (analysis_id, position, original, lemma, language, part_of_speech,
				translation, definition, ipa_notation, hangul_notation, example)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			word.AnalysisID, word.Position, word.Original, word.Lemma,
			word.Language, word.PartOfSpeech, word.Translation, word.Definition,
			word.IPANotation, word.HangulNotation, word.Example); err != nil {
			return fmt.Errorf("tx.ExecContext(insert analysis word) > %w", err)
		}
	}

	for _, word := range saved {
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
