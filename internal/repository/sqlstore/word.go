package sqlstore

import (
	"context"
	"database/sql"

	"multilingual/internal/domain"
)

const wordColumns = `id, native_word, foreign_word`

// WordRepo implements repository.WordRepository
type WordRepo struct {
	db *sql.DB
}

// NewWordRepo creates a new word repository
func NewWordRepo(db *sql.DB) *WordRepo {
	return &WordRepo{db: db}
}

// Create saves a word pair and returns it with the generated id
func (r *WordRepo) Create(ctx context.Context, word domain.Word) (domain.Word, error) {
	query := `
		INSERT INTO words_table (native_word, foreign_word)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.db.QueryRowContext(ctx, query, word.Native, word.Foreign).Scan(&word.ID); err != nil {
		return domain.Word{}, mapError(err)
	}
	return word, nil
}

// CreateBatch saves several word pairs in one transaction
func (r *WordRepo) CreateBatch(ctx context.Context, words []domain.Word) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer rollback(tx)

	query := `INSERT INTO words_table (native_word, foreign_word) VALUES ($1, $2)`
	for _, w := range words {
		if _, err := tx.ExecContext(ctx, query, w.Native, w.Foreign); err != nil {
			return mapError(err)
		}
	}

	return mapError(tx.Commit())
}

// Update replaces both terms of the word with the same id
func (r *WordRepo) Update(ctx context.Context, word domain.Word) error {
	query := `
		UPDATE words_table
		SET native_word = $1, foreign_word = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, word.Native, word.Foreign, word.ID)
	if err != nil {
		return mapError(err)
	}
	return checkRowsAffected(result, "word", word.ID)
}

// Delete removes a single word
func (r *WordRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM words_table WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return checkRowsAffected(result, "word", id)
}

// DeleteAll removes every word
func (r *WordRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM words_table`)
	return mapError(err)
}

// List returns all words in insertion order
func (r *WordRepo) List(ctx context.Context) ([]domain.Word, error) {
	return r.query(ctx, `SELECT `+wordColumns+` FROM words_table ORDER BY id`)
}

// GetByID returns the word with the given id
func (r *WordRepo) GetByID(ctx context.Context, id int64) (*domain.Word, error) {
	var w domain.Word
	query := `SELECT ` + wordColumns + ` FROM words_table WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&w.ID, &w.Native, &w.Foreign); err != nil {
		return nil, mapError(err)
	}
	return &w, nil
}

// FindByNative returns the words with exactly this native term
func (r *WordRepo) FindByNative(ctx context.Context, native string) ([]domain.Word, error) {
	return r.query(ctx, `SELECT `+wordColumns+` FROM words_table WHERE native_word = $1 ORDER BY id`, native)
}

// FindByForeign returns the words with exactly this foreign term
func (r *WordRepo) FindByForeign(ctx context.Context, foreign string) ([]domain.Word, error) {
	return r.query(ctx, `SELECT `+wordColumns+` FROM words_table WHERE foreign_word = $1 ORDER BY id`, foreign)
}

// FindByPair returns the words matching both terms
func (r *WordRepo) FindByPair(ctx context.Context, native, foreign string) ([]domain.Word, error) {
	query := `
		SELECT ` + wordColumns + `
		FROM words_table
		WHERE native_word = $1 AND foreign_word = $2
		ORDER BY id
	`
	return r.query(ctx, query, native, foreign)
}

func (r *WordRepo) query(ctx context.Context, query string, args ...any) ([]domain.Word, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	words := []domain.Word{}
	for rows.Next() {
		var w domain.Word
		if err := rows.Scan(&w.ID, &w.Native, &w.Foreign); err != nil {
			return nil, mapError(err)
		}
		words = append(words, w)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return words, nil
}
