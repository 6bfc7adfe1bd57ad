package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"multilingual/internal/domain"
)

const languageColumns = `id, native_language, foreign_language`

// LanguageRepo implements repository.LanguageRepository
type LanguageRepo struct {
	db *sql.DB
}

// NewLanguageRepo creates a new language repository
func NewLanguageRepo(db *sql.DB) *LanguageRepo {
	return &LanguageRepo{db: db}
}

// Create saves a language pair and returns it with the generated id
func (r *LanguageRepo) Create(ctx context.Context, pair domain.LanguagePair) (domain.LanguagePair, error) {
	query := `
		INSERT INTO languages (native_language, foreign_language)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := r.db.QueryRowContext(ctx, query, pair.Native, pair.Foreign).Scan(&pair.ID); err != nil {
		return domain.LanguagePair{}, mapError(err)
	}
	return pair, nil
}

// CreateBatch saves several language pairs in one transaction
func (r *LanguageRepo) CreateBatch(ctx context.Context, pairs []domain.LanguagePair) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return mapError(err)
	}
	defer rollback(tx)

	query := `INSERT INTO languages (native_language, foreign_language) VALUES ($1, $2)`
	for _, p := range pairs {
		if _, err := tx.ExecContext(ctx, query, p.Native, p.Foreign); err != nil {
			return mapError(err)
		}
	}

	return mapError(tx.Commit())
}

// Update replaces both names of the pair with the same id
func (r *LanguageRepo) Update(ctx context.Context, pair domain.LanguagePair) error {
	query := `
		UPDATE languages
		SET native_language = $1, foreign_language = $2
		WHERE id = $3
	`
	result, err := r.db.ExecContext(ctx, query, pair.Native, pair.Foreign, pair.ID)
	if err != nil {
		return mapError(err)
	}
	return checkRowsAffected(result, "language pair", pair.ID)
}

// Delete removes a single language pair
func (r *LanguageRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM languages WHERE id = $1`, id)
	if err != nil {
		return mapError(err)
	}
	return checkRowsAffected(result, "language pair", id)
}

// DeleteAll removes every language pair
func (r *LanguageRepo) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM languages`)
	return mapError(err)
}

// List returns all language pairs in insertion order
func (r *LanguageRepo) List(ctx context.Context) ([]domain.LanguagePair, error) {
	return r.query(ctx, `SELECT `+languageColumns+` FROM languages ORDER BY id`)
}

// GetByID returns the language pair with the given id
func (r *LanguageRepo) GetByID(ctx context.Context, id int64) (*domain.LanguagePair, error) {
	var p domain.LanguagePair
	query := `SELECT ` + languageColumns + ` FROM languages WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Native, &p.Foreign); err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// FindByNative returns the pairs with exactly this native language
func (r *LanguageRepo) FindByNative(ctx context.Context, native string) ([]domain.LanguagePair, error) {
	return r.query(ctx, `SELECT `+languageColumns+` FROM languages WHERE native_language = $1 ORDER BY id`, native)
}

// FindByForeign returns the pairs with exactly this foreign language
func (r *LanguageRepo) FindByForeign(ctx context.Context, foreign string) ([]domain.LanguagePair, error) {
	return r.query(ctx, `SELECT `+languageColumns+` FROM languages WHERE foreign_language = $1 ORDER BY id`, foreign)
}

// Active returns the last pair in insertion order
func (r *LanguageRepo) Active(ctx context.Context) (*domain.LanguagePair, error) {
	var p domain.LanguagePair
	query := `SELECT ` + languageColumns + ` FROM languages ORDER BY id DESC LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&p.ID, &p.Native, &p.Foreign)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, mapError(err)
	}
	return &p, nil
}

// Switch replaces the active pair in place, drops any other pair and clears
// words_table. Readers never observe the old pair next to the new one, nor
// the new pair next to the old words.
func (r *LanguageRepo) Switch(ctx context.Context, pair domain.LanguagePair) (domain.LanguagePair, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.LanguagePair{}, mapError(err)
	}
	defer rollback(tx)

	var activeID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM languages ORDER BY id DESC LIMIT 1`).Scan(&activeID)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		query := `
			INSERT INTO languages (native_language, foreign_language)
			VALUES ($1, $2)
			RETURNING id
		`
		if err := tx.QueryRowContext(ctx, query, pair.Native, pair.Foreign).Scan(&pair.ID); err != nil {
			return domain.LanguagePair{}, mapError(err)
		}
	case err != nil:
		return domain.LanguagePair{}, mapError(err)
	default:
		query := `
			UPDATE languages
			SET native_language = $1, foreign_language = $2
			WHERE id = $3
		`
		if _, err := tx.ExecContext(ctx, query, pair.Native, pair.Foreign, activeID); err != nil {
			return domain.LanguagePair{}, mapError(err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM languages WHERE id <> $1`, activeID); err != nil {
			return domain.LanguagePair{}, mapError(err)
		}
		pair.ID = activeID
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM words_table`); err != nil {
		return domain.LanguagePair{}, mapError(err)
	}

	if err := tx.Commit(); err != nil {
		return domain.LanguagePair{}, mapError(err)
	}
	return pair, nil
}

func (r *LanguageRepo) query(ctx context.Context, query string, args ...any) ([]domain.LanguagePair, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	pairs := []domain.LanguagePair{}
	for rows.Next() {
		var p domain.LanguagePair
		if err := rows.Scan(&p.ID, &p.Native, &p.Foreign); err != nil {
			return nil, mapError(err)
		}
		pairs = append(pairs, p)
	}

	if err := rows.Err(); err != nil {
		return nil, mapError(err)
	}
	return pairs, nil
}
