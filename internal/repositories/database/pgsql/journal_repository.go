package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fynbospay/ledger/internal/apperrors"
	"github.com/fynbospay/ledger/internal/core/domain"
	portsrepo "github.com/fynbospay/ledger/internal/core/ports/repositories"
	"github.com/fynbospay/ledger/internal/models"
	"github.com/fynbospay/ledger/internal/utils/mapping"
	"github.com/fynbospay/ledger/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxJournalRepository struct {
	BaseRepository
}

// newPgxJournalRepository creates a new repository for journal entry and line data.
func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepository {
	return &PgxJournalRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxJournalRepository implements portsrepo.JournalRepository
var _ portsrepo.JournalRepository = (*PgxJournalRepository)(nil)

// SaveEntry persists the entry and all of its lines within one DB
// transaction, so a trial balance computed at any instant never observes a
// half-written entry. The unique index on reference closes the concurrent
// replay race: the loser gets apperrors.ErrDuplicate and re-reads.
func (r *PgxJournalRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) // Ignored once the transaction is committed

	modelEntry := mapping.ToModelEntry(entry)

	var reference sql.NullString
	if modelEntry.Reference != nil {
		reference = sql.NullString{String: *modelEntry.Reference, Valid: true}
	}

	entryQuery := `
		INSERT INTO journal_entries (entry_id, reference, description, posted_at, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, entryQuery,
		modelEntry.EntryID,
		reference,
		modelEntry.Description,
		modelEntry.PostedAt,
		modelEntry.CreatedAt,
		modelEntry.CreatedBy,
		modelEntry.LastUpdatedAt,
		modelEntry.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return fmt.Errorf("%w: journal entry reference already posted", apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert journal entry "+modelEntry.EntryID, err)
	}

	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_id, side, amount, memo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range lines {
		modelLine := mapping.ToModelLine(line)
		batch.Queue(lineQuery,
			modelLine.LineID,
			modelLine.EntryID,
			modelLine.AccountID,
			modelLine.Side,
			modelLine.Amount,
			modelLine.Memo,
			modelLine.CreatedAt,
		)
	}

	br := tx.SendBatch(ctx, batch)
	if err := br.Close(); err != nil {
		return apperrors.NewAppError(500, "failed to insert journal lines for entry "+modelEntry.EntryID, err)
	}

	return r.Commit(ctx, tx)
}

const entryColumns = `entry_id, reference, description, posted_at, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (*models.JournalEntry, error) {
	var m models.JournalEntry
	var reference sql.NullString
	err := row.Scan(
		&m.EntryID,
		&reference,
		&m.Description,
		&m.PostedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	if reference.Valid {
		m.Reference = &reference.String
	}
	return &m, nil
}

// FindEntryByID retrieves a journal entry by its ID.
func (r *PgxJournalRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry %s", apperrors.ErrNotFound, entryID)
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry "+entryID, err)
	}

	entry := mapping.ToDomainEntry(*m)
	return &entry, nil
}

// FindEntryByReference retrieves a journal entry by its idempotency
// reference. Used for replay lookups by the posting engine.
func (r *PgxJournalRepository) FindEntryByReference(ctx context.Context, ref string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE reference = $1;`

	m, err := scanEntry(r.Pool.QueryRow(ctx, query, ref))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: journal entry with reference %s", apperrors.ErrNotFound, ref)
		}
		return nil, apperrors.NewAppError(500, "failed to find journal entry by reference", err)
	}

	entry := mapping.ToDomainEntry(*m)
	return &entry, nil
}

// FindLinesByEntryID retrieves all lines belonging to an entry.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_id, side, amount, memo, created_at
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query lines for entry "+entryID, err)
	}
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountID, &m.Side, &m.Amount, &m.Memo, &m.CreatedAt); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan journal line", err)
		}
		lines = append(lines, mapping.ToDomainLine(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "failed to iterate journal lines", err)
	}

	return lines, nil
}

// ListLinesByAccount returns one keyset-paginated window of an account's
// lines up to asOf, ordered by the owning entry's posted_at ascending with
// line_id as the tie-breaker. A fresh call with a nil token re-scans.
func (r *PgxJournalRepository) ListLinesByAccount(ctx context.Context, accountID string, asOf time.Time, limit int, nextToken *string) ([]domain.JournalLine, *string, error) {
	query := `
		SELECT l.line_id, l.entry_id, l.account_id, l.side, l.amount, l.memo, l.created_at, e.posted_at
		FROM journal_lines l
		JOIN journal_entries e ON l.entry_id = e.entry_id
		WHERE l.account_id = $1
			AND e.posted_at <= $2
			AND (($3::timestamptz IS NULL AND $4::uuid IS NULL)
				OR (e.posted_at, l.line_id) > ($3::timestamptz, $4::uuid))
		ORDER BY e.posted_at ASC, l.line_id ASC
		LIMIT $5;
	`

	var afterPostedAt *time.Time
	var afterLineID *string
	if nextToken != nil {
		postedAt, lineID, err := pagination.DecodeLineToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		afterPostedAt = &postedAt
		afterLineID = &lineID
	}

	// Fetch one extra row to know whether another window exists.
	rows, err := r.Pool.Query(ctx, query, accountID, asOf, afterPostedAt, afterLineID, limit+1)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query lines for account "+accountID, err)
	}
	defer rows.Close()

	var lines []domain.JournalLine
	for rows.Next() {
		var m models.JournalLine
		var postedAt time.Time
		if err := rows.Scan(&m.LineID, &m.EntryID, &m.AccountID, &m.Side, &m.Amount, &m.Memo, &m.CreatedAt, &postedAt); err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan journal line", err)
		}
		line := mapping.ToDomainLine(m)
		line.PostedAt = postedAt
		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to iterate journal lines", err)
	}

	var token *string
	if len(lines) > limit {
		lines = lines[:limit]
		last := lines[len(lines)-1]
		t := pagination.EncodeLineToken(last.PostedAt, last.LineID)
		token = &t
	}

	return lines, token, nil
}
