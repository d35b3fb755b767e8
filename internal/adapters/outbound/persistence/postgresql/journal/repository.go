package journal

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	portsout "lendit/internal/application/ports/out"
	"lendit/internal/domain/entities"
	valueobjects "lendit/internal/domain/value_objects"
	apperrors "lendit/internal/shared_kernel/errors"

	"github.com/google/uuid"
)

const insertEntrySQL = `
INSERT INTO app.journal_entries (
    id, kind, direction, account, coin_type, amount_base_units,
    stage, digest, protocol, rate_raw, available, error_message, created_at
) VALUES (
    $1, $2, $3, $4, $5, $6::numeric,
    $7, $8, $9, $10::numeric, $11, $12, $13
)`

const listRecentSQL = `
SELECT
    id::text, kind, COALESCE(direction, ''), COALESCE(account, ''), COALESCE(coin_type, ''),
    COALESCE(amount_base_units::text, ''), COALESCE(stage, ''), COALESCE(digest, ''),
    COALESCE(protocol, ''), COALESCE(rate_raw::text, ''), available, COALESCE(error_message, ''), created_at
FROM app.journal_entries
ORDER BY created_at DESC, id DESC
LIMIT $1`

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type Repository struct {
	db *sql.DB
}

var _ portsout.ExecutionJournal = (*Repository)(nil)

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Enabled() bool {
	return r.db != nil
}

func (r *Repository) RecordTransaction(ctx context.Context, entry entities.JournalEntry) *apperrors.AppError {
	if err := insertEntry(ctx, r.db, entry); err != nil {
		return journalError("journal_write_failed", "failed to record transaction", err)
	}
	return nil
}

// RecordRateSnapshot writes all quotes of one snapshot in a single
// transaction.
func (r *Repository) RecordRateSnapshot(ctx context.Context, entries []entities.JournalEntry) *apperrors.AppError {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return journalError("journal_write_failed", "failed to begin snapshot transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, entry := range entries {
		if err := insertEntry(ctx, tx, entry); err != nil {
			return journalError("journal_write_failed", "failed to record rate snapshot", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return journalError("journal_write_failed", "failed to commit rate snapshot", err)
	}
	return nil
}

func (r *Repository) ListRecent(ctx context.Context, limit int) ([]entities.JournalEntry, *apperrors.AppError) {
	rows, err := r.db.QueryContext(ctx, listRecentSQL, limit)
	if err != nil {
		return nil, journalError("journal_read_failed", "failed to list journal entries", err)
	}
	defer rows.Close()

	entries := []entities.JournalEntry{}
	for rows.Next() {
		var (
			id, kind, direction, stage, amount string
			entry                              entities.JournalEntry
			createdAt                          time.Time
		)
		if err := rows.Scan(
			&id, &kind, &direction, &entry.Account, &entry.CoinType,
			&amount, &stage, &entry.Digest,
			&entry.Protocol, &entry.RateRaw, &entry.Available, &entry.ErrorMessage, &createdAt,
		); err != nil {
			return nil, journalError("journal_read_failed", "failed to scan journal entry", err)
		}

		parsedID, err := uuid.Parse(id)
		if err != nil {
			return nil, journalError("journal_read_failed", "journal entry id is not a uuid", err)
		}
		entry.ID = parsedID
		entry.Kind = entities.JournalKind(kind)
		entry.Direction = valueobjects.Direction(direction)
		entry.Stage = valueobjects.ExecutionStage(stage)
		entry.CreatedAt = createdAt.UTC()
		if amount != "" {
			entry.AmountBaseUnits, err = strconv.ParseUint(amount, 10, 64)
			if err != nil {
				return nil, journalError("journal_read_failed", "journal amount is out of range", err)
			}
		}

		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, journalError("journal_read_failed", "failed to iterate journal entries", err)
	}

	return entries, nil
}

func insertEntry(ctx context.Context, db execer, entry entities.JournalEntry) error {
	var amount any
	if entry.Kind == entities.JournalKindTransaction {
		amount = strconv.FormatUint(entry.AmountBaseUnits, 10)
	}

	_, err := db.ExecContext(ctx, insertEntrySQL,
		entry.ID.String(),
		string(entry.Kind),
		nullable(string(entry.Direction)),
		nullable(entry.Account),
		nullable(entry.CoinType),
		amount,
		nullable(string(entry.Stage)),
		nullable(entry.Digest),
		nullable(entry.Protocol),
		nullable(entry.RateRaw),
		entry.Available,
		nullable(entry.ErrorMessage),
		entry.CreatedAt,
	)
	return err
}

func nullable(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func journalError(code, message string, err error) *apperrors.AppError {
	return apperrors.NewInternal(code, message, map[string]any{"error": err.Error()})
}
