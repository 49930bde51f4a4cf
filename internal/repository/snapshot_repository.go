package repository

import (
	"database/sql"
	"encoding/json"

	"github.com/Shirley-c/ai-24h-radar/internal/model"
)

type SnapshotRepository struct {
	db *sql.DB
}

func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) Save(rec *model.SnapshotRecord) error {
	quotes, err := json.Marshal(rec.Quotes)
	if err != nil {
		return err
	}

	return r.db.QueryRow(`
		INSERT INTO snapshot_history(fetched_at, headline_count, quote_count, summary, quotes)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, rec.FetchedAt, rec.HeadlineCount, rec.QuoteCount, rec.Summary, quotes).Scan(&rec.ID, &rec.CreatedAt)
}

func (r *SnapshotRepository) GetRecent(limit int) ([]model.SnapshotRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, fetched_at, headline_count, quote_count, summary, quotes, created_at
		FROM snapshot_history
		ORDER BY fetched_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.SnapshotRecord
	for rows.Next() {
		var rec model.SnapshotRecord
		var quotes []byte

		err := rows.Scan(&rec.ID, &rec.FetchedAt, &rec.HeadlineCount, &rec.QuoteCount, &rec.Summary, &quotes, &rec.CreatedAt)
		if err != nil {
			return nil, err
		}

		if len(quotes) > 0 {
			if err := json.Unmarshal(quotes, &rec.Quotes); err != nil {
				return nil, err
			}
		}

		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (r *SnapshotRepository) GetTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM snapshot_history`).Scan(&total)
	return total, err
}
