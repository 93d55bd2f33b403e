package repository

import (
	"rental-core/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func scanIDs(rows pgx.Rows, entity string) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, infra.WrapRepoErr("failed to scan "+entity+" id", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate "+entity+" ids", err)
	}
	return ids, nil
}
