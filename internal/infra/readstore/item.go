package readstore

import (
	"context"

	"rentmarket/internal/infra"
	"rentmarket/internal/infra/db"
	"rentmarket/internal/pkg/pgconv"
	"rentmarket/internal/usecase/queries"

	"github.com/google/uuid"
)

type ItemReadStore struct {
	db db.DBTX
}

func NewItemReadStore(dbtx db.DBTX) *ItemReadStore {
	return &ItemReadStore{db: dbtx}
}

func (s *ItemReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ItemInfo, error) {
	var info queries.ItemInfo
	err := s.db.QueryRow(ctx,
		`SELECT id, owner_id, title, price_per_day FROM items WHERE id = $1`,
		id,
	).Scan(&info.ID, &info.OwnerID, &info.Title, &info.PricePerDay)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get item", err)
	}
	return &info, nil
}
