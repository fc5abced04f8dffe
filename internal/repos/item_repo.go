package repos

import (
	"context"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Vincent-WangCH/Project-list-backend/internal/domain"
)

type ItemRepo struct{ db *sqlx.DB }

func NewItemRepo(db *sqlx.DB) *ItemRepo { return &ItemRepo{db: db} }

const itemColumns = `id, name, description, quantity, unit_price, category, date, owner_id, created_at, updated_at`

// List returns every item, newest-created first. rowid breaks ties between
// rows created within the same timestamp granularity.
func (r *ItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	items := []domain.Item{}
	err := r.db.SelectContext(ctx, &items, `
		SELECT `+itemColumns+`
		FROM items
		ORDER BY created_at DESC, rowid DESC
	`)
	return items, translate(err)
}

// Get returns the item or ErrNotFound; a missing row is never a panic path.
func (r *ItemRepo) Get(ctx context.Context, id string) (domain.Item, error) {
	var it domain.Item
	err := r.db.GetContext(ctx, &it, `
		SELECT `+itemColumns+` FROM items WHERE id = ?
	`, id)
	return it, translate(err)
}

// Insert persists a fully populated item and returns it as stored.
func (r *ItemRepo) Insert(ctx context.Context, it domain.Item) (domain.Item, error) {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO items(`+itemColumns+`)
		VALUES (?,?,?,?,?,?,?,?,?,?)
	`, it.ID, it.Name, it.Description, it.Quantity, it.UnitPrice, it.Category, it.Date, it.OwnerID, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return domain.Item{}, translate(err)
	}
	return r.Get(ctx, it.ID)
}

// Update merges only the fields present in the patch and refreshes
// updated_at, all in a single statement. ErrNotFound if the id is missing.
func (r *ItemRepo) Update(ctx context.Context, id string, p domain.ItemPatch) (domain.Item, error) {
	set := []string{"updated_at = ?"}
	args := []any{time.Now().UTC().Format(time.RFC3339)}

	if p.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *p.Name)
	}
	if p.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *p.Description)
	}
	if p.Quantity != nil {
		set = append(set, "quantity = ?")
		args = append(args, *p.Quantity)
	}
	if p.UnitPrice != nil {
		set = append(set, "unit_price = ?")
		args = append(args, *p.UnitPrice)
	}
	if p.Category != nil {
		set = append(set, "category = ?")
		args = append(args, *p.Category)
	}
	if p.Date != nil {
		set = append(set, "date = ?")
		args = append(args, *p.Date)
	}
	if p.OwnerID != nil {
		set = append(set, "owner_id = ?")
		args = append(args, *p.OwnerID)
	}
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, `
		UPDATE items SET `+strings.Join(set, ", ")+` WHERE id = ?
	`, args...)
	if err != nil {
		return domain.Item{}, translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Item{}, ErrNotFound
	}
	return r.Get(ctx, id)
}

// Delete removes the row and returns its prior state, or ErrNotFound.
func (r *ItemRepo) Delete(ctx context.Context, id string) (domain.Item, error) {
	prior, err := r.Get(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return domain.Item{}, translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.Item{}, ErrNotFound
	}
	return prior, nil
}
