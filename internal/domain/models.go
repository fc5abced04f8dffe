package domain

// Schema defaults substituted for fields omitted from a create request.
const (
	DefaultName        = "Unnamed Item"
	DefaultDescription = "No description provided"
	DefaultQuantity    = 1
	DefaultUnitPrice   = 0.0
	DefaultCategory    = "General"
	DefaultOwnerID     = "unassigned"
)

type Item struct {
	ID          string  `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Quantity    int     `db:"quantity" json:"quantity"`
	UnitPrice   float64 `db:"unit_price" json:"unitPrice"`
	Category    string  `db:"category" json:"category"`
	Date        string  `db:"date" json:"date"`
	OwnerID     string  `db:"owner_id" json:"ownerID"`
	CreatedAt   string  `db:"created_at" json:"createdAt"`
	UpdatedAt   string  `db:"updated_at" json:"updatedAt"`
}

// ItemPatch is a partial item: nil means the field was not supplied, so
// "absent" never collapses into a zero value during a merge.
type ItemPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Quantity    *int     `json:"quantity"`
	UnitPrice   *float64 `json:"unitPrice"`
	Category    *string  `json:"category"`
	Date        *string  `json:"date"`
	OwnerID     *string  `json:"ownerID"`
}

// IsEmpty reports whether the patch carries no recognized field.
func (p ItemPatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Quantity == nil &&
		p.UnitPrice == nil && p.Category == nil && p.Date == nil && p.OwnerID == nil
}
