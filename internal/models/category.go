package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// System category ids. Transfers and adjustments are always filed under these.
const (
	SystemCategoryTransfer   = "sys-transfer"
	SystemCategoryAdjustment = "sys-adjustment"
)

// Category is a transaction category. Hierarchy is one level deep: a category
// with a ParentID is a subcategory of that parent.
type Category struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     CategoryType `json:"type"`
	Icon     string       `json:"icon"`
	Color    string       `json:"color"`
	ParentID *string      `json:"parent_id,omitempty"`
}

// CategoryPatch carries a partial category update. Nil fields are left alone.
// ClearParent detaches the category from its parent.
type CategoryPatch struct {
	Name        *string       `json:"name,omitempty"`
	Type        *CategoryType `json:"type,omitempty"`
	Icon        *string       `json:"icon,omitempty"`
	Color       *string       `json:"color,omitempty"`
	ParentID    *string       `json:"parent_id,omitempty"`
	ClearParent bool          `json:"clear_parent,omitempty"`
}

// Apply merges the patch into c.
func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Icon != nil {
		c.Icon = *p.Icon
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	if p.ClearParent {
		c.ParentID = nil
	} else if p.ParentID != nil {
		parent := *p.ParentID
		c.ParentID = &parent
	}
}

var (
	transferCategory   = Category{ID: SystemCategoryTransfer, Name: "Transfer", Type: CategoryTypeExpense, Icon: "🔁", Color: "#64748b"}
	adjustmentCategory = Category{ID: SystemCategoryAdjustment, Name: "Balance adjustment", Type: CategoryTypeExpense, Icon: "⚖️", Color: "#64748b"}
	unknownCategory    = Category{ID: "", Name: "Unknown", Type: CategoryTypeExpense, Icon: "❔", Color: "#94a3b8"}
)

// SystemCategory returns the built-in category for a system id.
func SystemCategory(id string) (Category, bool) {
	switch id {
	case SystemCategoryTransfer:
		return transferCategory, true
	case SystemCategoryAdjustment:
		return adjustmentCategory, true
	}
	return Category{}, false
}

// Equal reports whether c and o hold the same values.
func (c Category) Equal(o Category) bool {
	return c.ID == o.ID && c.Name == o.Name && c.Type == o.Type &&
		c.Icon == o.Icon && c.Color == o.Color && sameOptional(c.ParentID, o.ParentID)
}
