package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies a product. The set is closed: members are defined here
// and persisted by name, never as free text.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryCloths
	CategoryFood
	CategoryHousewares
	CategoryAutomotive
	CategoryTools
)

var categoryNames = map[Category]string{
	CategoryUnknown:    "UNKNOWN",
	CategoryCloths:     "CLOTHS",
	CategoryFood:       "FOOD",
	CategoryHousewares: "HOUSEWARES",
	CategoryAutomotive: "AUTOMOTIVE",
	CategoryTools:      "TOOLS",
}

var categoryValues = map[string]Category{
	"UNKNOWN":    CategoryUnknown,
	"CLOTHS":     CategoryCloths,
	"FOOD":       CategoryFood,
	"HOUSEWARES": CategoryHousewares,
	"AUTOMOTIVE": CategoryAutomotive,
	"TOOLS":      CategoryTools,
}

// CategoryNames returns every member name in declaration order.
func CategoryNames() []string {
	return []string{"UNKNOWN", "CLOTHS", "FOOD", "HOUSEWARES", "AUTOMOTIVE", "TOOLS"}
}

// ParseCategory resolves a member name case-insensitively.
// The second return is false when the name matches no member.
func ParseCategory(name string) (Category, bool) {
	c, ok := categoryValues[strings.ToUpper(strings.TrimSpace(name))]
	return c, ok
}

func (c Category) String() string {
	if n, ok := categoryNames[c]; ok {
		return n
	}
	return categoryNames[CategoryUnknown]
}

func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *Category) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	v, ok := ParseCategory(name)
	if !ok {
		return fmt.Errorf("unknown category %q", name)
	}
	*c = v
	return nil
}

// Value implements driver.Valuer so the column holds the member name.
func (c Category) Value() (driver.Value, error) {
	return c.String(), nil
}

// Scan implements sql.Scanner for the name-valued column.
func (c *Category) Scan(src interface{}) error {
	switch s := src.(type) {
	case string:
		v, ok := ParseCategory(s)
		if !ok {
			return fmt.Errorf("unknown category %q in storage", s)
		}
		*c = v
		return nil
	case []byte:
		return c.Scan(string(s))
	case nil:
		*c = CategoryUnknown
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Category", src)
	}
}

// Product is a catalog entry. ID zero means the instance is transient: it has
// not been written to storage and no id is reserved for it yet.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"index;not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Available   bool            `json:"available" gorm:"not null"`
	Category    Category        `json:"category" gorm:"type:varchar(32);not null"`
	CreatedAt   time.Time       `json:"-"`
	UpdatedAt   time.Time       `json:"-"`
}

func (Product) TableName() string { return "products" }

// String is the diagnostic form used in log traces and test failures.
func (p *Product) String() string {
	if p.ID == 0 {
		return fmt.Sprintf("<Product %s id=[None]>", p.Name)
	}
	return fmt.Sprintf("<Product %s id=[%d]>", p.Name, p.ID)
}
