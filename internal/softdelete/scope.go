package softdelete

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Mode selects which rows a query may see.
type Mode int

const (
	// Visible excludes soft-deleted rows. It is the default for every read.
	Visible Mode = iota
	DeletedOnly
	IncludeDeleted
)

func (m Mode) String() string {
	switch m {
	case Visible:
		return "visible"
	case DeletedOnly:
		return "deleted_only"
	case IncludeDeleted:
		return "include_deleted"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Filter is a gorm scope contributed by callers (conditions, ordering, preloads).
type Filter = func(*gorm.DB) *gorm.DB

// Scope is the only place the visibility rule is turned into SQL.
func Scope(mode Mode) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		col := clause.Column{Table: clause.CurrentTable, Name: ColumnIsDeleted}
		switch mode {
		case IncludeDeleted:
			return db
		case DeletedOnly:
			return db.Where(clause.Eq{Column: col, Value: true})
		default:
			return db.Where(clause.Eq{Column: col, Value: false})
		}
	}
}

// Preload loads a reference and hides it when the referenced row is soft-deleted.
func Preload(name string) Filter {
	return func(db *gorm.DB) *gorm.DB {
		return db.Preload(name, Scope(Visible))
	}
}

func idEq(id any) clause.Expression {
	return clause.Eq{Column: clause.Column{Table: clause.CurrentTable, Name: "id"}, Value: id}
}
