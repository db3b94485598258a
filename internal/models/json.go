package models

import (
	"database/sql/driver"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// StringList is a JSON array column built on gorm.io/datatypes.JSONSlice with a
// custom data type mapping per database driver.
type StringList []string

// Value encodes the list as a JSON array. A nil list is stored as [].
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return datatypes.JSONSlice[string](l).Value()
}

// Scan decodes a JSON array column.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var s datatypes.JSONSlice[string]
	if err := s.Scan(value); err != nil {
		return err
	}
	*l = StringList(s)
	return nil
}

// GormDBDataType ensures the correct data type is used for each database driver.
// MSSQL does not support the 'json' data type.
func (StringList) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	switch db.Dialector.Name() {
	case "mysql":
		return "JSON"
	case "postgres":
		return "JSONB"
	case "sqlserver", "mssql":
		return "NVARCHAR(MAX)"
	case "sqlite":
		return "JSON"
	}
	return "TEXT"
}

// Strings returns the list as a plain slice, never nil.
func (l StringList) Strings() []string {
	if l == nil {
		return []string{}
	}
	return []string(l)
}
