package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func showColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}).
		AddRow("lang_code", "VARCHAR(35)", "NO", "PRI", nil, "").
		AddRow("MSG_KEY", "varchar(191)", "NO", "PRI", nil, "").
		AddRow("value", "longtext", "YES", "", nil, "")
}

func TestGetTableColumns(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `locale_strings`").WillReturnRows(showColumns())

	columns, err := GetTableColumns(db, "locale_strings")
	require.NoError(t, err)
	require.Len(t, columns, 3)

	assert.Equal(t, "lang_code", columns[0].Field)
	assert.Equal(t, "varchar(35)", columns[0].Type)
	assert.Equal(t, "msg_key", columns[1].Field)
	assert.Equal(t, "PRI", columns[1].Key)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingColumns(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `locale_strings`").WillReturnRows(showColumns())

	missing, err := MissingColumns(db, "locale_strings", "lang_code", "msg_key", "value", "export_id")
	require.NoError(t, err)
	assert.Equal(t, []string{"export_id"}, missing)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMissingColumns_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `nope`").WillReturnError(assert.AnError)

	_, err := MissingColumns(db, "nope", "lang_code")
	assert.Error(t, err)
}
