package export

import (
	"context"
	"fmt"
	"time"

	"sl10n/core/database"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TableName is the table receiving exported strings.
const TableName = "locale_strings"

// Columns lists the columns DatabaseSink writes.
var Columns = []string{"lang_code", "msg_key", "value", "export_id", "updated_at"}

// LocaleString is one translated value.
type LocaleString struct {
	LangCode  string    `gorm:"column:lang_code;primaryKey;size:35"`
	Key       string    `gorm:"column:msg_key;primaryKey;size:191"`
	Value     string    `gorm:"column:value;type:text"`
	ExportID  string    `gorm:"column:export_id;size:36;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (LocaleString) TableName() string { return TableName }

// DatabaseSink upserts bundles into the locale_strings table.
type DatabaseSink struct {
	db        *gorm.DB
	batchSize int
	logger    *zap.Logger
}

// NewDatabaseSink creates a sink inserting batchSize rows per statement.
func NewDatabaseSink(db *gorm.DB, batchSize int, logger *zap.Logger) *DatabaseSink {
	if batchSize <= 0 {
		batchSize = 500
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DatabaseSink{db: db, batchSize: batchSize, logger: logger}
}

func (s *DatabaseSink) Name() string { return "database" }

// Migrate creates or updates the table, then verifies its columns.
func (s *DatabaseSink) Migrate(ctx context.Context) error {
	if err := s.db.WithContext(ctx).AutoMigrate(&LocaleString{}); err != nil {
		return fmt.Errorf("failed to migrate %s: %w", TableName, err)
	}
	return s.Verify(ctx)
}

// Verify checks that the table has every column the sink writes.
func (s *DatabaseSink) Verify(ctx context.Context) error {
	missing, err := database.MissingColumns(s.db.WithContext(ctx), TableName, Columns...)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("table %s is missing columns %v", TableName, missing)
	}
	return nil
}

// Rows flattens b into table rows, by language then schema field order.
func Rows(b *Bundle) []LocaleString {
	var rows []LocaleString
	for _, lang := range b.Languages {
		rec := b.Records[lang]
		for _, field := range rec.Schema().Fields() {
			v, _ := rec.Field(field)
			rows = append(rows, LocaleString{
				LangCode:  lang,
				Key:       field,
				Value:     v,
				ExportID:  b.ID.String(),
				UpdatedAt: b.CreatedAt,
			})
		}
	}
	return rows
}

func (s *DatabaseSink) Write(ctx context.Context, b *Bundle) error {
	rows := Rows(b)
	if len(rows) == 0 {
		return nil
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		CreateInBatches(&rows, s.batchSize).Error
	if err != nil {
		return fmt.Errorf("failed to upsert %s: %w", TableName, err)
	}

	s.logger.Debug("Upserted locale strings", zap.Int("rows", len(rows)))
	return nil
}
