package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/GomesTenorio/Hanami2025/infrastructure/database/sqldb"
	"github.com/GomesTenorio/Hanami2025/internal/domain"
)

const (
	uploadsTable = "dataset_uploads"
	exportsTable = "report_exports"
)

// HistoryRepository registra os uploads e exportações realizados.
// Apenas metadados são persistidos; o conteúdo dos datasets fica somente em memória.
type HistoryRepository interface {
	SaveUpload(ctx context.Context, record domain.UploadRecord) error
	SaveExport(ctx context.Context, record domain.ExportRecord) error
	ListUploads(ctx context.Context, limit int) ([]domain.UploadRecord, error)
}

type historyRepository struct {
	db      sqldb.Queryer
	builder squirrel.StatementBuilderType
}

// NewHistoryRepository cria o repositório. O driver define o formato dos placeholders.
func NewHistoryRepository(db sqldb.Queryer, driver string) HistoryRepository {
	var placeholder squirrel.PlaceholderFormat = squirrel.Question
	if driver == sqldb.DriverPostgres {
		placeholder = squirrel.Dollar
	}

	return &historyRepository{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(placeholder),
	}
}

func (r *historyRepository) SaveUpload(ctx context.Context, record domain.UploadRecord) error {
	sqlQuery, args, err := r.builder.
		Insert(uploadsTable).
		Columns(
			"id",
			"dataset_id",
			"original_filename",
			"stored_name",
			"fingerprint",
			"row_count",
			"column_count",
			"uploaded_at",
		).
		Values(
			record.ID,
			record.DatasetID,
			record.OriginalFilename,
			record.StoredName,
			record.Fingerprint,
			record.RowCount,
			record.ColumnCount,
			record.UploadedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao registrar upload: %w", err)
	}

	return nil
}

func (r *historyRepository) SaveExport(ctx context.Context, record domain.ExportRecord) error {
	sqlQuery, args, err := r.builder.
		Insert(exportsTable).
		Columns("id", "dataset_id", "format", "location", "size_bytes", "created_at").
		Values(record.ID, record.DatasetID, record.Format, record.Location, record.SizeBytes, record.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao registrar exportação: %w", err)
	}

	return nil
}

func (r *historyRepository) ListUploads(ctx context.Context, limit int) ([]domain.UploadRecord, error) {
	sqlQuery, args, err := r.builder.
		Select(
			"id",
			"dataset_id",
			"original_filename",
			"stored_name",
			"fingerprint",
			"row_count",
			"column_count",
			"uploaded_at",
		).
		From(uploadsTable).
		OrderBy("uploaded_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.UploadRecord, 0)
	for rows.Next() {
		var record domain.UploadRecord
		if err := rows.Scan(
			&record.ID,
			&record.DatasetID,
			&record.OriginalFilename,
			&record.StoredName,
			&record.Fingerprint,
			&record.RowCount,
			&record.ColumnCount,
			&record.UploadedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao ler upload: %w", err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar uploads: %w", err)
	}

	return records, nil
}

type nopHistoryRepository struct{}

// NewNopHistoryRepository é usado quando o histórico está desabilitado
func NewNopHistoryRepository() HistoryRepository {
	return nopHistoryRepository{}
}

func (nopHistoryRepository) SaveUpload(context.Context, domain.UploadRecord) error { return nil }

func (nopHistoryRepository) SaveExport(context.Context, domain.ExportRecord) error { return nil }

func (nopHistoryRepository) ListUploads(context.Context, int) ([]domain.UploadRecord, error) {
	return []domain.UploadRecord{}, nil
}
