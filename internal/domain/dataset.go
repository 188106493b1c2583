package domain

import "time"

// Dataset é o conjunto de dados validado atualmente carregado, com seus metadados.
// Depois de publicado nunca é alterado.
type Dataset struct {
	ID               string
	Table            *Table
	OriginalFilename string
	UploadedAt       time.Time
	Fingerprint      string
}

func (d *Dataset) RowCount() int {
	if d == nil {
		return 0
	}
	return d.Table.Len()
}

type DatasetStatus struct {
	Loaded           bool       `json:"loaded"`
	Message          string     `json:"message,omitempty"`
	DatasetID        string     `json:"dataset_id,omitempty"`
	OriginalFilename string     `json:"arquivo_original,omitempty"`
	UploadedAt       *time.Time `json:"uploaded_at,omitempty"`
	RowCount         *int       `json:"linhas_processadas,omitempty"`
	Columns          []string   `json:"colunas,omitempty"`
	Fingerprint      string     `json:"fingerprint,omitempty"`
}

// StatusOf descreve o dataset informado. Um dataset nil é reportado como não carregado.
func StatusOf(d *Dataset) DatasetStatus {
	if d == nil {
		return DatasetStatus{Loaded: false, Message: ErrNoDataset.Error()}
	}

	rows := d.RowCount()
	uploadedAt := d.UploadedAt
	return DatasetStatus{
		Loaded:           true,
		DatasetID:        d.ID,
		OriginalFilename: d.OriginalFilename,
		UploadedAt:       &uploadedAt,
		RowCount:         &rows,
		Columns:          d.Table.Columns(),
		Fingerprint:      d.Fingerprint,
	}
}

// UploadResult é a resposta de um upload processado com sucesso
type UploadResult struct {
	Status           string `json:"status"`
	RowCount         int    `json:"linhas_processadas"`
	OriginalFilename string `json:"arquivo_original"`
	DatasetID        string `json:"dataset_id"`
}

// UploadRecord registra no histórico um upload processado
type UploadRecord struct {
	ID               string    `json:"id"`
	DatasetID        string    `json:"dataset_id"`
	OriginalFilename string    `json:"arquivo_original"`
	StoredName       string    `json:"arquivo_armazenado"`
	Fingerprint      string    `json:"fingerprint"`
	RowCount         int       `json:"linhas_processadas"`
	ColumnCount      int       `json:"colunas"`
	UploadedAt       time.Time `json:"uploaded_at"`
}

// ExportRecord registra no histórico um relatório exportado
type ExportRecord struct {
	ID        string    `json:"id"`
	DatasetID string    `json:"dataset_id"`
	Format    string    `json:"format"`
	Location  string    `json:"location"`
	SizeBytes int64     `json:"size_bytes"`
	CreatedAt time.Time `json:"created_at"`
}
