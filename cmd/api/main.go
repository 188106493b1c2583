package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/GomesTenorio/Hanami2025/infrastructure/database/sqldb"
	"github.com/GomesTenorio/Hanami2025/infrastructure/repository"
	"github.com/GomesTenorio/Hanami2025/infrastructure/storage"
	"github.com/GomesTenorio/Hanami2025/internal/api"
	"github.com/GomesTenorio/Hanami2025/internal/config"
	"github.com/GomesTenorio/Hanami2025/internal/scheduler"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/exporting"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/ingesting"
	"github.com/GomesTenorio/Hanami2025/internal/usecases/reporting"
	"github.com/GomesTenorio/Hanami2025/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logFile, err := log.Setup(log.Config{
		Level:      cfg.App.LogLevel,
		Dir:        cfg.Logging.Dir,
		MaxSizeMB:  cfg.Logging.MaxSizeMB,
		MaxAgeDays: cfg.Logging.MaxAgeDays,
		Compress:   cfg.Logging.Compress,
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao configurar os logs")
	}
	defer logFile.Close()
	logrus.Infof("Nível de log configurado para: %s", logrus.GetLevel())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	historyRepo, closeDB := historyRepository(ctx, cfg.Database)
	defer closeDB()

	datasetStore := repository.NewMemoryDatasetStore()

	uploadFiles := storage.NewFileStore(cfg.Storage.UploadDir)
	exportFiles := storage.NewFileStore(cfg.Storage.ExportDir)

	uploadService := ingesting.NewService(
		ingesting.NewLoader(ingesting.DefaultSchema()),
		datasetStore,
		uploadFiles,
		historyRepo,
		ingesting.UploadOptions{
			MaxConcurrent: cfg.Upload.MaxConcurrent,
			ParseTimeout:  cfg.Upload.ParseTimeout,
		},
	)

	reportService := reporting.NewService(datasetStore, cfg.Report.TopProducts)

	exportService := exporting.NewService(
		reportService,
		exportStore(ctx, cfg, exportFiles),
		historyRepo,
	)

	retentionSweepService := scheduler.NewRetentionSweepService(cfg, uploadFiles, exportFiles)
	if err := retentionSweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de limpeza de arquivos")
	}

	server, err := api.New(
		cfg,
		uploadService,
		reportService,
		exportService,
		retentionSweepService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// historyRepository conecta ao banco de histórico e aplica as migrações.
// Com DATABASE_DRIVER=none o histórico fica desabilitado.
func historyRepository(ctx context.Context, dbConfig config.Database) (repository.HistoryRepository, func()) {
	if dbConfig.Driver == sqldb.DriverNone {
		logrus.Info("Histórico de uploads desabilitado por configuração")
		return repository.NewNopHistoryRepository(), func() {}
	}

	conn, err := sqldb.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao banco de histórico")
	}

	if err := sqldb.Migrate(conn.DB, conn.Driver()); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	logrus.WithField("driver", conn.Driver()).Info("Conexão com o banco de histórico estabelecida com sucesso")

	return repository.NewHistoryRepository(conn, conn.Driver()), func() { conn.Close() }
}

// exportStore grava os relatórios no disco e, se habilitado, replica no S3
func exportStore(ctx context.Context, cfg *config.Config, files *storage.FileStore) storage.ArtifactStore {
	if !cfg.S3.Enabled {
		return files
	}

	s3Store, err := storage.NewS3Store(ctx, cfg.S3)
	if err != nil {
		logrus.WithError(err).Error("Erro ao configurar o S3; relatórios serão gravados apenas no disco")
		return files
	}

	logrus.WithField("bucket", cfg.S3.Bucket).Info("Replicação de relatórios no S3 habilitada")
	return storage.NewMirroredStore(files, s3Store)
}
