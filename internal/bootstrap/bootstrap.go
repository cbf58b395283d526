package bootstrap

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	backupinadapter "examtrack/internal/modules/backup/adapter/in"
	backupout "examtrack/internal/modules/backup/port/out"
	backupservice "examtrack/internal/modules/backup/service"
	backupusecase "examtrack/internal/modules/backup/usecase"
	libraryinadapter "examtrack/internal/modules/library/adapter/in"
	libraryoutadapter "examtrack/internal/modules/library/adapter/out"
	librarydomain "examtrack/internal/modules/library/domain"
	libraryservice "examtrack/internal/modules/library/service"
	libraryusecase "examtrack/internal/modules/library/usecase"
	reviewinadapter "examtrack/internal/modules/review/adapter/in"
	reviewoutadapter "examtrack/internal/modules/review/adapter/out"
	reviewdomain "examtrack/internal/modules/review/domain"
	reviewservice "examtrack/internal/modules/review/service"
	reviewusecase "examtrack/internal/modules/review/usecase"
	scoresinadapter "examtrack/internal/modules/scores/adapter/in"
	scoresoutadapter "examtrack/internal/modules/scores/adapter/out"
	scoresdomain "examtrack/internal/modules/scores/domain"
	scoresservice "examtrack/internal/modules/scores/service"
	scoresusecase "examtrack/internal/modules/scores/usecase"
	settingsinadapter "examtrack/internal/modules/settings/adapter/in"
	settingsoutadapter "examtrack/internal/modules/settings/adapter/out"
	settingsdomain "examtrack/internal/modules/settings/domain"
	settingsservice "examtrack/internal/modules/settings/service"
	settingsusecase "examtrack/internal/modules/settings/usecase"
	syllabusinadapter "examtrack/internal/modules/syllabus/adapter/in"
	syllabusoutadapter "examtrack/internal/modules/syllabus/adapter/out"
	syllabusdomain "examtrack/internal/modules/syllabus/domain"
	syllabusservice "examtrack/internal/modules/syllabus/service"
	syllabususecase "examtrack/internal/modules/syllabus/usecase"
	"examtrack/internal/platform/clock"
	"examtrack/internal/platform/config"
	"examtrack/internal/platform/id"
	"examtrack/internal/platform/kv"
	"examtrack/internal/platform/logging"
	uiapp "examtrack/internal/ui/app"
)

type App struct {
	ReviewCLI   reviewinadapter.CLIHandler
	SyllabusCLI syllabusinadapter.CLIHandler
	ScoresCLI   scoresinadapter.CLIHandler
	LibraryCLI  libraryinadapter.CLIHandler
	SettingsCLI settingsinadapter.CLIHandler
	BackupCLI   backupinadapter.CLIHandler
	Log         *slog.Logger

	store *kv.SQLiteStore
}

func New(cfg config.Config) (*App, error) {
	log := logging.New(cfg.Log, os.Stderr)
	store, err := kv.NewSQLiteStore(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	app, err := wire(cfg, store, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	app.store = store
	return app, nil
}

func wire(cfg config.Config, store kv.Store, log *slog.Logger) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.UUID{}
	loc := cfg.Location()

	syllabusSvc := syllabusservice.NewSyllabusService(
		syllabusoutadapter.NewCollectionStore(store),
		syllabusoutadapter.NewYAMLSeedParser(),
		log,
	)
	syllabusUC := syllabususecase.NewInteractor(syllabusSvc)

	reviewSvc := reviewservice.NewReviewService(clk, ids, reviewoutadapter.NewCollectionRepository(store), loc, log)
	reviewUC := reviewusecase.NewInteractor(reviewSvc, syllabusUC, cfg.UpcomingDays)
	if err := reviewUC.Load(context.Background()); err != nil {
		// The queue starts empty; a later reload or import can recover it.
		log.Warn("review state unavailable at startup", "error", err)
	}

	scoresSvc := scoresservice.NewScoresService(clk, ids, scoresoutadapter.NewCollectionStore(store), loc, log)
	scoresUC := scoresusecase.NewInteractor(scoresSvc)

	librarySvc := libraryservice.NewLibraryService(
		clk, ids,
		libraryoutadapter.NewCollectionStore(store),
		libraryoutadapter.NewLocalPDFInspector(),
		libraryoutadapter.NewOSExternalLauncher(),
		log,
	)
	libraryUC := libraryusecase.NewInteractor(librarySvc)

	settingsSvc := settingsservice.NewSettingsService(clk, settingsoutadapter.NewDocumentStore(store), log)
	settingsUC := settingsusecase.NewInteractor(settingsSvc)

	defaultSettings, err := json.Marshal(settingsdomain.Default())
	if err != nil {
		return nil, fmt.Errorf("encode default settings: %w", err)
	}
	backupSvc := backupservice.NewBackupService(
		clk, store,
		map[string]json.RawMessage{kv.KeySettings: defaultSettings},
		importDecoders(),
		log,
		reviewUC,
	)
	backupUC := backupusecase.NewInteractor(backupSvc)

	return &App{
		ReviewCLI:   reviewinadapter.NewCLIHandler(reviewUC),
		SyllabusCLI: syllabusinadapter.NewCLIHandler(syllabusUC),
		ScoresCLI:   scoresinadapter.NewCLIHandler(scoresUC),
		LibraryCLI:  libraryinadapter.NewCLIHandler(libraryUC),
		SettingsCLI: settingsinadapter.NewCLIHandler(settingsUC),
		BackupCLI:   backupinadapter.NewCLIHandler(backupUC),
		Log:         log,
	}, nil
}

// NewInMemory wires the application over a MemoryStore; nothing touches disk.
func NewInMemory(cfg config.Config) (*App, error) {
	return wire(cfg, kv.NewMemoryStore(), logging.New(cfg.Log, os.Stderr))
}

func (a *App) Close() error {
	if a.store == nil {
		return nil
	}
	return a.store.Close()
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(app.ReviewCLI, app.SettingsCLI)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// importDecoders maps every stored key to the type its module reads back, so
// an import cannot commit a value that would fail the next load.
func importDecoders() map[string]backupout.Decoder {
	return map[string]backupout.Decoder{
		kv.KeyStudySessions: kv.DecodesAs[reviewdomain.StudyEvent],
		kv.KeyReviewTasks:   kv.DecodesAs[reviewdomain.ReviewTask],
		kv.KeyPdfFiles:      kv.DecodesAs[librarydomain.PdfFile],
		kv.KeyTestEntries:   kv.DecodesAs[scoresdomain.TestEntry],
		kv.KeySettings:      kv.DecodesAsDocument[settingsdomain.Settings],
		kv.KeySyllabus:      kv.DecodesAs[syllabusdomain.Syllabus],
	}
}
