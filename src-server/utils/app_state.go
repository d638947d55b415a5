package utils

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"os"
	"sync"

	"impactbot/src-server/model"
	"impactbot/src-server/query"
	"impactbot/src-server/store"
	"impactbot/src-server/wizard"

	"github.com/bwmarrin/discordgo"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type AppState struct {
	Config    *Config
	RawDb     *sql.DB // nil when the gsheets backend is active
	BunDB     *bun.DB // same
	DgSession *discordgo.Session
	When      *when.Parser

	Store   store.Store
	Queries *query.Queries
	Wizards *wizard.Engine

	MetricChans *Metric

	// will be sent to Discord
	appCmdInfo map[string]*discordgo.ApplicationCommand
	// handling slash commands from Discord WSAPI
	appCmdHandler map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) error
	// same as above but for msg components (buttons), keyed by the
	// leading token of the component's CustomID
	msgComponentHandler map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) error

	AppCloseSignalChan    chan os.Signal
	gracefulShutdownChans []*chan struct{}
	mu                    sync.Mutex
}

func NewAppState() *AppState {
	as := &AppState{}

	as.appCmdInfo = make(map[string]*discordgo.ApplicationCommand)
	as.appCmdHandler = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) error)
	as.msgComponentHandler = make(map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) error)
	as.AppCloseSignalChan = make(chan os.Signal, 1)
	as.MetricChans = NewMetric()

	// date parser
	as.When = when.New(nil)
	as.When.Add(en.All...)
	as.When.Add(common.All...)

	// env
	as.Config = NewConfig()

	// tabular store
	switch as.Config.GetStoreBackend() {
	case "gsheets":
		credsJSON := as.Config.GetGoogleServiceJSON()
		if !json.Valid([]byte(credsJSON)) {
			// not inline JSON, treat it as a file path
			raw, err := os.ReadFile(credsJSON)
			if err != nil {
				slog.Error("can't read GOOGLE_SERVICE_JSON file", "error", err)
				os.Exit(1)
			}
			credsJSON = string(raw)
		}
		gs, err := store.NewGoogleSheets(
			context.Background(),
			as.Config.GetSheetID(),
			credsJSON,
			as.MetricChans.StoreRead,
			as.MetricChans.StoreWrite,
		)
		if err != nil {
			slog.Error("can't init google sheets store", "error", err)
			os.Exit(1)
		}
		as.Store = gs
	default:
		var err error
		as.RawDb, err = sql.Open(sqliteshim.ShimName, "./sqlite.db?mode=rwc")
		if err != nil {
			slog.Error("cannot open sqlite database", "error", err)
			os.Exit(1)
		}
		as.RawDb.SetMaxIdleConns(8)

		as.BunDB = bun.NewDB(as.RawDb, sqlitedialect.New())
		if err := model.CreateSchema(context.Background(), as.BunDB); err != nil {
			slog.Error("can't create database schema", "error", err)
			os.Exit(1)
		}
		as.Store = store.NewSqlite(as.BunDB, as.MetricChans.StoreRead, as.MetricChans.StoreWrite)
	}

	as.Queries = query.New(as.Store, as.Config.GetLocation())
	as.Wizards = wizard.NewEngine(wizard.NewMemoryStore())

	var err error
	as.DgSession, err = discordgo.New("Bot " + as.Config.GetDiscordAppToken())
	if err != nil {
		slog.Error("can't create discord session", "error", err)
		os.Exit(1)
	}
	// free-text wizard steps arrive as plain guild messages
	as.DgSession.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentMessageContent

	return as
}

func (as *AppState) AddAppCmdInfo(id string, info *discordgo.ApplicationCommand) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.appCmdInfo[id] = info
}

func (as *AppState) IterateAppCmdInfo(f func(k string, v *discordgo.ApplicationCommand)) {
	as.mu.Lock()
	defer as.mu.Unlock()
	for k, v := range as.appCmdInfo {
		f(k, v)
	}
}

// cleanup appCmdInfo from memory; it's only needed once at startup
func (as *AppState) NukeAppCmdInfo() {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.appCmdInfo = make(map[string]*discordgo.ApplicationCommand)
}

func (as *AppState) AddAppCmdHandler(id string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate) error) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.appCmdHandler[id] = handler
}

func (as *AppState) GetAppCmdHandler(id string) (func(s *discordgo.Session, i *discordgo.InteractionCreate) error, bool) {
	as.mu.Lock()
	defer as.mu.Unlock()
	handler, ok := as.appCmdHandler[id]
	return handler, ok
}

func (as *AppState) AddMsgComponentHandler(key string, handler func(s *discordgo.Session, i *discordgo.InteractionCreate) error) {
	as.mu.Lock()
	defer as.mu.Unlock()
	as.msgComponentHandler[key] = handler
}

func (as *AppState) GetMsgComponentHandler(key string) (func(s *discordgo.Session, i *discordgo.InteractionCreate) error, bool) {
	as.mu.Lock()
	defer as.mu.Unlock()
	handler, ok := as.msgComponentHandler[key]
	return handler, ok
}

func (as *AppState) CreateGracefulShutdownChan() *chan struct{} {
	as.mu.Lock()
	defer as.mu.Unlock()
	ch := make(chan struct{})
	as.gracefulShutdownChans = append(as.gracefulShutdownChans, &ch)
	return &ch
}

func (as *AppState) GracefulShutdown() {
	as.mu.Lock()
	defer as.mu.Unlock()
	for _, ch := range as.gracefulShutdownChans {
		close(*ch)
	}
	as.gracefulShutdownChans = nil
	if as.RawDb != nil {
		if err := as.RawDb.Close(); err != nil {
			slog.Warn("can't close sqlite database", "error", err)
		}
	}
}
