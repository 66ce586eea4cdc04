// @title Rehab API
// @description Injury protocol API: catalog, activation, homework and compliance
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/limbo/rehab/internal/api"
	"github.com/limbo/rehab/internal/recovery"
	"github.com/limbo/rehab/internal/repository"
	"github.com/limbo/rehab/internal/service"
	"github.com/limbo/rehab/internal/tracker"
	"github.com/limbo/rehab/pkg/cleanup"
	"github.com/limbo/rehab/pkg/config"
	jwtservice "github.com/limbo/rehab/pkg/jwt_service"
	"github.com/pressly/goose"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatal("loading config error: " + err.Error())
	}
	loc, err := cfg.Location()
	if err != nil {
		log.Fatal(err)
	}
	dbCfg := repository.PGCfg{
		Address:  cfg.PostgresAddress,
		Username: cfg.PostgresUser,
		Password: cfg.PostgresPassword,
		DB:       cfg.PostgresDB,
	}
	if cfg.MigrateOnStart {
		if err = migrate(dbCfg.ConnString(), cfg.MigrationsDir); err != nil {
			log.Fatal("migrations error: " + err.Error())
		}
	}

	pool := repository.NewPool(&dbCfg)
	catalogRepo := repository.NewCatalogRepoWithConn(pool)
	injuriesRepo := repository.NewInjuriesRepoWithConn(pool)
	stateRepo := repository.NewProtocolStateRepoWithConn(pool)

	injuryService := service.NewInjuryService(catalogRepo, injuriesRepo, loc)
	homeworkService := service.NewHomeworkService(catalogRepo, injuriesRepo, loc)
	protocolTracker := tracker.New(stateRepo, tracker.WithClock(func() time.Time {
		return time.Now().In(loc)
	}))
	protocolService := recovery.NewService(injuryService, homeworkService, protocolTracker, slog.Default())

	serv := api.New(&api.ServicesList{
		InjuryService:   injuryService,
		HomeworkService: homeworkService,
		ProtocolService: protocolService,
		JwtService:      jwtservice.New(cfg.JWTSecret),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = serv.Run(ctx, cfg.APIAddress)
	if err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
	}
	if err = cleanup.CleanUp(); err != nil {
		slog.Error("cleanup error", slog.String("error", err.Error()))
	}
}

func migrate(connStr, dir string) error {
	conn, err := sql.Open("postgres", connStr+"?sslmode=disable")
	if err != nil {
		return err
	}
	defer conn.Close()
	return goose.Up(conn, dir)
}
