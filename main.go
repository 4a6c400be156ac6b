package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	orchestratorx "github.com/tanpawarit/Resort-Concierge-Agents/agent/agents/orchestrator"
	specialistx "github.com/tanpawarit/Resort-Concierge-Agents/agent/agents/specialist"
	contractx "github.com/tanpawarit/Resort-Concierge-Agents/agent/contract"
	llmx "github.com/tanpawarit/Resort-Concierge-Agents/agent/llm"
	storex "github.com/tanpawarit/Resort-Concierge-Agents/agent/store"
	toolx "github.com/tanpawarit/Resort-Concierge-Agents/agent/tool"
	"github.com/tanpawarit/Resort-Concierge-Agents/api"
	configx "github.com/tanpawarit/Resort-Concierge-Agents/pkg/config"
	_ "github.com/tanpawarit/Resort-Concierge-Agents/pkg/logger/autoload"
	openrouterx "github.com/tanpawarit/Resort-Concierge-Agents/pkg/openrouter"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appCfg := configx.MustNew[api.Config]("")
	llmCfg := configx.MustNew[llmx.Config]("LLM")
	dbCfg := configx.MustNew[storex.Config]("DB")

	if !llmCfg.HasAPIKey() {
		log.Warn().Msg("LLM_API_KEY is not set: every chat reply will be an error message until it is configured")
	} else {
		verifyModel(ctx, *llmCfg)
	}

	db := storex.MustOpen(*dbCfg)
	defer db.Close()

	st, err := storex.New(db)
	if err != nil {
		log.Fatal().Err(err).Msg("init store")
	}
	if dbCfg.AutoMigrate {
		if err := st.CreateSchema(ctx); err != nil {
			log.Fatal().Err(err).Msg("create schema")
		}
	}

	tools := toolx.NewSet(toolx.Deps{Catalog: st, Ledger: st})
	registry, err := specialistx.NewRegistry(ctx, *llmCfg, tools)
	if err != nil {
		log.Fatal().Err(err).Msg("init agents")
	}
	orch, err := orchestratorx.New(registry)
	if err != nil {
		log.Fatal().Err(err).Msg("init orchestrator")
	}

	srv, err := api.New(*appCfg, orch, st)
	if err != nil {
		log.Fatal().Err(err).Msg("init http server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")
		if err := srv.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("http shutdown")
		}
	}
}

// verifyModel looks up the default model once so a wrong id or key shows up
// in the startup log instead of in the first guest reply.
func verifyModel(ctx context.Context, cfg llmx.Config) {
	client, err := openrouterx.NewClient(cfg.OpenRouterFor(llmx.StageRouter))
	if err != nil {
		log.Warn().Err(err).Msg("skip model verification")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	stages := []llmx.Stage{llmx.StageRouter}
	for _, role := range contractx.Roles {
		stages = append(stages, llmx.StageFor(role))
	}
	for _, stage := range stages {
		model := cfg.OpenRouterFor(stage).Model
		if err := openrouterx.VerifyModel(ctx, client, model); err != nil {
			log.Warn().Err(err).Str("stage", string(stage)).Str("model", model).Msg("model verification failed")
		}
	}
}
