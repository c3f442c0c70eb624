package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	routerx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/agents/registry"
	routersvc "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/agents/router"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	historyx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/history"
	hooksx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hooks"
	hrctx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/hrcontext"
	llmx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/llm"
	promptx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/prompt"
	runtimex "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/runtime"
	"github.com/tanpawarit/Workmate-HR-Multi-Agent/api"
	configx "github.com/tanpawarit/Workmate-HR-Multi-Agent/pkg/config"
	eventbusx "github.com/tanpawarit/Workmate-HR-Multi-Agent/pkg/eventbus"
	_ "github.com/tanpawarit/Workmate-HR-Multi-Agent/pkg/logger/autoload"
	openrouterx "github.com/tanpawarit/Workmate-HR-Multi-Agent/pkg/openrouter"
)

type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" split_words:"true" default:"30s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" split_words:"true" default:"120s"`
	IdleTimeout     time.Duration `envconfig:"IDLE_TIMEOUT" split_words:"true" default:"120s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" split_words:"true" default:"10s"`
}

func main() {
	if err := hrctx.ValidateDefaults(); err != nil {
		log.Fatal().Err(err).Msg("built-in reference data is invalid")
	}

	serverCfg := configx.MustNew[ServerConfig]("SERVER")
	llmCfg := configx.MustNew[llmx.Config]("OPENROUTER")
	historyCfg := configx.MustNew[historyx.Config]("HISTORY")
	eventCfg := configx.MustNew[eventbusx.Config]("EVENTBUS")

	ctx := context.Background()

	publisher := eventbusx.MustNewPublisher(*eventCfg)
	if publisher.Disabled() {
		log.Info().Msg("lifecycle event publishing disabled")
	}
	hooks := hooksx.New(publisher)

	models, err := routerx.New(ctx, *llmCfg, hooks)
	if err != nil {
		log.Fatal().Err(err).Msg("build agent registry failed")
	}

	store, err := historyx.Open(ctx, *historyCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open history store failed")
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("close history store failed")
		}
	}()

	var guard contractx.Guardrail
	if strings.TrimSpace(llmCfg.GuardrailModel) != "" {
		client := openrouterx.NewClient(llmCfg.OpenRouterFor(contractx.AgentTypeRouter))
		guard = runtimex.NewChatGuardrail(client, llmCfg.GuardrailModel, promptx.LoadPromptSet().Guardrail)
	}

	service, err := routersvc.New(models, store, guard)
	if err != nil {
		log.Fatal().Err(err).Msg("build router service failed")
	}

	handler := api.NewHandler(service)
	srv := &http.Server{
		Addr:         ":" + serverCfg.Port,
		Handler:      api.NewRouter(handler),
		ReadTimeout:  serverCfg.ReadTimeout,
		WriteTimeout: serverCfg.WriteTimeout,
		IdleTimeout:  serverCfg.IdleTimeout,
	}

	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-sigCtx.Done()
	stop()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverCfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server stopped")
}
