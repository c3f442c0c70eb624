// Package router wires the full message pipeline: request validation,
// session-context construction, history, input screening, intent
// classification, and dispatch to the selected agent.
package router

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
	nodex "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/nodes/router"
)

var ErrInvalidMessage = nodex.ErrInvalidMessage

// Request is one inbound chat message. SessionID, UserID, and TenantID are
// optional; blank values resolve to the configured defaults.
type Request struct {
	SessionID string
	UserID    string
	TenantID  string
	Message   string
}

// Response is the routed agent's final answer.
type Response struct {
	Reply string
	Agent string
}

type Service struct {
	store  contractx.HistoryStore
	models contractx.Registry
	guard  contractx.Guardrail

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]

	now func() time.Time
}

func New(
	models contractx.Registry,
	store contractx.HistoryStore,
	guard contractx.Guardrail,
) (*Service, error) {
	if models == nil {
		return nil, errors.New("agent registry is required")
	}
	if store == nil {
		return nil, errors.New("history store is required")
	}

	s := &Service{
		store:  store,
		models: models,
		guard:  guard,
		now:    time.Now,
	}

	graphRunner, err := s.compileHandleMessageGraph(context.Background())
	if err != nil {
		return nil, err
	}
	s.graphRunner = graphRunner

	return s, nil
}

// HandleMessage runs one full exchange and returns the routed agent's reply.
func (s *Service) HandleMessage(ctx context.Context, req Request) (Response, error) {
	invocationID := uuid.NewString()
	started := s.now()

	out, err := s.graphRunner.Invoke(ctx, nodex.GraphInput{
		SessionID: req.SessionID,
		UserID:    req.UserID,
		TenantID:  req.TenantID,
		Text:      req.Message,
	})
	if err != nil {
		log.Error().
			Err(err).
			Str("invocation_id", invocationID).
			Str("session_id", req.SessionID).
			Dur("elapsed", s.now().Sub(started)).
			Msg("handle message failed")
		return Response{}, err
	}

	log.Info().
		Str("invocation_id", invocationID).
		Str("session_id", req.SessionID).
		Str("agent", out.Agent).
		Dur("elapsed", s.now().Sub(started)).
		Msg("handle message completed")

	return Response{Reply: out.Reply, Agent: out.Agent}, nil
}
