package routernode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

// LoadHistory reads the prior turns for the session. A read failure degrades
// to an empty history: the turn still runs, it just loses context.
func LoadHistory(ctx context.Context, in *GraphState, store contractx.HistoryStore) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if store == nil {
		return in, nil
	}

	turns, err := store.Load(ctx, in.SessionID)
	if err != nil {
		log.Warn().
			Err(err).
			Str("session_id", in.SessionID).
			Msg("load conversation history failed, continuing without history")
		return in, nil
	}

	in.History = turns
	return in, nil
}
