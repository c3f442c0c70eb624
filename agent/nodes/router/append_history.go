package routernode

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

// AppendHistory persists the user turn and the final assistant turn of a
// successful exchange. The reply is already produced at this point, so a
// write failure is logged and swallowed rather than failing the turn.
func AppendHistory(ctx context.Context, in *GraphState, store contractx.HistoryStore) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if store == nil || in.Reply == "" {
		return in, nil
	}

	err := store.Append(ctx, in.SessionID,
		contractx.Turn{Role: contractx.RoleUser, Content: in.Text},
		contractx.Turn{Role: contractx.RoleAssistant, Content: in.Reply},
	)
	if err != nil {
		log.Warn().
			Err(err).
			Str("session_id", in.SessionID).
			Msg("append conversation history failed")
	}
	return in, nil
}
