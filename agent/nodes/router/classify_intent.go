package routernode

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/Workmate-HR-Multi-Agent/agent/contract"
)

// ClassifyIntent asks the route classifier which path handles the message.
func ClassifyIntent(ctx context.Context, in *GraphState, classifier contractx.Classifier) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}
	if classifier == nil {
		return nil, fmt.Errorf("%w: classifier is required", contractx.ErrConfiguration)
	}

	decision, err := classifier.Classify(ctx, contractx.ClassifyRequest{
		Message: in.Text,
		History: in.History,
	})
	if err != nil {
		return nil, err
	}

	in.Route = decision
	return in, nil
}
