package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle reports an error through the context logger. The clog goerr hook
// expands attached values and tags when the console handler is active.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("application error", "error", err)
}
