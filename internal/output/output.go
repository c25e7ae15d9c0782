package output

import (
	"context"

	"github.com/crimson-sun/starscope/internal/model"
)

// Writer is a destination for a finished report table.
type Writer interface {
	Write(ctx context.Context, t *model.Table) error
	Close() error
}
