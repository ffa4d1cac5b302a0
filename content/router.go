package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/lixenwraith/wikijump/document"
)

// Router sends file identifiers to Files and everything else to Wiki
// Bare names reach Files only when it has a Root and the name exists under it
type Router struct {
	Files *FileResolver
	Wiki  Resolver
}

func NewRouter(cfg Config) *Router {
	return &Router{
		Files: &FileResolver{Root: cfg.Root},
		Wiki:  NewWikiClient(cfg),
	}
}

func (r *Router) Resolve(ctx context.Context, id string) (*document.Document, error) {
	prefixed := strings.HasPrefix(id, FilePrefix)
	if r.Files != nil && (prefixed || (r.Files.Root != "" && r.Files.Exists(id))) {
		return r.Files.Resolve(ctx, id)
	}
	if prefixed {
		return nil, fmt.Errorf("%w: local files disabled for %q", ErrUnsupported, id)
	}
	if r.Wiki == nil {
		return nil, fmt.Errorf("%w: no wiki configured for %q", ErrUnsupported, id)
	}
	return r.Wiki.Resolve(ctx, id)
}
