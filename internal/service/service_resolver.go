package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mirror-sync/internal/adapter"
	"github.com/MKhiriev/go-mirror-sync/internal/logger"
	"github.com/MKhiriev/go-mirror-sync/models"
)

type resolverService struct {
	adapter adapter.RemoteAdapter

	logger *logger.Logger
}

// NewResolverService creates a Resolver that walks the remote tree one
// path segment at a time starting from the root folder.
func NewResolverService(remoteAdapter adapter.RemoteAdapter, logger *logger.Logger) Resolver {
	return &resolverService{adapter: remoteAdapter, logger: logger}
}

// Resolve implements Resolver. For every segment it lists the current folder
// and descends into the first child folder whose name matches exactly.
// An empty segment list resolves to the root folder.
//
// Returns ErrFolderNotFound (wrapped) as soon as a segment is missing, or the
// listing error if the remote cannot be reached.
func (r *resolverService) Resolve(ctx context.Context, segments []string) (int64, error) {
	folderID := models.RootFolderID

	for depth, segment := range segments {
		listing, err := r.adapter.ListFolder(ctx, folderID)
		if err != nil {
			return 0, fmt.Errorf("list folder %d: %w", folderID, err)
		}

		next, ok := findChildFolder(listing.Children, segment)
		if !ok {
			return 0, fmt.Errorf("%w: segment %q (depth %d) in folder %d", ErrFolderNotFound, segment, depth, folderID)
		}

		r.logger.Debug().
			Str("func", "resolverService.Resolve").
			Str("segment", segment).
			Int64("folder_id", next).
			Msg("path segment resolved")
		folderID = next
	}

	return folderID, nil
}

func findChildFolder(children []models.RemoteEntry, name string) (int64, bool) {
	for _, child := range children {
		if child.IsDir() && child.Name == name {
			return child.ID, true
		}
	}

	return 0, false
}
