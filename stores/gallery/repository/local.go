package repository

import (
	"github.com/opepen-graveyard/goapi/base/ctx"
	"github.com/opepen-graveyard/goapi/domain/opepen"
)

type localRepo struct {
	burn     opepen.BurnUseCase
	metadata opepen.MetadataUseCase
}

// NewLocalRepo reads from the collector and the fetcher in-process. Failures are reported
// exactly as the corresponding endpoints would report them.
func NewLocalRepo(burn opepen.BurnUseCase, metadata opepen.MetadataUseCase) opepen.GalleryRepo {
	return &localRepo{
		burn:     burn,
		metadata: metadata,
	}
}

func (r *localRepo) GetBurnedIds(c ctx.Ctx) (*opepen.BurnedIds, error) {
	res, err := r.burn.GetBurnedIds(c)
	if err != nil {
		return nil, opepen.BurnedIdsError(err)
	}
	return res, nil
}

func (r *localRepo) GetMetadata(c ctx.Ctx, ids []string) (*opepen.MetadataSet, error) {
	res, err := r.metadata.GetMetadata(c, ids)
	if err != nil {
		return nil, opepen.MetadataError(err)
	}
	return res, nil
}
