package entropy

import (
	"context"

	"github.com/btcsuite/btcd/rpcclient"
	"github.com/cockroachdb/errors"
	"github.com/solotto/draw-engine/pkg/logger"
	"github.com/solotto/draw-engine/pkg/logger/slogx"
)

// BitcoinSource reads the current best block hash from a Bitcoin Core node.
// Block hashes are unpredictable before the block exists and permanently
// public afterwards, which is exactly what an auditable draw needs.
type BitcoinSource struct {
	client *rpcclient.Client
}

var _ Source = (*BitcoinSource)(nil)

func NewBitcoinSource(client *rpcclient.Client) *BitcoinSource {
	return &BitcoinSource{
		client: client,
	}
}

func (s *BitcoinSource) Seed(ctx context.Context) (string, error) {
	hash, err := s.client.GetBestBlockHash()
	if err != nil {
		return "", errors.Wrap(err, "failed to get best block hash")
	}
	logger.DebugContext(ctx, "fetched entropy seed", slogx.Stringer("blockHash", hash))
	return hash.String(), nil
}
