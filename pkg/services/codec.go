package services

import (
	"context"

	"github.com/rs/zerolog"

	"mindwell/pkg/crypto"
	"mindwell/pkg/storage"
)

const sealerConfigKey = "sealer"

// NewJournalCodec picks the protection for journal content. With a
// passphrase the key parameters are loaded from keys, or generated and
// saved there on first use. keys must not share the app's scope, since
// logout clears that scope.
func NewJournalCodec(ctx context.Context, keys *storage.KV, passphrase string, logger zerolog.Logger) (crypto.Codec, error) {
	if passphrase == "" {
		logger.Warn().Msg("no journal passphrase set, journal content is only encoded")
		return crypto.NewEncoder(), nil
	}

	var saved crypto.KeyDerivationConfig
	var existing *crypto.KeyDerivationConfig
	if keys.Get(ctx, sealerConfigKey, &saved) {
		existing = &saved
	}

	sealer, err := crypto.NewSealer(passphrase, existing, logger)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		keys.Set(ctx, sealerConfigKey, sealer.Config())
	}
	return sealer, nil
}
