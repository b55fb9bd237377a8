package store

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/MKhiriev/repair-minder-sync/internal/crypto"
	"github.com/MKhiriev/repair-minder-sync/internal/logger"
	"github.com/MKhiriev/repair-minder-sync/models"
)

// MetaSessionSalt holds the base64 salt the session key is derived with.
const MetaSessionSalt = "session_salt"

type sealedSessionRepository struct {
	next     SessionRepository
	keyChain crypto.KeyChain
	logger   *logger.Logger
}

// NewSealedSessionRepository wraps next so that tokens are encrypted before
// they reach storage. Sessions written before sealing was enabled are still
// readable. A session that cannot be opened, for example after the secret
// changed, is reported as ErrSessionNotFound so the user logs in again.
func NewSealedSessionRepository(next SessionRepository, keyChain crypto.KeyChain, logger *logger.Logger) SessionRepository {
	return &sealedSessionRepository{next: next, keyChain: keyChain, logger: logger}
}

func (r *sealedSessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	session, err := r.next.LoadSession(ctx)
	if err != nil {
		return models.Session{}, err
	}

	access, err := r.open(session.AccessToken)
	if err != nil {
		r.logger.Warn().Err(err).Str("func", "sealedSessionRepository.LoadSession").Msg("stored session cannot be opened, ignoring it")
		return models.Session{}, ErrSessionNotFound
	}
	refresh, err := r.open(session.RefreshToken)
	if err != nil {
		r.logger.Warn().Err(err).Str("func", "sealedSessionRepository.LoadSession").Msg("stored session cannot be opened, ignoring it")
		return models.Session{}, ErrSessionNotFound
	}

	session.AccessToken = access
	session.RefreshToken = refresh
	return session, nil
}

func (r *sealedSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	var err error
	if session.AccessToken, err = r.keyChain.Seal(session.AccessToken); err != nil {
		return fmt.Errorf("seal access token: %w", err)
	}
	if session.RefreshToken, err = r.keyChain.Seal(session.RefreshToken); err != nil {
		return fmt.Errorf("seal refresh token: %w", err)
	}
	return r.next.SaveSession(ctx, session)
}

func (r *sealedSessionRepository) ClearSession(ctx context.Context) error {
	return r.next.ClearSession(ctx)
}

// open passes plaintext tokens through unchanged.
func (r *sealedSessionRepository) open(value string) (string, error) {
	plain, err := r.keyChain.Open(value)
	if errors.Is(err, crypto.ErrNotSealed) {
		return value, nil
	}
	return plain, err
}

// sessionKeyChain derives the key chain for secret, creating and storing the
// salt on first use.
func sessionKeyChain(ctx context.Context, meta MetaRepository, secret string) (crypto.KeyChain, error) {
	encoded, err := meta.GetMeta(ctx, MetaSessionSalt)
	var salt []byte
	switch {
	case err == nil:
		if salt, err = base64.StdEncoding.DecodeString(encoded); err != nil {
			return nil, fmt.Errorf("decode session salt: %w", err)
		}
	case errors.Is(err, ErrMetaNotFound):
		if salt, err = crypto.NewSalt(); err != nil {
			return nil, fmt.Errorf("generate session salt: %w", err)
		}
		if err = meta.SetMeta(ctx, MetaSessionSalt, base64.StdEncoding.EncodeToString(salt)); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return crypto.NewKeyChain(secret, salt)
}
