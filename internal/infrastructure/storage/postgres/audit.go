package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"

	"kontora/internal/core/id"
	"kontora/internal/domain/audit"
	"kontora/pkg/logger"
)

// CompressionAlgo specifies the payload compression algorithm.
type CompressionAlgo string

const (
	CompressionNone CompressionAlgo = "none"
	CompressionZstd CompressionAlgo = "zstd"
)

var _ audit.Journal = (*AuditJournal)(nil)

// AuditJournal persists journal entries to sys_audit. Large payloads are
// zstd-compressed. Recording is best-effort: failures are logged, never
// propagated to the business operation.
type AuditJournal struct {
	txm               *TxManager
	encoder           *zstd.Encoder
	compressThreshold int
}

// NewAuditJournal creates a journal writing to sys_audit.
func NewAuditJournal(txm *TxManager) (*AuditJournal, error) {
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	return &AuditJournal{
		txm:               txm,
		encoder:           encoder,
		compressThreshold: 10 * 1024,
	}, nil
}

// Record implements audit.Journal.
func (j *AuditJournal) Record(ctx context.Context, entry audit.Entry) {
	var payload []byte
	if entry.Payload != nil {
		var err error
		payload, err = json.Marshal(entry.Payload)
		if err != nil {
			logger.Error(ctx, "audit payload marshal failed",
				"entity_type", entry.EntityType, "entity_uid", entry.EntityUID, "error", err)
			payload = nil
		}
	}

	payload, isCompressed, algo := j.encodePayload(payload)

	const sql = `
		INSERT INTO sys_audit (
			uid, entity_type, entity_uid, action, actor_uid,
			payload, payload_compressed, compression_algo, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	querier := j.txm.GetQuerier(ctx)
	_, err := querier.Exec(ctx, sql,
		id.New(), entry.EntityType, entry.EntityUID, string(entry.Action),
		nullIfEmpty(entry.ActorUID),
		payload, isCompressed, string(algo), time.Now().UTC(),
	)
	if err != nil {
		logger.Error(ctx, "audit record failed",
			"entity_type", entry.EntityType, "entity_uid", entry.EntityUID, "error", err)
	}
}

// encodePayload compresses payloads above the threshold. The returned bytes
// always go into the payload column; the flag and algo describe how to read
// them back.
func (j *AuditJournal) encodePayload(payload []byte) ([]byte, bool, CompressionAlgo) {
	if len(payload) <= j.compressThreshold {
		return payload, false, CompressionNone
	}
	return j.encoder.EncodeAll(payload, nil), true, CompressionZstd
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
