package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/classpoint/sis-backend/internal/config"
	"github.com/classpoint/sis-backend/internal/enrollment"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	AuditBatchSize    = 50
	AuditBatchTimeout = 2 * time.Second
	AuditPollTimeout  = 1 * time.Second
)

// AuditPublisher is the enrollment.Sink that feeds the audit worker. It
// pushes events onto a Redis list so the request path never waits on the
// audit table.
type AuditPublisher struct {
	rdb *redis.Client
	log zerolog.Logger
}

// NewAuditPublisher creates a new AuditPublisher.
func NewAuditPublisher(rdb *redis.Client, log zerolog.Logger) *AuditPublisher {
	return &AuditPublisher{
		rdb: rdb,
		log: log.With().Str("component", "audit_publisher").Logger(),
	}
}

// Publish queues one committed event for the audit worker.
func (p *AuditPublisher) Publish(e enrollment.Event) {
	raw, err := json.Marshal(e)
	if err != nil {
		p.log.Error().Err(err).Msg("Marshal audit event failed")
		return
	}
	if err := p.rdb.RPush(context.Background(), config.WorkerKey.AuditQueue(), raw).Err(); err != nil {
		p.log.Error().Err(err).Str("kind", string(e.Kind)).Msg("Queue audit event failed")
	}
}

// AuditWorker drains queued class and roster events into the audit_log
// table in batches.
type AuditWorker struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
	log  zerolog.Logger
}

// NewAuditWorker creates a new AuditWorker.
func NewAuditWorker(pool *pgxpool.Pool, rdb *redis.Client, log zerolog.Logger) *AuditWorker {
	return &AuditWorker{
		pool: pool,
		rdb:  rdb,
		log:  log.With().Str("component", "audit_worker").Logger(),
	}
}

// ----------------------------------------------------------------
// Worker loop with batching
// ----------------------------------------------------------------

func (w *AuditWorker) Start(ctx context.Context) {
	w.log.Info().Msg("AuditWorker started")

	batch := make([]*enrollment.Event, 0, AuditBatchSize)
	lastFlush := time.Now()

	for {
		// Should flush?
		if len(batch) > 0 &&
			(len(batch) >= AuditBatchSize || time.Since(lastFlush) >= AuditBatchTimeout) {

			w.flushSafe(ctx, batch)
			batch = batch[:0]
			lastFlush = time.Now()
		}

		select {
		case <-ctx.Done():
			w.log.Info().Msg("Shutdown requested. Flushing remaining batch...")
			w.flushSafe(context.Background(), batch)
			return

		default:
			item, err := w.rdb.BLPop(ctx, AuditPollTimeout, config.WorkerKey.AuditQueue()).Result()
			if err != nil {
				if err != redis.Nil && ctx.Err() == nil {
					w.log.Error().Err(err).Msg("BLPop error")
				}
				continue
			}

			if len(item) < 2 {
				continue
			}

			var e enrollment.Event
			if err := json.Unmarshal([]byte(item[1]), &e); err != nil {
				w.log.Error().Err(err).Msg("Invalid JSON payload")
				continue
			}

			batch = append(batch, &e)
		}
	}
}

func (w *AuditWorker) flushSafe(ctx context.Context, batch []*enrollment.Event) {
	if len(batch) == 0 {
		return
	}

	if err := w.bulkInsert(ctx, batch); err != nil {
		w.log.Warn().Err(err).Msg("bulk audit insert failed, using fallback")

		for _, e := range batch {
			if err := w.insertSingle(ctx, e); err != nil {
				w.log.Error().Err(err).Msg("insertSingle failed, requeueing")
				raw, _ := json.Marshal(e)
				w.rdb.RPush(ctx, config.WorkerKey.AuditQueue(), raw)
			}
		}
	}
}

// ----------------------------------------------------------------
// BULK PostgreSQL INSERT using UNNEST
// ----------------------------------------------------------------

func (w *AuditWorker) bulkInsert(ctx context.Context, batch []*enrollment.Event) error {
	n := len(batch)

	kinds := make([]string, 0, n)
	classIDs := make([]int, 0, n)
	subjectIDs := make([]int, 0, n)
	studentIDs := make([]int, 0, n)
	actorIDs := make([]int, 0, n)
	occurredAts := make([]time.Time, 0, n)

	for _, e := range batch {
		kinds = append(kinds, string(e.Kind))
		classIDs = append(classIDs, e.ClassID)
		subjectIDs = append(subjectIDs, e.SubjectID)
		studentIDs = append(studentIDs, e.StudentID)
		actorIDs = append(actorIDs, e.ActorID)
		occurredAts = append(occurredAts, e.At)
	}

	query := `
		INSERT INTO audit_log (kind, class_id, subject_id, student_id, actor_id, occurred_at)
		SELECT u.kind, u.class_id, u.subject_id, u.student_id, u.actor_id, u.occurred_at
		FROM UNNEST(
			$1::text[],
			$2::int[],
			$3::int[],
			$4::int[],
			$5::int[],
			$6::timestamptz[]
		) AS u (kind, class_id, subject_id, student_id, actor_id, occurred_at)
	`

	_, err := w.pool.Exec(ctx, query, kinds, classIDs, subjectIDs, studentIDs, actorIDs, occurredAts)
	return err
}

// ----------------------------------------------------------------
// FALLBACK single insert
// ----------------------------------------------------------------

func (w *AuditWorker) insertSingle(ctx context.Context, e *enrollment.Event) error {
	_, err := w.pool.Exec(ctx,
		`INSERT INTO audit_log (kind, class_id, subject_id, student_id, actor_id, occurred_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		string(e.Kind), e.ClassID, e.SubjectID, e.StudentID, e.ActorID, e.At,
	)
	return err
}
