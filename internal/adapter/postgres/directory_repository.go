package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/IvanSaydyashev/AdEngine/internal/core/domain"
	"github.com/IvanSaydyashev/AdEngine/internal/core/port"
)

// ClientRepository implements port.ClientRepository.
type ClientRepository struct {
	pool *pgxpool.Pool
}

// NewClientRepository returns a new repository instance.
func NewClientRepository(pool *pgxpool.Pool) *ClientRepository {
	return &ClientRepository{pool: pool}
}

// Get returns a client by id, or nil when unknown.
func (r *ClientRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Client, error) {
	var c domain.Client
	err := r.pool.QueryRow(ctx,
		`SELECT client_id, login, age, location, gender FROM client WHERE client_id = $1`, id).
		Scan(&c.ID, &c.Login, &c.Age, &c.Location, &c.Gender)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert creates or replaces the given clients in one transaction so a bulk
// request is all-or-nothing.
func (r *ClientRepository) Upsert(ctx context.Context, clients []domain.Client) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, c := range clients {
		_, err = tx.Exec(ctx,
			`INSERT INTO client (client_id, login, age, location, gender)
             VALUES ($1, $2, $3, $4, $5)
             ON CONFLICT (client_id) DO UPDATE SET
                 login = EXCLUDED.login, age = EXCLUDED.age,
                 location = EXCLUDED.location, gender = EXCLUDED.gender`,
			c.ID, c.Login, c.Age, c.Location, c.Gender)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// AdvertiserRepository implements port.AdvertiserRepository.
type AdvertiserRepository struct {
	pool *pgxpool.Pool
}

// NewAdvertiserRepository returns a new repository instance.
func NewAdvertiserRepository(pool *pgxpool.Pool) *AdvertiserRepository {
	return &AdvertiserRepository{pool: pool}
}

// Get returns an advertiser by id, or nil when unknown.
func (r *AdvertiserRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Advertiser, error) {
	var a domain.Advertiser
	err := r.pool.QueryRow(ctx,
		`SELECT advertiser_id, name FROM advertiser WHERE advertiser_id = $1`, id).
		Scan(&a.ID, &a.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Upsert creates or replaces the given advertisers in one transaction.
func (r *AdvertiserRepository) Upsert(ctx context.Context, advertisers []domain.Advertiser) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, a := range advertisers {
		_, err = tx.Exec(ctx,
			`INSERT INTO advertiser (advertiser_id, name) VALUES ($1, $2)
             ON CONFLICT (advertiser_id) DO UPDATE SET name = EXCLUDED.name`,
			a.ID, a.Name)
		if err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// ScoreRepository implements port.ScoreRepository.
type ScoreRepository struct {
	pool *pgxpool.Pool
}

// NewScoreRepository returns a new repository instance.
func NewScoreRepository(pool *pgxpool.Pool) *ScoreRepository {
	return &ScoreRepository{pool: pool}
}

// Upsert stores the score for the (client, advertiser) pair.
func (r *ScoreRepository) Upsert(ctx context.Context, score domain.MLScore) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO ml_score (client_id, advertiser_id, score) VALUES ($1, $2, $3)
         ON CONFLICT (client_id, advertiser_id) DO UPDATE SET score = EXCLUDED.score`,
		score.ClientID, score.AdvertiserID, score.Score)
	return err
}

var (
	_ port.ClientRepository     = (*ClientRepository)(nil)
	_ port.AdvertiserRepository = (*AdvertiserRepository)(nil)
	_ port.ScoreRepository      = (*ScoreRepository)(nil)
)
