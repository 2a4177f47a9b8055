package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo advertisers, clients, campaigns and ML scores so the
// service can serve ads immediately after a fresh start. All inserts are
// idempotent; running Seed twice leaves the database unchanged.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(42))

	locations := []string{"Moscow", "Berlin", "Yerevan"}
	genders := []string{"MALE", "FEMALE"}

	advertisers := make([]uuid.UUID, 0, 5)
	for i := 1; i <= 5; i++ {
		id := seedUUID(fmt.Sprintf("advertiser-%d", i))
		advertisers = append(advertisers, id)
		_, err := pool.Exec(ctx, `INSERT INTO advertiser (advertiser_id, name)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, id, fmt.Sprintf("Advertiser %d", i))
		if err != nil {
			return fmt.Errorf("seed advertiser: %w", err)
		}
	}

	clients := make([]uuid.UUID, 0, 20)
	for i := 1; i <= 20; i++ {
		id := seedUUID(fmt.Sprintf("client-%d", i))
		clients = append(clients, id)
		_, err := pool.Exec(ctx, `INSERT INTO client (client_id, login, age, location, gender)
VALUES ($1, $2, $3, $4, $5) ON CONFLICT DO NOTHING`,
			id, fmt.Sprintf("user-%d", i), 18+r.Intn(40), locations[r.Intn(len(locations))], genders[r.Intn(len(genders))])
		if err != nil {
			return fmt.Errorf("seed client: %w", err)
		}
	}

	for i, advID := range advertisers {
		for j := 1; j <= 2; j++ {
			campaignID := seedUUID(fmt.Sprintf("campaign-%d-%d", i, j))
			targeting, _ := json.Marshal(map[string]any{
				"age_from": 18,
				"age_to":   60,
			})
			_, err := pool.Exec(ctx, `INSERT INTO campaign
    (campaign_id, advertiser_id, impressions_limit, clicks_limit, cost_per_impression,
     cost_per_click, ad_title, ad_text, start_date, end_date, targeting)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) ON CONFLICT DO NOTHING`,
				campaignID, advID, 1000, 100, 0.5+r.Float64(), 2+3*r.Float64(),
				fmt.Sprintf("Offer %d from Advertiser %d", j, i+1),
				fmt.Sprintf("Demo ad text %d for advertiser %d.", j, i+1),
				0, 30, targeting)
			if err != nil {
				return fmt.Errorf("seed campaign: %w", err)
			}
		}
	}

	for _, clientID := range clients {
		for _, advID := range advertisers {
			_, err := pool.Exec(ctx, `INSERT INTO ml_score (client_id, advertiser_id, score)
VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`, clientID, advID, r.Intn(101))
			if err != nil {
				return fmt.Errorf("seed ml score: %w", err)
			}
		}
	}
	return nil
}

// seedUUID derives a stable UUID from a label so reruns hit the same rows.
func seedUUID(label string) uuid.UUID {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(label))
}
