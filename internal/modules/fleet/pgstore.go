// README: Fleet store backed by PostgreSQL.
package fleet

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Harshdalal22/ssktrucker/internal/types"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Put(ctx context.Context, t *Truck) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO trucks (
			id, plate_number, driver_name, status, todays_earnings,
			fuel_level, next_service_date, online
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			plate_number = EXCLUDED.plate_number,
			driver_name = EXCLUDED.driver_name,
			status = EXCLUDED.status,
			todays_earnings = EXCLUDED.todays_earnings,
			fuel_level = EXCLUDED.fuel_level,
			next_service_date = EXCLUDED.next_service_date,
			online = EXCLUDED.online`,
		string(t.ID),
		t.PlateNumber,
		t.DriverName,
		string(t.Status),
		t.TodaysEarnings.Amount,
		t.FuelLevel,
		t.NextServiceDate,
		t.Online,
	)
	return err
}

func (s *PGStore) Get(ctx context.Context, id types.ID) (*Truck, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, plate_number, driver_name, status, todays_earnings,
		       fuel_level, next_service_date, online
		FROM trucks
		WHERE id = $1`, string(id),
	)
	return scanTruck(row)
}

func (s *PGStore) List(ctx context.Context) ([]*Truck, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, plate_number, driver_name, status, todays_earnings,
		       fuel_level, next_service_date, online
		FROM trucks
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Truck
	for rows.Next() {
		t, err := scanTruck(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *PGStore) SetService(ctx context.Context, id types.ID, date time.Time, status TruckStatus) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE trucks SET next_service_date = $1, status = $2 WHERE id = $3`,
		date, string(status), string(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PGStore) SetOnline(ctx context.Context, id types.ID, online bool) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE trucks SET online = $1 WHERE id = $2`,
		online, string(id),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTruck(row interface{ Scan(dest ...any) error }) (*Truck, error) {
	var t Truck
	var earnings int64
	err := row.Scan(
		&t.ID, &t.PlateNumber, &t.DriverName, &t.Status, &earnings,
		&t.FuelLevel, &t.NextServiceDate, &t.Online,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	t.TodaysEarnings = types.Money{Amount: earnings, Currency: "INR"}
	return &t, nil
}
