// README: Booking store backed by PostgreSQL with optimistic status updates.
package booking

import (
	"context"
	"database/sql"
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

func (s *PGStore) Create(ctx context.Context, b *Booking) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookings (
			id, customer_id, pickup_location, drop_location, truck_type,
			material_type, weight_kg, budget, distance_km, requested_date,
			status, status_version, created_at
		) VALUES (
			$1, $2, $3, $4, $5,
			$6, $7, $8, $9, $10,
			$11, $12, $13
		)`,
		string(b.ID),
		string(b.CustomerID),
		b.PickupLocation,
		b.DropLocation,
		string(b.TruckType),
		b.MaterialType,
		b.WeightKg,
		b.Budget.Amount,
		b.DistanceKm,
		b.Date,
		string(b.Status),
		b.StatusVersion,
		b.CreatedAt,
	)
	return err
}

func (s *PGStore) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, customer_id, pickup_location, drop_location, truck_type,
		       material_type, weight_kg, budget, distance_km, requested_date,
		       status, status_version, accepted_bid_id,
		       created_at, accepted_at, started_at, completed_at
		FROM bookings
		WHERE id = $1`, string(id),
	)
	b, err := scanBooking(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadBids(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *PGStore) List(ctx context.Context) ([]*Booking, error) {
	return s.list(ctx, `
		SELECT id, customer_id, pickup_location, drop_location, truck_type,
		       material_type, weight_kg, budget, distance_km, requested_date,
		       status, status_version, accepted_bid_id,
		       created_at, accepted_at, started_at, completed_at
		FROM bookings
		ORDER BY created_at DESC`)
}

func (s *PGStore) ListByCustomer(ctx context.Context, customerID types.ID) ([]*Booking, error) {
	return s.list(ctx, `
		SELECT id, customer_id, pickup_location, drop_location, truck_type,
		       material_type, weight_kg, budget, distance_km, requested_date,
		       status, status_version, accepted_bid_id,
		       created_at, accepted_at, started_at, completed_at
		FROM bookings
		WHERE customer_id = $1
		ORDER BY created_at DESC`, string(customerID))
}

func (s *PGStore) list(ctx context.Context, query string, args ...any) ([]*Booking, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, b := range out {
		if err := s.loadBids(ctx, b); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// AppendBid inserts the bid only while the booking is still open. The guard
// runs inside the INSERT so a concurrent acceptance cannot slip a bid into a
// closed booking.
func (s *PGStore) AppendBid(ctx context.Context, bookingID types.ID, bid *Bid) error {
	tag, err := s.db.Exec(ctx, `
		INSERT INTO bids (
			id, booking_id, driver_id, driver_name, amount, rating,
			eta_minutes, vehicle_no, vehicle_capacity, vehicle_dimensions, created_at
		)
		SELECT $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		WHERE EXISTS (
			SELECT 1 FROM bookings
			WHERE id = $2 AND status IN ('pending', 'bidding')
		)`,
		string(bid.ID),
		string(bookingID),
		string(bid.DriverID),
		bid.DriverName,
		bid.Amount.Amount,
		bid.Rating,
		bid.ETAMinutes,
		bid.VehicleNo,
		nullIfEmpty(bid.VehicleCapacity),
		nullIfEmpty(bid.VehicleDimensions),
		bid.CreatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	// Insert was suppressed: closed booking or unknown id. Closed bookings
	// never reopen, so this follow-up read cannot misclassify.
	var exists bool
	if err := s.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`,
		string(bookingID),
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrInvalidState
}

func (s *PGStore) UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, acceptedBidID *types.ID) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings
		SET status = $1,
		    status_version = status_version + 1,
		    accepted_bid_id = COALESCE($2, accepted_bid_id),
		    accepted_at = CASE WHEN $1 = 'accepted' THEN NOW() ELSE accepted_at END,
		    started_at = CASE WHEN $1 = 'in_progress' THEN NOW() ELSE started_at END,
		    completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END
		WHERE id = $3 AND status = $4 AND status_version = $5`,
		string(to),
		idPtr(acceptedBidID),
		string(id),
		string(from),
		version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *PGStore) AppendEvent(ctx context.Context, e *Event) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO booking_state_events (
			booking_id, from_status, to_status, actor_type, actor_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		string(e.BookingID),
		string(e.FromStatus),
		string(e.ToStatus),
		e.ActorType,
		idPtr(e.ActorID),
		e.CreatedAt,
	)
	return err
}

func (s *PGStore) loadBids(ctx context.Context, b *Booking) error {
	rows, err := s.db.Query(ctx, `
		SELECT id, driver_id, driver_name, amount, rating, eta_minutes,
		       vehicle_no, vehicle_capacity, vehicle_dimensions, created_at
		FROM bids
		WHERE booking_id = $1
		ORDER BY seq`, string(b.ID),
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	b.Bids = []Bid{}
	for rows.Next() {
		var bid Bid
		var capacity, dimensions sql.NullString
		var amount int64
		if err := rows.Scan(
			&bid.ID, &bid.DriverID, &bid.DriverName, &amount, &bid.Rating,
			&bid.ETAMinutes, &bid.VehicleNo, &capacity, &dimensions, &bid.CreatedAt,
		); err != nil {
			return err
		}
		bid.Amount = types.Money{Amount: amount, Currency: "INR"}
		bid.VehicleCapacity = capacity.String
		bid.VehicleDimensions = dimensions.String
		b.Bids = append(b.Bids, bid)
	}
	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*Booking, error) {
	var b Booking
	var budget int64
	var acceptedBidID sql.NullString
	var acceptedAt, startedAt, completedAt sql.NullTime

	err := row.Scan(
		&b.ID, &b.CustomerID, &b.PickupLocation, &b.DropLocation, &b.TruckType,
		&b.MaterialType, &b.WeightKg, &budget, &b.DistanceKm, &b.Date,
		&b.Status, &b.StatusVersion, &acceptedBidID,
		&b.CreatedAt, &acceptedAt, &startedAt, &completedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	b.Budget = types.Money{Amount: budget, Currency: "INR"}
	if acceptedBidID.Valid {
		v := types.ID(acceptedBidID.String)
		b.AcceptedBidID = &v
	}
	b.AcceptedAt = toTimePtr(acceptedAt)
	b.StartedAt = toTimePtr(startedAt)
	b.CompletedAt = toTimePtr(completedAt)
	return &b, nil
}

func idPtr(v *types.ID) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}

func nullIfEmpty(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func toTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
