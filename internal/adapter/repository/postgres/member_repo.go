package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mulisa/vsla-ledger/internal/domain"
)

// MemberRepository implements usecase.MemberRepository.
type MemberRepository struct {
	pool *pgxpool.Pool
}

// NewMemberRepository creates a new MemberRepository.
func NewMemberRepository(pool *pgxpool.Pool) *MemberRepository {
	return &MemberRepository{pool: pool}
}

// GetByID retrieves a member by ID.
func (r *MemberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	var (
		member    domain.Member
		createdAt pgtype.Timestamptz
	)

	err := r.pool.QueryRow(ctx, `
		SELECT id, group_id, name, phone, is_group_admin, created_at
		FROM members WHERE id = $1`,
		id,
	).Scan(&member.ID, &member.GroupID, &member.Name, &member.Phone, &member.IsGroupAdmin, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrMemberNotFound
		}

		return nil, err
	}

	member.CreatedAt = createdAt.Time

	return &member, nil
}

// ListByGroup lists a group's members.
func (r *MemberRepository) ListByGroup(ctx context.Context, groupID string, limit, offset int) ([]*domain.Member, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, group_id, name, phone, is_group_admin, created_at
		FROM members
		WHERE group_id = $1
		ORDER BY name, id
		LIMIT $2 OFFSET $3`,
		groupID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.Member

	for rows.Next() {
		var (
			member    domain.Member
			createdAt pgtype.Timestamptz
		)

		err := rows.Scan(&member.ID, &member.GroupID, &member.Name, &member.Phone, &member.IsGroupAdmin, &createdAt)
		if err != nil {
			return nil, err
		}

		member.CreatedAt = createdAt.Time

		members = append(members, &member)
	}

	return members, rows.Err()
}
