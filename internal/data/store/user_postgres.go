package store

import (
	"context"
	"fmt"

	"business-buddy/internal/data/entity"
	"business-buddy/pkg/database"
	"business-buddy/pkg/utils"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type postgresUserStore struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPostgresUserStore(db database.PgxIface, log *zap.Logger) UserStore {
	return &postgresUserStore{
		db:  db,
		log: log.With(zap.String("store", "user"), zap.String("driver", "postgres")),
	}
}

func (s *postgresUserStore) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, password, user_type, company_name, phone, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := s.db.Exec(ctx, query,
		user.ID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.UserType,
		user.CompanyName,
		user.Phone,
		user.CreatedAt,
	)

	if err != nil {
		s.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (s *postgresUserStore) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT id, name, email, password, user_type, company_name, phone, created_at
		FROM users
		WHERE email = $1
	`

	var user entity.User
	err := s.db.QueryRow(ctx, query, utils.NormalizeEmail(email)).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.UserType,
		&user.CompanyName,
		&user.Phone,
		&user.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		s.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (s *postgresUserStore) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, name, email, password, user_type, company_name, phone, created_at
		FROM users
		ORDER BY created_at
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var user entity.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.UserType,
			&user.CompanyName,
			&user.Phone,
			&user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}

	return users, nil
}
