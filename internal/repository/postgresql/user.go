package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nexoptima/ems-backend-go/internal/domain/user"
	"github.com/nexoptima/ems-backend-go/internal/pkg/database"
)

type userRepositoryImpl struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) user.UserRepository {
	return &userRepositoryImpl{db: db}
}

const userColumns = `id, first_name, last_name, email, password_hash, role, employee_id,
	department, position, manager_id, joining_date, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Role,
		&u.EmployeeID, &u.Department, &u.Position, &u.ManagerID, &u.JoiningDate,
		&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
	)
	return u, err
}

// Create implements user.UserRepository.
func (r *userRepositoryImpl) Create(ctx context.Context, u user.User) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO users (
			id, first_name, last_name, email, password_hash, role, employee_id,
			department, position, manager_id, joining_date, is_active
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12
		) RETURNING created_at, updated_at
	`

	u.ID = uuid.NewString()
	u.Email = strings.ToLower(u.Email)
	err := q.QueryRow(ctx, query,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.Role,
		u.EmployeeID, u.Department, u.Position, u.ManagerID, u.JoiningDate, u.IsActive,
	).Scan(&u.CreatedAt, &u.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err, "users_email_key") {
			return user.User{}, user.ErrEmailExists
		}
		if isUniqueViolation(err, "users_employee_id_key") {
			return user.User{}, user.ErrEmployeeIDExists
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return u, nil
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return u, nil
}

// GetByEmail implements user.UserRepository.
func (r *userRepositoryImpl) GetByEmail(ctx context.Context, email string) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	u, err := scanUser(q.QueryRow(ctx, query, strings.ToLower(email)))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	return u, nil
}

// List implements user.UserRepository.
func (r *userRepositoryImpl) List(ctx context.Context) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.id, u.first_name, u.last_name, u.email, u.password_hash, u.role,
			   u.employee_id, u.department, u.position, u.manager_id, u.joining_date,
			   u.is_active, u.created_at, u.updated_at,
			   m.first_name || ' ' || m.last_name AS manager_name
		FROM users u
		LEFT JOIN users m ON m.id = u.manager_id
		ORDER BY u.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Role,
			&u.EmployeeID, &u.Department, &u.Position, &u.ManagerID, &u.JoiningDate,
			&u.IsActive, &u.CreatedAt, &u.UpdatedAt, &u.ManagerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// ListByRole implements user.UserRepository.
func (r *userRepositoryImpl) ListByRole(ctx context.Context, role user.Role) ([]user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`SELECT %s FROM users WHERE role = $1 ORDER BY created_at DESC`, userColumns)

	rows, err := q.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		var u user.User
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.Role,
			&u.EmployeeID, &u.Department, &u.Position, &u.ManagerID, &u.JoiningDate,
			&u.IsActive, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Update implements user.UserRepository.
func (r *userRepositoryImpl) Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.User, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE users SET
			first_name = COALESCE($2, first_name),
			last_name = COALESCE($3, last_name),
			email = COALESCE($4, email),
			role = COALESCE($5, role),
			department = COALESCE($6, department),
			position = COALESCE($7, position),
			manager_id = COALESCE($8, manager_id),
			is_active = COALESCE($9, is_active),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var email *string
	if req.Email != nil {
		lowered := strings.ToLower(*req.Email)
		email = &lowered
	}

	u, err := scanUser(q.QueryRow(ctx, query,
		id, req.FirstName, req.LastName, email, req.Role,
		req.Department, req.Position, req.ManagerID, req.IsActive,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return user.User{}, user.ErrUserNotFound
		}
		if isUniqueViolation(err, "users_email_key") {
			return user.User{}, user.ErrEmailExists
		}
		return user.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	return u, nil
}

// Delete implements user.UserRepository.
func (r *userRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserNotFound
	}

	return nil
}

// CountActive implements user.UserRepository.
func (r *userRepositoryImpl) CountActive(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var count int64
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_active`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}

	return count, nil
}
