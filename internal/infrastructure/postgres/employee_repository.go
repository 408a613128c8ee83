package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/nomadeprod/backoffice-api/internal/domain/entity"
	"github.com/nomadeprod/backoffice-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implémentation d'EmployeeRepository sur PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construit l'adaptateur. Passer le pool ou une tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un nouvel employé.
func (r *EmployeeRepo) Create(employee *entity.Employee) error {
	if employee.ID == "" {
		employee.ID = uuid.New().String()
	}
	const query = `
		INSERT INTO employees (id, name, role, email, daily_rate, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.Role, nullIfEmpty(employee.Email),
		employee.DailyRate, employee.Active, employee.CreatedAt, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByID retourne un employé par ID, ou nil si absent.
func (r *EmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	const query = `
		SELECT id, name, COALESCE(role, ''), COALESCE(email, ''), daily_rate, active, created_at, updated_at
		FROM employees WHERE id = $1`
	var e entity.Employee
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.Name, &e.Role, &e.Email, &e.DailyRate, &e.Active, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// List retourne les employés par ordre alphabétique.
func (r *EmployeeRepo) List(limit, offset int) ([]*entity.Employee, error) {
	const query = `
		SELECT id, name, COALESCE(role, ''), COALESCE(email, ''), daily_rate, active, created_at, updated_at
		FROM employees ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()
	var list []*entity.Employee
	for rows.Next() {
		var e entity.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Role, &e.Email, &e.DailyRate, &e.Active, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		list = append(list, &e)
	}
	return list, rows.Err()
}

// Update écrase tous les champs éditables de l'employé.
func (r *EmployeeRepo) Update(employee *entity.Employee) error {
	const query = `
		UPDATE employees
		SET name = $2, role = $3, email = $4, daily_rate = $5, active = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		employee.ID, employee.Name, employee.Role, nullIfEmpty(employee.Email),
		employee.DailyRate, employee.Active, employee.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	return nil
}

// Delete supprime un employé.
func (r *EmployeeRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return nil
}
