package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JavCast03/proyectoGSASD/models"
)

const queryTimeout = 10 * time.Second

// PostgresStore backs the task collection with a single tareas table.
// Every operation is one parameterized statement; the database's own
// per-statement atomicity is all the transactional behavior we need.
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// InitSchema creates the users and tareas tables if they are missing.
// Safe to run on every startup.
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmts := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id serial PRIMARY KEY,
			username text UNIQUE NOT NULL,
			password text NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS tareas (
			id serial PRIMARY KEY,
			user_id integer REFERENCES users(id),
			texto text NOT NULL,
			completada boolean NOT NULL DEFAULT false,
			creada_en timestamptz NOT NULL DEFAULT now()
		);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context, ownerID int) ([]models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "SELECT id, user_id, texto, completada, creada_en FROM tareas WHERE user_id = $1 ORDER BY creada_en DESC, id DESC"
	rows, err := s.db.Query(ctx, stmt, ownerID)
	if err != nil {
		log.Println("error querying tasks:", err)
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		t := models.Task{}
		if err := rows.Scan(&t.ID, &t.UserID, &t.Text, &t.Completed, &t.CreatedAt); err != nil {
			log.Println("error scanning task row:", err)
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *PostgresStore) Create(ctx context.Context, ownerID int, text string) (models.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	t := models.Task{UserID: ownerID, Text: text}
	stmt := "INSERT INTO tareas (user_id, texto) VALUES ($1, $2) RETURNING id, creada_en"
	if err := s.db.QueryRow(ctx, stmt, ownerID, text).Scan(&t.ID, &t.CreatedAt); err != nil {
		log.Println("error inserting task:", err)
		return models.Task{}, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

func (s *PostgresStore) Toggle(ctx context.Context, ownerID, id int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "UPDATE tareas SET completada = NOT completada WHERE id = $1 AND user_id = $2"
	if _, err := s.db.Exec(ctx, stmt, id, ownerID); err != nil {
		log.Println("error toggling task:", err)
		return fmt.Errorf("toggle task: %w", err)
	}
	return nil
}

func (s *PostgresStore) Delete(ctx context.Context, ownerID, id int) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	stmt := "DELETE FROM tareas WHERE id = $1 AND user_id = $2"
	if _, err := s.db.Exec(ctx, stmt, id, ownerID); err != nil {
		log.Println("error deleting task:", err)
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

func (s *PostgresStore) Count(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n int
	if err := s.db.QueryRow(ctx, "SELECT COUNT(*) FROM tareas").Scan(&n); err != nil {
		return 0, fmt.Errorf("count tasks: %w", err)
	}
	return n, nil
}

// PostgresUserStore is the users table counterpart of PostgresStore.
type PostgresUserStore struct {
	db *pgxpool.Pool
}

func NewPostgresUserStore(db *pgxpool.Pool) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

func (s *PostgresUserStore) Create(ctx context.Context, username, passwordHash string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	u := models.User{Username: username, PasswordHash: passwordHash}
	stmt := "INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id"
	if err := s.db.QueryRow(ctx, stmt, username, passwordHash).Scan(&u.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return models.User{}, ErrUsernameTaken
		}
		log.Println("error adding user:", err)
		return models.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *PostgresUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	u := models.User{}
	stmt := "SELECT id, username, password FROM users WHERE username = $1"
	err := s.db.QueryRow(ctx, stmt, username).Scan(&u.ID, &u.Username, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
