package repository

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/lifefinance/navigator/internal/model"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already exists")
	ErrProfileNotFound = errors.New("profile not found")
)

// psql builds queries with $n placeholders, understood by both sqlite and pgx.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type UserRepository interface {
	Create(user *model.User) error
	ByID(id string) (*model.User, error)
	ByEmail(email string) (*model.User, error)
	Update(user *model.User) error
	UpdateKakaoToken(user *model.User) error
	All() ([]*model.User, error)
	BySignupMethod(method string) ([]*model.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if user.SignupMethod == "" {
		user.SignupMethod = model.SignupMethodEmail
	}

	query := `INSERT INTO users (id, email, name, password_hash, signup_method, kakao_access_token, kakao_refresh_token, kakao_token_expiry, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(query,
		user.ID,
		user.Email,
		user.Name,
		user.PasswordHash,
		user.SignupMethod,
		user.KakaoAccessToken,
		user.KakaoRefreshToken,
		user.KakaoTokenExpiry,
		user.CreatedAt,
	)
	if err != nil {
		// Check for unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *userRepository) ByID(id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) ByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.Get(user, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *userRepository) Update(user *model.User) error {
	query := `UPDATE users SET email = $1, name = $2, password_hash = $3, signup_method = $4 WHERE id = $5`

	result, err := r.db.Exec(query, user.Email, user.Name, user.PasswordHash, user.SignupMethod, user.ID)
	if err != nil {
		return err
	}

	return requireRow(result, ErrUserNotFound)
}

func (r *userRepository) UpdateKakaoToken(user *model.User) error {
	query := `UPDATE users SET kakao_access_token = $1, kakao_refresh_token = $2, kakao_token_expiry = $3 WHERE id = $4`

	result, err := r.db.Exec(query, user.KakaoAccessToken, user.KakaoRefreshToken, user.KakaoTokenExpiry, user.ID)
	if err != nil {
		return err
	}

	return requireRow(result, ErrUserNotFound)
}

// All returns every account ordered by signup time, for the notification batch.
func (r *userRepository) All() ([]*model.User, error) {
	return r.selectUsers(psql.Select("*").From("users").OrderBy("created_at ASC", "id ASC"))
}

func (r *userRepository) BySignupMethod(method string) ([]*model.User, error) {
	return r.selectUsers(psql.Select("*").From("users").
		Where(sq.Eq{"signup_method": method}).
		OrderBy("created_at ASC", "id ASC"))
}

func (r *userRepository) selectUsers(b sq.SelectBuilder) ([]*model.User, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	users := []*model.User{}
	err = r.db.Select(&users, query, args...)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func requireRow(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
