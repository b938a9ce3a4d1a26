package users

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"petpal/internal/store"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Service maneja el registro de usuarios y la sesión única.
//
// La sesión es un registro especial en el Store (clave currentUser): una
// COPIA del User al momento del login. Si la colección users muta después,
// la copia puede quedar desactualizada; no hay refresh. Comportamiento
// heredado y preservado.
type Service struct {
	st    store.Store
	users *store.Collection[User]
	now   func() time.Time
}

func NewService(st store.Store) *Service {
	return &Service{
		st:    st,
		users: store.NewCollection[User](st, store.CollectionUsers),
		now:   time.Now,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Register da de alta un usuario nuevo y lo deja logueado (registrarse
// implica login). El email se compara exacto, case-sensitive, solo contra
// la colección al momento del alta.
func (s *Service) Register(ctx context.Context, in RegisterInput) (User, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || in.Email == "" || in.Password == "" {
		return User{}, ErrInvalidInput
	}

	all, err := s.users.Load(ctx)
	if err != nil {
		return User{}, err
	}

	for _, u := range all {
		if u.Email == in.Email {
			return User{}, ErrDuplicateEmail
		}
	}

	now := s.now()
	u := User{
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Name:      name,
		Email:     in.Email,
		Password:  in.Password,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}

	all = append(all, u)
	if err := s.users.Save(ctx, all); err != nil {
		return User{}, err
	}

	if err := s.persistSession(ctx, u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Login busca un match exacto email+password y persiste la sesión.
func (s *Service) Login(ctx context.Context, email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	all, err := s.users.Load(ctx)
	if err != nil {
		return User{}, err
	}

	for _, u := range all {
		if u.Email == email && u.Password == password {
			if err := s.persistSession(ctx, u); err != nil {
				return User{}, err
			}
			return u, nil
		}
	}

	return User{}, ErrInvalidCredentials
}

// Logout limpia la sesión. Sin sesión activa es un no-op.
func (s *Service) Logout(ctx context.Context) error {
	return s.st.Delete(ctx, store.CollectionCurrentUser)
}

// Current devuelve el usuario de la sesión, o ok=false cuando no hay sesión.
// Valor ausente, malformado o con los marcadores de ausencia del formato
// persistido ("null", "{}") degradan a "sin sesión"; nunca es un error.
func (s *Service) Current(ctx context.Context) (User, bool, error) {
	raw, err := s.st.Read(ctx, store.CollectionCurrentUser)
	if err != nil {
		return User{}, false, err
	}

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" || trimmed == "{}" {
		return User{}, false, nil
	}

	var u User
	if err := json.Unmarshal([]byte(trimmed), &u); err != nil {
		return User{}, false, nil
	}
	if strings.TrimSpace(u.ID) == "" {
		return User{}, false, nil
	}
	return u, true, nil
}

func (s *Service) IsAuthenticated(ctx context.Context) (bool, error) {
	_, ok, err := s.Current(ctx)
	return ok, err
}

func (s *Service) persistSession(ctx context.Context, u User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return s.st.Write(ctx, store.CollectionCurrentUser, b)
}
