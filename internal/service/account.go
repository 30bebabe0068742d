package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/ledger"
	"github.com/vietanh2810/eventhub/internal/metrics"
	"github.com/vietanh2810/eventhub/internal/repository"
)

// At least 8 characters with one letter and one digit.
var passwordPolicy = regexp2.MustCompile(`^(?=.*[A-Za-z])(?=.*\d).{8,}$`, regexp2.None)

type Registration struct {
	Email    string
	Password string
	Name     string
	Surname  string
	Phone    string
	Type     domain.UserType
}

func (r Registration) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Type, validation.Required, validation.In(domain.UserAttendee, domain.UserOrganizer, domain.UserVendor)),
	)
	if err != nil {
		return domain.InvalidInput(err)
	}

	ok, err := passwordPolicy.MatchString(r.Password)
	if err != nil || !ok {
		return domain.ErrWeakPassword
	}
	return nil
}

type AccountService struct {
	store Store
}

func NewAccountService(store Store) *AccountService {
	return &AccountService{
		store: store,
	}
}

func (s *AccountService) Register(ctx context.Context, reg Registration) (domain.User, error) {
	reg.Email = strings.TrimSpace(reg.Email)
	if err := reg.Validate(); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	var created domain.User
	err = s.store.Update(ctx, func(tx *repository.Tx) error {
		if _, ok := tx.FindUserByEmail(reg.Email); ok {
			return domain.ErrEmailTaken
		}
		created = domain.User{
			ID:       tx.NextID(repository.Users),
			Email:    reg.Email,
			Password: string(hash),
			Name:     reg.Name,
			Surname:  reg.Surname,
			Phone:    reg.Phone,
			Type:     reg.Type,
			Credit:   decimal.Zero,
		}
		tx.Users = append(tx.Users, created)
		tx.Touch(repository.Users)
		return nil
	})
	metrics.TrackOperation("register", err)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.store.Update -> %w", err)
	}

	zap.L().Info("user registered", zap.Uint("user_id", created.ID), zap.String("type", string(created.Type)))
	return created, nil
}

// Authenticate checks a password against the stored hash. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *AccountService) Authenticate(ctx context.Context, email, password string) (domain.User, error) {
	var user domain.User
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		i, ok := snap.FindUserByEmail(email)
		if !ok {
			return domain.ErrInvalidCredentials
		}
		user = snap.Users[i]
		return nil
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.store.View -> %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
			return domain.User{}, domain.ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("bcrypt.CompareHashAndPassword -> %w", err)
	}

	return user, nil
}

func (s *AccountService) GetUser(ctx context.Context, id uint) (domain.User, error) {
	var user domain.User
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		i, ok := snap.FindUser(id)
		if !ok {
			return domain.ErrUserNotFound
		}
		user = snap.Users[i]
		return nil
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("s.store.View -> %w", err)
	}

	return user, nil
}

func (s *AccountService) CreditBalance(ctx context.Context, userID uint) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := s.store.View(ctx, func(snap *repository.Snapshot) error {
		var err error
		balance, err = ledger.Balance(snap, userID)
		return err
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("s.store.View -> %w", err)
	}

	return balance, nil
}
