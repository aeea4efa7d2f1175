// Package services contains the use-case operations of the registry:
// Register, Search and Delete. Each one is an independent transaction over
// the persisted document; no state is kept between calls.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/userregistry/internal/common"
	"github.com/dmitrijs2005/userregistry/internal/cryptox"
	"github.com/dmitrijs2005/userregistry/internal/logging"
	"github.com/dmitrijs2005/userregistry/internal/models"
	"github.com/dmitrijs2005/userregistry/internal/repositories/users"
	"github.com/dmitrijs2005/userregistry/internal/validation"
)

// UserService defines the operations offered to the CLI.
//
// Contract:
//   - Register: validate every field, then append the record. Returns
//     validation.Errors when any rule fails; nothing is written in that case.
//   - Search: read-only lookup of the first record with the identification.
//   - Delete: remove the first record with the identification.
//
// Search and Delete return common.ErrorNotFound when nothing matches. Store
// failures match common.ErrRead or common.ErrWrite.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Search(ctx context.Context, identification string) (*models.User, error)
	Delete(ctx context.Context, identification string) error
}

// RegisterInput is the raw text collected for a new user.
type RegisterInput struct {
	FirstName      string
	LastName       string
	Identification string
	Age            string
	Email          string
	Password       []byte
}

// Options tunes how records are stored.
type Options struct {
	// HashPasswords stores a bcrypt hash instead of the plain password.
	HashPasswords bool
	// HashCost is the bcrypt cost; zero means cryptox.DefaultCost.
	HashCost int
}

type userService struct {
	repo users.Repository
	log  logging.Logger
	opts Options
}

// NewUserService constructs a UserService over repo.
func NewUserService(repo users.Repository, log logging.Logger, opts Options) UserService {
	if opts.HashCost == 0 {
		opts.HashCost = cryptox.DefaultCost
	}
	return &userService{repo: repo, log: log, opts: opts}
}

func (s *userService) opLogger(op string) logging.Logger {
	return s.log.With("op", op, "op_id", uuid.NewString())
}

// Register validates the input and appends a new record.
func (s *userService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	log := s.opLogger("register")

	if errs := validation.Validate(validation.Fields{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Identification: in.Identification,
		Age:            in.Age,
		Email:          in.Email,
	}); errs != nil {
		log.Info(ctx, "validation failed", "fields", errs.Keys())
		return nil, errs
	}

	age, _ := validation.ParseAge(in.Age)

	password := string(in.Password)
	if s.opts.HashPasswords {
		hashed, err := cryptox.HashPassword(in.Password, s.opts.HashCost)
		if err != nil {
			log.Error(ctx, "hashing password", "error", err)
			return nil, fmt.Errorf("hashing password: %w", err)
		}
		password = hashed
	}

	u := models.User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Identification: in.Identification,
		Age:            age,
		Email:          in.Email,
		Password:       password,
	}

	err := s.repo.Update(ctx, func(doc *models.UserDocument) (bool, error) {
		doc.Append(u)
		return true, nil
	})
	if err != nil {
		log.Error(ctx, "saving user", "identification", u.Identification, "error", err)
		return nil, err
	}

	log.Info(ctx, "user registered", "identification", u.Identification)
	return &u, nil
}

// Search returns the first record with the given identification.
func (s *userService) Search(ctx context.Context, identification string) (*models.User, error) {
	log := s.opLogger("search")

	doc, err := s.repo.Load(ctx)
	if err != nil {
		log.Error(ctx, "loading users", "error", err)
		return nil, err
	}

	u, ok := doc.FindByIdentification(identification)
	if !ok {
		log.Debug(ctx, "user not found", "identification", identification)
		return nil, common.ErrorNotFound
	}

	log.Debug(ctx, "user found", "identification", identification)
	return u, nil
}

// Delete removes the first record with the given identification. The file
// is not rewritten when nothing matches.
func (s *userService) Delete(ctx context.Context, identification string) error {
	log := s.opLogger("delete")

	err := s.repo.Update(ctx, func(doc *models.UserDocument) (bool, error) {
		if !doc.RemoveByIdentification(identification) {
			return false, common.ErrorNotFound
		}
		return true, nil
	})
	switch {
	case errors.Is(err, common.ErrorNotFound):
		log.Debug(ctx, "user not found", "identification", identification)
		return err
	case err != nil:
		log.Error(ctx, "deleting user", "identification", identification, "error", err)
		return err
	}

	log.Info(ctx, "user deleted", "identification", identification)
	return nil
}
