// Copyright 2025 greenBin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package workflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"golang.org/x/crypto/bcrypt"

	"github.com/MeBouha/greenBin-sub000/pkg/models"
	"github.com/MeBouha/greenBin-sub000/pkg/standarderrors"
)

var (
	// ErrInvalidCredentials is returned when the password check fails.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountBlocked is returned when the account is locked out. A
	// blocked account stays blocked until an administrator unblocks it.
	ErrAccountBlocked = errors.New("account blocked")
)

// MaxFailedAttempts is the number of consecutive failed password checks
// that forces an account into the blocked state.
const MaxFailedAttempts = 4

// Account lifecycle events.
const (
	EventAccountBlock   = "block"
	EventAccountUnblock = "unblock"
)

// accountMachine builds the account state machine for a user in the given
// state.
func (e *Engine) accountMachine(login string, current models.AccountState) *fsm.FSM {
	return fsm.NewFSM(
		string(current),
		fsm.Events{
			{Name: EventAccountBlock, Src: []string{string(models.AccountActive)}, Dst: string(models.AccountBlocked)},
			{Name: EventAccountUnblock, Src: []string{string(models.AccountBlocked)}, Dst: string(models.AccountActive)},
		},
		fsm.Callbacks{
			"enter_" + string(models.AccountBlocked): func(ctx context.Context, ev *fsm.Event) {
				e.log.Warnf("account %q blocked after %d failed attempts", login, MaxFailedAttempts)
			},
		},
	)
}

// HashPassword hashes a plaintext password for storage on a user account.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// Authenticate checks a login/password pair against the user collection.
//
// Every failed check increments the user's persisted failure counter; the
// counter reaching MaxFailedAttempts forces the account into the blocked
// state. A successful check resets the counter. A blocked account always
// fails, even with the correct password.
func (e *Engine) Authenticate(ctx context.Context, login, password string) (models.User, error) {
	var zero models.User

	user, err := e.userByLogin(ctx, login)
	if err != nil {
		return zero, err
	}

	if user.Account.State == models.AccountBlocked {
		return zero, fmt.Errorf("login %q: %w", login, ErrAccountBlocked)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Account.PasswordHash), []byte(password)) != nil {
		if err := e.recordFailedAttempt(ctx, user); err != nil {
			e.log.Warnw("failed to record failed login attempt", "login", login, "error", err)
		}

		return zero, fmt.Errorf("login %q: %w", login, ErrInvalidCredentials)
	}

	if user.Account.FailedAttempts > 0 {
		user, err = e.store.Users.Update(ctx, user.ID, func(u models.User) models.User {
			u.Account.FailedAttempts = 0
			return u
		})
		if err != nil {
			return zero, err
		}
	}

	return user, nil
}

// recordFailedAttempt bumps the persisted failure counter and blocks the
// account when the threshold is reached.
func (e *Engine) recordFailedAttempt(ctx context.Context, user models.User) error {
	_, err := e.store.Users.Update(ctx, user.ID, func(u models.User) models.User {
		u.Account.FailedAttempts++

		if u.Account.FailedAttempts >= MaxFailedAttempts && u.Account.State == models.AccountActive {
			machine := e.accountMachine(u.Account.Login, u.Account.State)
			if err := machine.Event(ctx, EventAccountBlock); err == nil {
				u.Account.State = models.AccountState(machine.Current())
			}
		}

		return u
	})

	return err
}

// UnblockAccount is the administrative action releasing a locked account.
// It also clears the failure counter.
func (e *Engine) UnblockAccount(ctx context.Context, id int) (models.User, error) {
	var zero models.User

	var transitionErr error

	updated, err := e.store.Users.Update(ctx, id, func(u models.User) models.User {
		machine := e.accountMachine(u.Account.Login, u.Account.State)
		if err := machine.Event(ctx, EventAccountUnblock); err != nil {
			transitionErr = err
			return u
		}

		u.Account.State = models.AccountState(machine.Current())
		u.Account.FailedAttempts = 0

		return u
	})
	if err != nil {
		return zero, err
	}

	if transitionErr != nil {
		return zero, standarderrors.NewValidationError("account.state", "cannot unblock user %d: %v", id, transitionErr)
	}

	return updated, nil
}

// userByLogin scans the user collection for an account login.
func (e *Engine) userByLogin(ctx context.Context, login string) (models.User, error) {
	var zero models.User

	users, err := e.store.Users.LoadAll(ctx)
	if err != nil {
		return zero, err
	}

	for _, u := range users {
		if u.Account.Login == login {
			return u, nil
		}
	}

	return zero, fmt.Errorf("login %q: %w", login, standarderrors.ErrNotFound)
}
