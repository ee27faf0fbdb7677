package services

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/mood-recall/internal/jwt"
	"github.com/sbilibin2017/mood-recall/internal/logger"
	"github.com/sbilibin2017/mood-recall/internal/models"
	"github.com/sbilibin2017/mood-recall/internal/state"
	"golang.org/x/crypto/bcrypt"
)

// Error variables
var (
	ErrAccountAlreadyExists = errors.New("an account with this email already exists")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrUserNotFound         = errors.New("user profile not found")
)

// AccountReader looks up credentials.
type AccountReader interface {
	GetByEmail(ctx context.Context, email string) (*models.AccountDB, error)
}

// AccountWriter stores credentials.
type AccountWriter interface {
	Save(ctx context.Context, email string, passwordHash string) (uuid.UUID, error)
}

// ProfileReader reads user profiles.
type ProfileReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// ProfileCreator creates user profiles.
type ProfileCreator interface {
	Create(ctx context.Context, user models.User) (*models.User, error)
}

// TokenIssuer issues session tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, userID uuid.UUID, email string) (string, error)
}

// TokenRevoker invalidates session tokens before they expire.
type TokenRevoker interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// AuthService handles sign-up, sign-in, session restore and sign-out.
type AuthService struct {
	accountReader AccountReader
	accountWriter AccountWriter
	profileReader ProfileReader
	profileWriter ProfileCreator
	tokens        TokenIssuer
	revoker       TokenRevoker
	states        StateStore
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(
	accountReader AccountReader,
	accountWriter AccountWriter,
	profileReader ProfileReader,
	profileWriter ProfileCreator,
	tokens TokenIssuer,
	revoker TokenRevoker,
	states StateStore,
) *AuthService {
	return &AuthService{
		accountReader: accountReader,
		accountWriter: accountWriter,
		profileReader: profileReader,
		profileWriter: profileWriter,
		tokens:        tokens,
		revoker:       revoker,
		states:        states,
	}
}

// SignUp creates an account and signs the new user in.
func (svc *AuthService) SignUp(ctx context.Context, email, password string) (string, state.Snapshot, error) {
	account, err := svc.accountReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check account exists", "email", email, "error", err)
		return "", state.Empty(), err
	}
	if account != nil {
		logger.Log.Warnw("account already exists", "email", email)
		return "", state.Empty(), ErrAccountAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "error", err)
		return "", state.Empty(), err
	}

	if _, err := svc.accountWriter.Save(ctx, email, string(hashedPassword)); err != nil {
		if errors.Is(err, models.ErrEmailTaken) {
			logger.Log.Warnw("account already exists", "email", email)
			return "", state.Empty(), ErrAccountAlreadyExists
		}
		logger.Log.Errorw("failed to save account", "email", email, "error", err)
		return "", state.Empty(), err
	}

	return svc.SignIn(ctx, email, password)
}

// SignIn authenticates the credentials, makes sure the profile exists and returns
// a session token with the resulting snapshot. The cached state is touched only
// after the password matched, and a failed attempt never downgrades a session
// that is already authenticated.
func (svc *AuthService) SignIn(ctx context.Context, email, password string) (string, state.Snapshot, error) {
	account, err := svc.accountReader.GetByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to get account", "email", email, "error", err)
		return "", state.Empty(), err
	}
	if account == nil {
		logger.Log.Warnw("account does not exist", "email", email)
		return "", state.Empty().AuthFailed(ErrInvalidCredentials), ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Log.Warnw("invalid credentials", "email", email)
		return "", state.Empty().AuthFailed(ErrInvalidCredentials), ErrInvalidCredentials
	}

	userID := account.AccountID
	svc.states.Update(userID, func(s state.Snapshot) state.Snapshot {
		if s.Status() == state.Authenticated {
			return s
		}
		return s.Authenticating()
	})

	user, err := svc.EnsureProfile(ctx, userID, account.Email)
	if err != nil {
		return "", svc.signInFailed(userID, err), err
	}

	token, err := svc.tokens.Generate(ctx, userID, account.Email)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "userID", userID, "error", err)
		return "", svc.signInFailed(userID, err), err
	}

	snap := svc.states.Update(userID, func(s state.Snapshot) state.Snapshot { return s.SignedIn(*user) })
	return token, snap, nil
}

// signInFailed ends a sign-in attempt that passed the password check. A session
// that is already authenticated keeps its cached state.
func (svc *AuthService) signInFailed(userID uuid.UUID, err error) state.Snapshot {
	svc.states.Update(userID, func(s state.Snapshot) state.Snapshot {
		if s.Status() == state.Authenticated {
			return s
		}
		return s.AuthFailed(err)
	})
	return state.Empty().AuthFailed(err)
}

// Restore returns the snapshot of an already validated session. The profile is
// fetched or created only when the session is not authenticated yet.
func (svc *AuthService) Restore(ctx context.Context, claims *jwt.Claims) (state.Snapshot, error) {
	if snap := svc.states.Get(claims.UserID); snap.Status() == state.Authenticated {
		return snap, nil
	}

	svc.states.Update(claims.UserID, func(s state.Snapshot) state.Snapshot { return s.Authenticating() })

	user, err := svc.EnsureProfile(ctx, claims.UserID, claims.Email)
	if err != nil {
		svc.states.Update(claims.UserID, func(s state.Snapshot) state.Snapshot { return s.AuthFailed(err) })
		return state.Empty(), err
	}

	return svc.states.Update(claims.UserID, func(s state.Snapshot) state.Snapshot { return s.SignedIn(*user) }), nil
}

// EnsureProfile returns the user profile, creating it with defaults on first sign-in.
func (svc *AuthService) EnsureProfile(ctx context.Context, userID uuid.UUID, email string) (*models.User, error) {
	user, err := svc.profileReader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user profile", "userID", userID, "error", err)
		return nil, err
	}
	if user != nil {
		return user, nil
	}

	user, err = svc.profileWriter.Create(ctx, models.NewDefaultUser(userID, email))
	if err != nil {
		logger.Log.Errorw("failed to create user profile", "userID", userID, "error", err)
		return nil, err
	}

	logger.Log.Infow("user profile created", "userID", userID)
	return user, nil
}

// SignOut revokes the token for the rest of its lifetime and drops the cached state.
func (svc *AuthService) SignOut(ctx context.Context, claims *jwt.Claims) error {
	var ttl time.Duration
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}

	if err := svc.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		logger.Log.Errorw("failed to revoke token", "userID", claims.UserID, "error", err)
		return err
	}

	svc.states.Update(claims.UserID, state.Snapshot.SignedOut)
	return nil
}
