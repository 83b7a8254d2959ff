package services

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/cyclerise/cyclerise-backend/internal/apierr"
	"github.com/cyclerise/cyclerise-backend/internal/branch"
	"github.com/cyclerise/cyclerise-backend/internal/logger"
	"github.com/cyclerise/cyclerise-backend/internal/repos"
	"github.com/cyclerise/cyclerise-backend/internal/requestdata"
	"github.com/cyclerise/cyclerise-backend/internal/types"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Claims carried in every issued token. The middleware copies them into
// requestdata without touching storage.
type Claims struct {
	UserID        uuid.UUID `json:"userId"`
	Branch        string    `json:"branch"`
	CurrentBranch string    `json:"currentBranch"`
	IsAdmin       bool      `json:"isAdmin"`
	jwt.RegisteredClaims
}

type AuthResult struct {
	Token string      `json:"token"`
	User  *types.User `json:"user"`
}

type AuthService interface {
	Register(ctx context.Context, usn, email, password, branchCode string) (*AuthResult, error)
	Login(ctx context.Context, usn, password, branchCode string) (*AuthResult, error)
	// AdminLogin authenticates by email and requires admin privileges.
	// Allow-listed emails are promoted on the way in.
	AdminLogin(ctx context.Context, email, password string) (*AuthResult, error)
	SwitchBranch(ctx context.Context, newBranch string) (*AuthResult, error)
	GetProfile(ctx context.Context) (*types.User, error)
	ListUsers(ctx context.Context) ([]*types.User, error)
	ParseToken(tokenString string) (*Claims, error)
}

type authService struct {
	db              *gorm.DB
	log             *logger.Logger
	userRepo        repos.UserRepo
	progressService ProgressService
	jwtSecretKey    string
	tokenTTL        time.Duration
	adminEmails     map[string]bool
}

func NewAuthService(
	db *gorm.DB,
	baseLog *logger.Logger,
	userRepo repos.UserRepo,
	progressService ProgressService,
	jwtSecretKey string,
	tokenTTL time.Duration,
	adminEmails map[string]bool,
) AuthService {
	return &authService{
		db:              db,
		log:             baseLog.With("service", "AuthService"),
		userRepo:        userRepo,
		progressService: progressService,
		jwtSecretKey:    jwtSecretKey,
		tokenTTL:        tokenTTL,
		adminEmails:     adminEmails,
	}
}

func (as *authService) Register(ctx context.Context, usn, email, password, branchCode string) (*AuthResult, error) {
	usn = strings.ToUpper(strings.TrimSpace(usn))
	email = strings.ToLower(strings.TrimSpace(email))
	branchCode = strings.ToUpper(strings.TrimSpace(branchCode))

	if usn == "" || email == "" || password == "" {
		return nil, apierr.Validation("All fields are required")
	}
	if !branch.ValidUSN(usn) {
		return nil, apierr.Validation("USN must be 8-12 alphanumeric characters")
	}
	// The USN embeds the branch (e.g. 1SI23IS080 -> IS); derive when the
	// client did not send one.
	if branchCode == "" {
		branchCode = branch.ToBackend(branch.DeriveFromUSN(usn))
	}
	if branchCode == "" {
		return nil, apierr.Validation("Branch is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, apierr.Validation("Invalid email address")
	}
	if len(password) < 6 {
		return nil, apierr.Validation("Password must be at least 6 characters")
	}
	if !branch.IsBackendBranch(branchCode) {
		return nil, apierr.Validation("Unknown branch")
	}

	exists, err := as.userRepo.ExistsByUSNOrEmail(ctx, nil, usn, email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, apierr.New(http.StatusBadRequest, "user_exists", fmt.Errorf("User already exists"))
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &types.User{
		ID:            uuid.New(),
		USN:           usn,
		Email:         email,
		Password:      string(hashed),
		Branch:        branchCode,
		CurrentBranch: branchCode,
		IsAdmin:       as.adminEmails[email],
	}

	// User and their empty progress row are created together; the progress
	// link back on the user closes the registration flow.
	if err := as.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := as.userRepo.Create(ctx, tx, []*types.User{user}); err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		progress, err := as.progressService.CreateEmpty(ctx, tx, user.ID, user.CurrentBranch)
		if err != nil {
			return fmt.Errorf("failed to create progress record: %w", err)
		}
		user.ProgressID = &progress.ID
		if err := as.userRepo.Save(ctx, tx, user); err != nil {
			return fmt.Errorf("failed to link progress record: %w", err)
		}
		return nil
	}); err != nil {
		as.log.Warn("Register failed", "error", err, "usn", usn)
		return nil, err
	}

	token, err := as.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (as *authService) Login(ctx context.Context, usn, password, branchCode string) (*AuthResult, error) {
	usn = strings.ToUpper(strings.TrimSpace(usn))
	branchCode = strings.ToUpper(strings.TrimSpace(branchCode))

	if usn == "" || password == "" || branchCode == "" {
		return nil, apierr.Validation("USN, password, and branch are required")
	}

	users, err := as.userRepo.GetByUSNs(ctx, nil, []string{usn})
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.Unauthorized("Invalid credentials")
	}
	user := users[0]

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apierr.Unauthorized("Invalid credentials")
	}

	if user.CurrentBranch != branchCode && branch.IsBackendBranch(branchCode) {
		user.CurrentBranch = branchCode
		if err := as.userRepo.Save(ctx, nil, user); err != nil {
			return nil, fmt.Errorf("failed to update current branch: %w", err)
		}
	}

	token, err := as.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (as *authService) AdminLogin(ctx context.Context, email, password string) (*AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apierr.Validation("Email and password are required")
	}

	users, err := as.userRepo.GetByEmails(ctx, nil, []string{email})
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.Unauthorized("Invalid credentials")
	}
	user := users[0]

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apierr.Unauthorized("Invalid credentials")
	}

	if as.adminEmails[email] && !user.IsAdmin {
		user.IsAdmin = true
		if err := as.userRepo.Save(ctx, nil, user); err != nil {
			return nil, fmt.Errorf("failed to promote admin: %w", err)
		}
	}

	if !user.IsAdmin {
		return nil, apierr.New(http.StatusForbidden, "admin_required", fmt.Errorf("Access denied. Admin privileges required."))
	}

	token, err := as.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (as *authService) SwitchBranch(ctx context.Context, newBranch string) (*AuthResult, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}

	newBranch = strings.ToUpper(strings.TrimSpace(newBranch))
	if newBranch == "" {
		return nil, apierr.Validation("New branch is required")
	}
	if !branch.IsBackendBranch(newBranch) {
		return nil, apierr.Validation("Unknown branch")
	}

	users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.NotFound("user_not_found", "User not found")
	}
	user := users[0]

	user.CurrentBranch = newBranch
	if err := as.userRepo.Save(ctx, nil, user); err != nil {
		return nil, fmt.Errorf("failed to switch branch: %w", err)
	}

	token, err := as.generateToken(user)
	if err != nil {
		return nil, err
	}
	return &AuthResult{Token: token, User: user}, nil
}

func (as *authService) GetProfile(ctx context.Context) (*types.User, error) {
	rd := requestdata.GetRequestData(ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, apierr.Unauthorized("not authenticated")
	}

	users, err := as.userRepo.GetByIDs(ctx, nil, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if len(users) == 0 {
		return nil, apierr.NotFound("user_not_found", "User not found")
	}
	return users[0], nil
}

func (as *authService) ListUsers(ctx context.Context) ([]*types.User, error) {
	return as.userRepo.GetAll(ctx, nil)
}

func (as *authService) generateToken(user *types.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:        user.ID,
		Branch:        user.Branch,
		CurrentBranch: user.CurrentBranch,
		IsAdmin:       user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(as.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(as.jwtSecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (as *authService) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, apierr.Unauthorized("Invalid or expired token")
	}
	return claims, nil
}
