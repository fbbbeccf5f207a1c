package auth

import (
	"context"
	"time"

	"cpn-service/internal/app/config"
	"cpn-service/internal/app/contracts"
	"cpn-service/internal/app/models"
	"cpn-service/internal/pkg/constvars"
	"cpn-service/internal/pkg/dto/requests"
	"cpn-service/internal/pkg/dto/responses"
	"cpn-service/internal/pkg/utils"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

type authUsecase struct {
	Log               *zap.Logger
	AuthRecordsClient contracts.AuthRecordsClient
	SessionRepository contracts.SessionRepository
	InternalConfig    *config.InternalConfig
}

func NewAuthUsecase(
	logger *zap.Logger,
	authRecordsClient contracts.AuthRecordsClient,
	sessionRepository contracts.SessionRepository,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	return &authUsecase{
		Log:               logger,
		AuthRecordsClient: authRecordsClient,
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
	}
}

// Login exchanges credentials with the records API, keeps the remote
// bearer token server-side in a Redis session and hands the client a
// local JWT that only names the session.
func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	remoteToken, err := uc.AuthRecordsClient.Login(ctx, request.Username, request.Password)
	if err != nil {
		return nil, err
	}

	claims, err := utils.DecodeRemoteToken(remoteToken)
	if err != nil {
		return nil, err
	}

	role, err := ExtractRole(claims)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		ID:          utils.GenerateSessionID(),
		Username:    claimString(claims, "sub", "username", "preferred_username"),
		FullName:    claimString(claims, "name", "full_name"),
		Role:        role,
		RemoteToken: remoteToken,
		CreatedAt:   time.Now(),
	}
	if session.Username == "" {
		session.Username = request.Username
	}

	// The Redis session outlives the JWT slightly so a token presented
	// right at expiry still resolves.
	ttl := time.Duration(uc.InternalConfig.App.SessionExpiryInHour) * time.Hour
	if err := uc.SessionRepository.Save(ctx, session, ttl); err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.ID, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return nil, err
	}

	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("user logged in",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, session.ID),
		zap.String("role", role),
	)

	return &responses.Login{
		Token:    token,
		Username: session.Username,
		FullName: session.FullName,
		Role:     role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, sessionID string) error {
	return uc.SessionRepository.Delete(ctx, sessionID)
}

func (uc *authUsecase) FindSession(ctx context.Context, sessionID string) (*models.Session, error) {
	return uc.SessionRepository.Find(ctx, sessionID)
}

func claimString(claims jwt.MapClaims, names ...string) string {
	for _, name := range names {
		if s, ok := claims[name].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
