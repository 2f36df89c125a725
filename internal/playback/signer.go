package playback

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carried by a signed playback token
type Claims struct {
	MediaID  string
	LessonID int
	UserID   int
	Expiry   time.Time
}

// Signer mints short-lived signed manifest URLs for ready media
type Signer struct {
	secret  []byte
	baseURL string
	ttl     time.Duration
}

// NewSigner creates a signer. baseURL is the public media origin,
// ttl bounds how long a minted URL stays valid.
func NewSigner(secret, baseURL string, ttl time.Duration) *Signer {
	return &Signer{
		secret:  []byte(secret),
		baseURL: strings.TrimRight(baseURL, "/"),
		ttl:     ttl,
	}
}

// SignManifestURL mints a signed HLS master manifest URL for the given
// media asset. The token binds the media, lesson and user so a URL
// leaked from one lesson cannot be replayed against another.
func (s *Signer) SignManifestURL(mediaID string, lessonID, userID int, playbackKey string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.ttl)

	claims := jwt.MapClaims{
		"media":  mediaID,
		"lesson": lessonID,
		"sub":    strconv.Itoa(userID),
		"exp":    expiresAt.Unix(),
		"iat":    now.Unix(),
		"typ":    "playback",
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign playback token: %w", err)
	}

	url := fmt.Sprintf("%s/streams/%s/master.m3u8?token=%s", s.baseURL, playbackKey, signed)
	return url, expiresAt, nil
}

// Verify parses and validates a playback token string
func (s *Signer) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid playback token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid playback token claims")
	}

	if typ, _ := claims["typ"].(string); typ != "playback" {
		return nil, fmt.Errorf("invalid token type")
	}

	mediaID, _ := claims["media"].(string)
	lessonID, _ := claims["lesson"].(float64)
	sub, _ := claims["sub"].(string)
	userID, _ := strconv.Atoi(sub)
	exp, _ := claims["exp"].(float64)

	return &Claims{
		MediaID:  mediaID,
		LessonID: int(lessonID),
		UserID:   userID,
		Expiry:   time.Unix(int64(exp), 0),
	}, nil
}
