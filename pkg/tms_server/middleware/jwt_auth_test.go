package middleware_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/freightline/tms/pkg/tms_server/middleware"
	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/stretchr/testify/suite"
)

type JWTAuthTestSuite struct {
	suite.Suite
	secret string
	auth   *middleware.JWTAuth
}

func TestJWTAuthTestSuite(t *testing.T) {
	suite.Run(t, new(JWTAuthTestSuite))
}

func (s *JWTAuthTestSuite) SetupTest() {
	s.secret = "dispatch-secret"
	s.auth = middleware.NewJWTAuth(s.secret)
}

func (s *JWTAuthTestSuite) signToken(secret string, subject string, exp time.Time) string {
	token, err := jwt.NewBuilder().Subject(subject).IssuedAt(time.Now()).Expiration(exp).Build()
	s.Require().NoError(err)
	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, []byte(secret)))
	s.Require().NoError(err)
	return string(signed)
}

func (s *JWTAuthTestSuite) TestAuthenticate() {
	var requester string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requester, _ = r.Context().Value(middleware.REQUESTER).(string)
		w.WriteHeader(http.StatusOK)
	})

	// Test normal case.
	request := httptest.NewRequest("GET", "/api/shipments", nil)
	request.Header.Add("Authorization", fmt.Sprintf("Bearer %s", s.signToken(s.secret, "dispatcher-7", time.Now().Add(time.Hour))))
	response := httptest.NewRecorder()
	s.auth.Authenticate(handler).ServeHTTP(response, request)
	s.Equal(http.StatusOK, response.Code)
	s.Equal("dispatcher-7", requester)
	// End of Test normal case.

	// Test missing token.
	requester = ""
	request = httptest.NewRequest("GET", "/api/shipments", nil)
	response = httptest.NewRecorder()
	s.auth.Authenticate(handler).ServeHTTP(response, request)
	s.Equal(http.StatusUnauthorized, response.Code)
	s.Empty(requester)
	// End of Test missing token.

	// Test token signed with another secret.
	request = httptest.NewRequest("GET", "/api/shipments", nil)
	request.Header.Add("Authorization", fmt.Sprintf("Bearer %s", s.signToken("other-secret", "dispatcher-7", time.Now().Add(time.Hour))))
	response = httptest.NewRecorder()
	s.auth.Authenticate(handler).ServeHTTP(response, request)
	s.Equal(http.StatusUnauthorized, response.Code)
	s.Empty(requester)
	// End of Test token signed with another secret.

	// Test expired token.
	request = httptest.NewRequest("GET", "/api/shipments", nil)
	request.Header.Add("Authorization", fmt.Sprintf("Bearer %s", s.signToken(s.secret, "dispatcher-7", time.Now().Add(-time.Hour))))
	response = httptest.NewRecorder()
	s.auth.Authenticate(handler).ServeHTTP(response, request)
	s.Equal(http.StatusUnauthorized, response.Code)
	s.Empty(requester)
	// End of Test expired token.
}
