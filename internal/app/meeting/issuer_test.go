package meeting

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/suite"

	"meetgate/internal/app/user"
	"meetgate/internal/pkg/auth/jwt"
)

const testSecret = "wEoG/Y5keRbH4yrjMe7UxWiBzqO8a8VRqY8cVR4oXro="

var (
	tutor = user.Identity{DisplayName: "John Tutor", Email: "tutor@example.com", Role: user.RoleModerator}
	pupil = user.Identity{DisplayName: "Jane Student", Email: "student@example.com", Role: user.RoleParticipant}
)

func testIssuerConfig() IssuerConfig {
	return IssuerConfig{
		Secret:   testSecret,
		AppID:    "mydeploy1",
		Audience: "jitsi",
		Domain:   "jit.shancloudservice.com",
		Validity: 10 * time.Hour,
	}
}

type IssuerTestSuite struct {
	suite.Suite
	clock  *clockwork.FakeClock
	issuer *Issuer
}

func TestIssuerSuite(t *testing.T) {
	suite.Run(t, new(IssuerTestSuite))
}

func (s *IssuerTestSuite) SetupTest() {
	s.clock = clockwork.NewFakeClockAt(time.Date(2025, 9, 1, 8, 30, 0, 0, time.UTC))

	var err error
	s.issuer, err = NewIssuer(testIssuerConfig(), s.clock)
	s.Require().NoError(err)
}

func (s *IssuerTestSuite) TestNewIssuer_RejectsBadConfig() {
	cfg := testIssuerConfig()
	cfg.Secret = ""
	_, err := NewIssuer(cfg, s.clock)
	s.Require().Error(err)

	cfg = testIssuerConfig()
	cfg.Validity = 0
	_, err = NewIssuer(cfg, s.clock)
	s.Require().Error(err)
}

func (s *IssuerTestSuite) TestClaims_RoomAndModerator() {
	rooms := []string{"math101", "Math101", " spaced room ", "クラス", "a"}

	for _, id := range []user.Identity{tutor, pupil} {
		for _, room := range rooms {
			claims, err := s.issuer.Claims(id, room)
			s.Require().NoError(err)

			s.Equal(room, claims.Room)
			s.Equal(id.Role == user.RoleModerator, claims.Moderator)
			s.Equal(id.DisplayName, claims.Context.User.Name)
			s.Equal(id.Email, claims.Context.User.Email)
			s.Equal("jitsi", claims.Audience)
			s.Equal("mydeploy1", claims.Issuer)
			s.Equal("jit.shancloudservice.com", claims.Subject)
		}
	}
}

func (s *IssuerTestSuite) TestIssue_ExpiryWindow() {
	issuedAt := s.clock.Now()

	token, err := s.issuer.Issue(pupil, "history")
	s.Require().NoError(err)

	claims, err := jwt.ParseToken(token, []byte(testSecret), jwt.ParseOptions{Now: issuedAt})
	s.Require().NoError(err)

	s.Equal(int64(36000), claims.ExpiresAt-issuedAt.Unix())
	s.Zero(claims.IssuedAt)
	s.Zero(claims.NotBefore)
	s.Empty(claims.Id)
}

func (s *IssuerTestSuite) TestIssue_RoundTrip() {
	want, err := s.issuer.Claims(tutor, "math101")
	s.Require().NoError(err)

	token, err := s.issuer.Issue(tutor, "math101")
	s.Require().NoError(err)

	got, err := s.issuer.Verify(token, "math101")
	s.Require().NoError(err)
	s.Equal(want, got)
}

func (s *IssuerTestSuite) TestIssue_Deterministic() {
	a, err := s.issuer.Issue(tutor, "math101")
	s.Require().NoError(err)
	b, err := s.issuer.Issue(tutor, "math101")
	s.Require().NoError(err)
	s.Equal(a, b)

	s.clock.Advance(time.Second)
	c, err := s.issuer.Issue(tutor, "math101")
	s.Require().NoError(err)
	s.NotEqual(a, c)

	first, err := s.issuer.Verify(a, "math101")
	s.Require().NoError(err)
	later, err := s.issuer.Verify(c, "math101")
	s.Require().NoError(err)
	s.Equal(first.ExpiresAt+1, later.ExpiresAt)
	first.ExpiresAt = later.ExpiresAt
	s.Equal(first, later)
}

func (s *IssuerTestSuite) TestIssue_RoomOnlyChangesRoomAndSignature() {
	a, err := s.issuer.Issue(tutor, "math101")
	s.Require().NoError(err)
	b, err := s.issuer.Issue(tutor, "math102")
	s.Require().NoError(err)

	pa, pb := strings.Split(a, "."), strings.Split(b, ".")
	s.Equal(pa[0], pb[0])
	s.NotEqual(pa[2], pb[2])

	ca, err := s.issuer.Verify(a, "math101")
	s.Require().NoError(err)
	cb, err := s.issuer.Verify(b, "math102")
	s.Require().NoError(err)

	s.Equal("math102", cb.Room)
	cb.Room = ca.Room
	s.Equal(ca, cb)
}

func (s *IssuerTestSuite) TestVerify_OtherRoomRejected() {
	token, err := s.issuer.Issue(pupil, "math101")
	s.Require().NoError(err)

	_, err = s.issuer.Verify(token, "math102")
	s.Require().ErrorIs(err, jwt.ErrClaimMismatch)
}

func (s *IssuerTestSuite) TestVerify_AfterValidityWindow() {
	token, err := s.issuer.Issue(pupil, "math101")
	s.Require().NoError(err)

	s.clock.Advance(10*time.Hour + time.Second)
	_, err = s.issuer.Verify(token, "math101")
	s.Require().ErrorIs(err, jwt.ErrTokenExpired)
}

func (s *IssuerTestSuite) TestIssue_InvalidInput() {
	_, err := s.issuer.Issue(tutor, "")
	s.Require().ErrorIs(err, ErrRoomRequired)

	_, err = s.issuer.Issue(user.Identity{Email: "x@example.com"}, "math101")
	s.Require().ErrorIs(err, ErrInvalidIdentity)

	_, err = s.issuer.Issue(user.Identity{DisplayName: "X"}, "math101")
	s.Require().ErrorIs(err, ErrInvalidIdentity)
}

func (s *IssuerTestSuite) TestSecret_ReturnsCopy() {
	secret := s.issuer.Secret()
	secret[0] = 'X'

	token, err := s.issuer.Issue(tutor, "math101")
	s.Require().NoError(err)
	_, err = jwt.ParseToken(token, []byte(testSecret), jwt.ParseOptions{Now: s.clock.Now()})
	s.Require().NoError(err)
}

func (s *IssuerTestSuite) TestIssue_Concurrent() {
	want, err := s.issuer.Issue(tutor, "math101")
	s.Require().NoError(err)

	var wg sync.WaitGroup
	results := make([]string, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.issuer.Issue(tutor, "math101")
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		s.Equal(want, got)
	}
}
