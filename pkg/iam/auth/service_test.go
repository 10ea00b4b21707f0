package auth

import (
	"context"
	"testing"
	"time"

	"github.com/vitaehq/vitae/pkg/errx"
	"github.com/vitaehq/vitae/pkg/iam/user"
	"github.com/vitaehq/vitae/pkg/kernel"
	"github.com/vitaehq/vitae/pkg/validate"
)

type fakeUserRepo struct {
	users map[string]*user.User
	calls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.calls++
	r.users[u.Username] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id kernel.UserID) (*user.User, error) {
	r.calls++
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound()
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	r.calls++
	u, ok := r.users[username]
	if !ok {
		return nil, user.ErrUserNotFound()
	}
	return u, nil
}

func (r *fakeUserRepo) ExistsByUsername(_ context.Context, username string) (bool, error) {
	r.calls++
	_, ok := r.users[username]
	return ok, nil
}

func (r *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	r.calls++
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

type fakePasswordService struct{}

func (fakePasswordService) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakePasswordService) Verify(hash, password string) bool    { return hash == "hashed:"+password }

type fakeRevoker struct {
	revoked map[string]bool
}

func newFakeRevoker() *fakeRevoker {
	return &fakeRevoker{revoked: make(map[string]bool)}
}

func (r *fakeRevoker) Revoke(_ context.Context, token string, _ time.Duration) error {
	r.revoked[token] = true
	return nil
}

func (r *fakeRevoker) IsRevoked(_ context.Context, token string) (bool, error) {
	return r.revoked[token], nil
}

func newTestService() (*AuthService, *fakeUserRepo, *fakeRevoker) {
	repo := newFakeUserRepo()
	revoker := newFakeRevoker()
	tokenSvc := NewJWTService("test-secret", time.Hour, "test")
	return NewAuthService(repo, fakePasswordService{}, tokenSvc, revoker), repo, revoker
}

func validSignUp() SignUpRequest {
	return SignUpRequest{
		Username:        "ada",
		Email:           "ada@example.com",
		Password:        "Str0ng!pass",
		ConfirmPassword: "Str0ng!pass",
		FirstName:       "Ada",
		LastName:        "Lovelace",
	}
}

func TestSignUp(t *testing.T) {
	svc, repo, _ := newTestService()

	resp, err := svc.SignUp(context.Background(), validSignUp())
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if resp.Message != "User registered successfully!" {
		t.Errorf("message = %q", resp.Message)
	}

	u := repo.users["ada"]
	if u == nil {
		t.Fatal("user not stored")
	}
	if u.PasswordHash == "Str0ng!pass" {
		t.Error("password stored in the clear")
	}
	if u.ID.IsEmpty() {
		t.Error("user ID not assigned")
	}
}

func TestSignUpValidatesBeforeRepoAccess(t *testing.T) {
	svc, repo, _ := newTestService()

	req := validSignUp()
	req.ConfirmPassword = "Different!1"

	_, err := svc.SignUp(context.Background(), req)
	if !errx.IsCode(err, validate.CodePasswordMismatch) {
		t.Fatalf("got %v", err)
	}
	if repo.calls != 0 {
		t.Errorf("repository touched %d times before validation passed", repo.calls)
	}
}

func TestSignUpDuplicates(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("first signup: %v", err)
	}

	dup := validSignUp()
	if _, err := svc.SignUp(context.Background(), dup); !errx.IsCode(err, user.CodeUsernameTaken) {
		t.Errorf("duplicate username: got %v", err)
	}

	dup.Username = "ada2"
	if _, err := svc.SignUp(context.Background(), dup); !errx.IsCode(err, user.CodeEmailInUse) {
		t.Errorf("duplicate email: got %v", err)
	}
}

func TestSignIn(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("signup: %v", err)
	}

	resp, err := svc.SignIn(context.Background(), SignInRequest{Username: "ada", Password: "Str0ng!pass"})
	if err != nil {
		t.Fatalf("signin: %v", err)
	}
	if resp.Type != "Bearer" {
		t.Errorf("token type = %q", resp.Type)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}
	if resp.Username != "ada" || resp.Email != "ada@example.com" {
		t.Errorf("identity = %q %q", resp.Username, resp.Email)
	}
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	svc, _, _ := newTestService()

	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("signup: %v", err)
	}

	// Both failure modes answer identically
	tests := []SignInRequest{
		{Username: "ada", Password: "Wrong!pass1"},
		{Username: "nobody", Password: "Str0ng!pass"},
	}
	for _, req := range tests {
		if _, err := svc.SignIn(context.Background(), req); !errx.IsCode(err, CodeInvalidCredentials) {
			t.Errorf("%s: got %v", req.Username, err)
		}
	}
}

func TestLogoutRevokesToken(t *testing.T) {
	svc, _, revoker := newTestService()

	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("signup: %v", err)
	}
	resp, err := svc.SignIn(context.Background(), SignInRequest{Username: "ada", Password: "Str0ng!pass"})
	if err != nil {
		t.Fatalf("signin: %v", err)
	}

	if err := svc.Logout(context.Background(), resp.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if !revoker.revoked[resp.Token] {
		t.Error("token not revoked")
	}
}

func TestMe(t *testing.T) {
	svc, repo, _ := newTestService()

	if _, err := svc.SignUp(context.Background(), validSignUp()); err != nil {
		t.Fatalf("signup: %v", err)
	}

	me, err := svc.Me(context.Background(), repo.users["ada"].ID)
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if me.Username != "ada" || me.FirstName != "Ada" || me.LastName != "Lovelace" {
		t.Errorf("got %+v", me)
	}
}
