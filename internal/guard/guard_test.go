package guard

import (
	"context"
	"testing"

	domainauth "github.com/onboardhq/onboard-ui-api/internal/domain/auth"
	mockauth "github.com/onboardhq/onboard-ui-api/internal/mocks/auth"
	"github.com/onboardhq/onboard-ui-api/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absentSource(t *testing.T) *session.Store {
	t.Helper()
	return session.NewStore("client", mockauth.NewMemoryRecordStore())
}

func presentSource(t *testing.T, role domainauth.Role) *session.Store {
	t.Helper()
	store := session.NewStore("client", mockauth.NewMemoryRecordStore())
	identity := domainauth.Identity{
		Name:  "Someone",
		Email: "someone@empresa.com",
		Role:  role,
		Token: "tok",
	}
	require.NoError(t, store.Set(context.Background(), identity))
	return store
}

func TestEntry(t *testing.T) {
	t.Parallel()

	t.Run("absent redirects to login", func(t *testing.T) {
		t.Parallel()
		d, err := Entry(context.Background(), absentSource(t))
		require.NoError(t, err)
		assert.False(t, d.Allow)
		assert.Equal(t, "/login", d.RedirectTo)
	})

	t.Run("present allows regardless of role", func(t *testing.T) {
		t.Parallel()
		for _, role := range []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleRH, domainauth.RoleCandidato} {
			d, err := Entry(context.Background(), presentSource(t, role))
			require.NoError(t, err)
			assert.True(t, d.Allow, "role %s", role)
		}
	})
}

func TestExit(t *testing.T) {
	t.Parallel()

	t.Run("absent allows", func(t *testing.T) {
		t.Parallel()
		d, err := Exit(context.Background(), absentSource(t))
		require.NoError(t, err)
		assert.True(t, d.Allow)
	})

	t.Run("present redirects to role landing route", func(t *testing.T) {
		t.Parallel()
		d, err := Exit(context.Background(), presentSource(t, domainauth.RoleRH))
		require.NoError(t, err)
		assert.False(t, d.Allow)
		assert.Equal(t, "/candidatos", d.RedirectTo)
	})
}

func TestRole(t *testing.T) {
	t.Parallel()

	t.Run("allowed role passes", func(t *testing.T) {
		t.Parallel()
		d, err := Role(context.Background(), presentSource(t, domainauth.RoleRH), domainauth.RoleRH)
		require.NoError(t, err)
		assert.True(t, d.Allow)
	})

	t.Run("wrong role redirects to login", func(t *testing.T) {
		t.Parallel()
		d, err := Role(context.Background(), presentSource(t, domainauth.RoleCandidato), domainauth.RoleAdmin)
		require.NoError(t, err)
		assert.False(t, d.Allow)
		assert.Equal(t, "/login", d.RedirectTo)
	})

	t.Run("absent redirects to login", func(t *testing.T) {
		t.Parallel()
		d, err := Role(context.Background(), absentSource(t), domainauth.RoleAdmin)
		require.NoError(t, err)
		assert.False(t, d.Allow)
		assert.Equal(t, "/login", d.RedirectTo)
	})
}

func TestGuardsTakeFirstValueOnly(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := presentSource(t, domainauth.RoleRH)

	d, err := Entry(ctx, store)
	require.NoError(t, err)
	require.True(t, d.Allow)

	// A transition after the evaluation must not affect the decision that
	// was already made; only a fresh evaluation observes it.
	require.NoError(t, store.Clear(ctx))
	d2, err := Entry(ctx, store)
	require.NoError(t, err)
	assert.False(t, d2.Allow)
}

func TestGuardCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Entry(ctx, absentSource(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassify(t *testing.T) {
	t.Parallel()

	assert.Equal(t, ReqNoSession, Classify("/login").Requirement)
	assert.Equal(t, ReqPublic, Classify("/sobre-nos").Requirement)
	assert.Equal(t, ReqPublic, Classify("/definir-senha/token").Requirement)
	assert.Equal(t, ReqSession, Classify("/home").Requirement)
	assert.Equal(t, ReqSession, Classify("/candidatos").Requirement)
	assert.Equal(t, ReqUnmatched, Classify("/nada-disso").Requirement)

	empresas := Classify("/empresas")
	assert.Equal(t, []domainauth.Role{domainauth.RoleAdmin}, empresas.Roles)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("entry routes behave identically", func(t *testing.T) {
		t.Parallel()
		for _, path := range []string{"/home", "/usuario", "/curso"} {
			d, err := Evaluate(ctx, path, absentSource(t))
			require.NoError(t, err)
			assert.False(t, d.Allow, "path %s", path)
			assert.Equal(t, "/login", d.RedirectTo, "path %s", path)
		}
	})

	t.Run("role routes enforce the allow-list", func(t *testing.T) {
		t.Parallel()
		d, err := Evaluate(ctx, "/empresas", presentSource(t, domainauth.RoleRH))
		require.NoError(t, err)
		assert.False(t, d.Allow)

		d, err = Evaluate(ctx, "/empresas", presentSource(t, domainauth.RoleAdmin))
		require.NoError(t, err)
		assert.True(t, d.Allow)
	})

	t.Run("rh reaches candidatos, login bounces back", func(t *testing.T) {
		t.Parallel()
		src := presentSource(t, domainauth.RoleRH)

		d, err := Evaluate(ctx, "/candidatos", src)
		require.NoError(t, err)
		assert.True(t, d.Allow)

		d, err = Evaluate(ctx, "/login", src)
		require.NoError(t, err)
		assert.False(t, d.Allow)
		assert.Equal(t, "/candidatos", d.RedirectTo)
	})

	t.Run("public routes always allow", func(t *testing.T) {
		t.Parallel()
		d, err := Evaluate(ctx, "/sobre-nos", absentSource(t))
		require.NoError(t, err)
		assert.True(t, d.Allow)
	})

	t.Run("unmatched falls back to login redirect", func(t *testing.T) {
		t.Parallel()
		d, err := Evaluate(ctx, "/whatever", presentSource(t, domainauth.RoleAdmin))
		require.NoError(t, err)
		assert.False(t, d.Allow)
		assert.Equal(t, "/login", d.RedirectTo)
	})
}
